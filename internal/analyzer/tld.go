package analyzer

// TLD risk bands, ordered: higher-abuse suffixes never score below
// lower-abuse ones
const (
	tldScoreFree        = 20 // Free registrations, heavily abused
	tldScorePaidAbused  = 12 // Cheap gTLDs with high abuse rates
	tldScoreForeignCC   = 6  // Common country codes, small fixed contribution
	tldScoreEstablished = 0
)

// freeTLDs are suffixes offering free registration, the historical home of
// throwaway phishing domains
var freeTLDs = map[string]bool{
	"tk": true, "ml": true, "ga": true, "cf": true, "gq": true,
}

// abusedPaidTLDs are cheap suffixes with disproportionate abuse volume
var abusedPaidTLDs = map[string]bool{
	"xyz": true, "top": true, "club": true, "online": true, "site": true,
	"bid": true, "loan": true, "win": true, "stream": true, "download": true,
	"icu": true, "work": true, "click": true, "buzz": true, "monster": true,
	"rest": true, "surf": true, "cam": true,
}

// commonCountryTLDs are country codes frequently seen in cross-border
// campaigns; they carry a small flat contribution rather than a presumption
// of abuse
var commonCountryTLDs = map[string]bool{
	"ru": true, "cn": true, "su": true, "br": true, "in": true,
	"vn": true, "id": true, "pk": true, "ir": true, "ng": true,
}

// establishedTLDs score zero regardless of other bands
var establishedTLDs = map[string]bool{
	"com": true, "org": true, "net": true, "gov": true, "edu": true,
	"mil": true, "int": true,
}

// TLDScorer maps a domain suffix to a fixed risk band.
// It is a pure lookup with no state beyond its tables.
type TLDScorer struct{}

// NewTLDScorer creates a new TLDScorer instance
func NewTLDScorer() *TLDScorer {
	return &TLDScorer{}
}

// Score returns the fixed risk contribution for a TLD. Multi-label public
// suffixes ("co.uk") are scored by their final label.
func (t *TLDScorer) Score(tld string) int {
	tld = lastLabel(tld)
	switch {
	case establishedTLDs[tld]:
		return tldScoreEstablished
	case freeTLDs[tld]:
		return tldScoreFree
	case abusedPaidTLDs[tld]:
		return tldScorePaidAbused
	case commonCountryTLDs[tld]:
		return tldScoreForeignCC
	default:
		return tldScoreEstablished
	}
}

// IsSuspicious reports whether the TLD falls into either abuse band
func (t *TLDScorer) IsSuspicious(tld string) bool {
	tld = lastLabel(tld)
	return freeTLDs[tld] || abusedPaidTLDs[tld]
}

func lastLabel(tld string) string {
	for i := len(tld) - 1; i >= 0; i-- {
		if tld[i] == '.' {
			return tld[i+1:]
		}
	}
	return tld
}
