package analyzer

import (
	"fmt"
	"math"
	"strings"
)

// Heuristic check weights
const (
	weightNoHTTPS         = 10
	weightIPHost          = 25
	weightLongURL         = 10
	weightVeryLongURL     = 15
	weightDeepSubdomains  = 10
	weightVeryDeepSubs    = 20
	weightShortener       = 15
	weightAtSymbol        = 25
	weightCredentialPath  = 15
	weightNonstandardPort = 15
	weightManyQueryParams = 10
	weightHostEntropy     = 10
	weightPathEntropy     = 10

	longURLThreshold     = 75
	veryLongURLThreshold = 150
	subdomainDepthWarn   = 3
	subdomainDepthAlert  = 5
	queryParamThreshold  = 10
	hostEntropyThreshold = 3.8
	pathEntropyThreshold = 4.5
	entropyPrefixBound   = 256 // Entropy is computed over at most this many runes

	// Discount multiplier applied once for verified safe domains
	safeDomainDiscount = 0.3
)

// shortenerDomains are known URL shortening services. A shortened URL hides
// its true destination, which matters for QR payloads in particular.
var shortenerDomains = map[string]bool{
	"bit.ly": true, "tinyurl.com": true, "t.co": true, "goo.gl": true,
	"ow.ly": true, "is.gd": true, "buff.ly": true, "rebrand.ly": true,
	"cutt.ly": true, "tiny.cc": true, "rb.gy": true, "shorturl.at": true,
	"t.ly": true, "v.gd": true,
}

// credentialKeywords are path segments that suggest a credential-harvesting
// page
var credentialKeywords = []string{
	"login", "signin", "sign-in", "verify", "account", "secure",
	"password", "update", "confirm", "banking", "wallet", "webscr",
	"authenticate", "credential",
}

// IsShortenerDomain reports whether a registrable domain is a known URL
// shortener
func IsShortenerDomain(domain string) bool {
	return shortenerDomains[domain]
}

// HeuristicsEngine runs the fixed ordered list of rule-based checks.
// Homograph and brand scores are deliberately not part of this layer; the
// orchestrator combines them exactly once.
type HeuristicsEngine struct {
	parser      *Parser
	tld         *TLDScorer
	safeDomains map[string]bool
}

// NewHeuristicsEngine creates an engine over the given safe-domain set.
// Pass DefaultSafeDomains() for the compiled-in list.
func NewHeuristicsEngine(tld *TLDScorer, safeDomains map[string]bool) *HeuristicsEngine {
	return &HeuristicsEngine{
		parser:      NewParser(),
		tld:         tld,
		safeDomains: safeDomains,
	}
}

// DefaultSafeDomains returns the compiled-in verified-domain set: every
// official brand domain plus widely known destinations
func DefaultSafeDomains() map[string]bool {
	safe := map[string]bool{
		"wikipedia.org": true, "github.com": true, "stackoverflow.com": true,
		"mozilla.org": true, "cloudflare.com": true, "duckduckgo.com": true,
	}
	for _, brand := range defaultBrands {
		for _, domain := range brand.Domains {
			safe[domain] = true
		}
	}
	return safe
}

// Analyze runs every check against a URL and sums the triggered weights.
// An empty or unparsable URL yields the maximum score: what cannot be
// verified is assumed hostile at this layer.
func (h *HeuristicsEngine) Analyze(rawURL string) *HeuristicResult {
	components, err := h.parser.Parse(rawURL)
	if err != nil {
		return &HeuristicResult{
			Score: 100,
			Reasons: []Reason{{
				Code:        "unparsable_url",
				Severity:    SeverityCritical,
				Description: "URL could not be parsed and cannot be verified",
			}},
			Flags: []string{"unparsable"},
		}
	}
	return h.AnalyzeComponents(components, rawURL)
}

// AnalyzeComponents runs the checks against an already-parsed URL
func (h *HeuristicsEngine) AnalyzeComponents(c *URLComponents, rawURL string) *HeuristicResult {
	result := &HeuristicResult{}
	score := 0

	add := func(weight int, code, severity, description, flag string) {
		score += weight
		result.Reasons = append(result.Reasons, Reason{
			Code:        code,
			Severity:    severity,
			Description: description,
		})
		result.Flags = append(result.Flags, flag)
	}

	if c.Protocol != "https" {
		add(weightNoHTTPS, "no_https", SeverityMedium,
			"connection is not encrypted (no HTTPS)", "no-https")
	}

	if c.IsIPHost {
		add(weightIPHost, "ip_host", SeverityHigh,
			"host is a raw IP address instead of a domain name", "ip-host")
	}

	if tldScore := h.tld.Score(c.TLD); tldScore > 0 {
		severity := SeverityLow
		if tldScore >= tldScoreFree {
			severity = SeverityHigh
		} else if tldScore >= tldScorePaidAbused {
			severity = SeverityMedium
		}
		add(tldScore, "suspicious_tld", severity,
			fmt.Sprintf("top-level domain .%s is frequently abused", c.TLD), "suspicious-tld")
	}

	switch urlLen := len(rawURL); {
	case urlLen > veryLongURLThreshold:
		add(weightVeryLongURL, "very_long_url", SeverityMedium,
			fmt.Sprintf("URL is unusually long (%d characters)", urlLen), "very-long-url")
	case urlLen > longURLThreshold:
		add(weightLongURL, "long_url", SeverityLow,
			fmt.Sprintf("URL is long (%d characters)", urlLen), "long-url")
	}

	switch depth := len(c.Subdomains); {
	case depth >= subdomainDepthAlert:
		add(weightVeryDeepSubs, "excessive_subdomains", SeverityHigh,
			fmt.Sprintf("host nests %d subdomain levels", depth), "deep-subdomains")
	case depth >= subdomainDepthWarn:
		add(weightDeepSubdomains, "deep_subdomains", SeverityMedium,
			fmt.Sprintf("host nests %d subdomain levels", depth), "deep-subdomains")
	}

	if IsShortenerDomain(c.RegistrableDomain) {
		add(weightShortener, "shortener_domain", SeverityMedium,
			"URL shortener hides the true destination", "shortener")
	}

	if strings.Contains(rawURL, "@") {
		add(weightAtSymbol, "at_symbol", SeverityHigh,
			"@ symbol in URL can disguise the real destination", "at-symbol")
	}

	if keyword := firstCredentialKeyword(c.Path); keyword != "" {
		add(weightCredentialPath, "credential_path", SeverityMedium,
			fmt.Sprintf("path contains credential keyword %q", keyword), "credential-path")
	}

	if c.Port != 0 && c.Port != 80 && c.Port != 443 && c.Port != 8080 {
		add(weightNonstandardPort, "nonstandard_port", SeverityMedium,
			fmt.Sprintf("non-standard port %d", c.Port), "odd-port")
	}

	if params := countQueryParams(c.Query); params > queryParamThreshold {
		add(weightManyQueryParams, "many_query_params", SeverityLow,
			fmt.Sprintf("query string carries %d parameters", params), "many-params")
	}

	if entropy := shannonEntropy(c.Host); entropy > hostEntropyThreshold {
		add(weightHostEntropy, "high_host_entropy", SeverityMedium,
			"hostname looks randomly generated", "random-host")
	}

	if entropy := shannonEntropy(c.Path); entropy > pathEntropyThreshold {
		add(weightPathEntropy, "high_path_entropy", SeverityLow,
			"path looks randomly generated", "random-path")
	}

	// Verified domains get a single discount at the very end; individual
	// checks never subtract
	if h.safeDomains[c.RegistrableDomain] {
		score = int(float64(score) * safeDomainDiscount)
		result.Flags = append(result.Flags, "verified-domain")
	}

	if score > 100 {
		score = 100
	}
	result.Score = score
	return result
}

// firstCredentialKeyword returns the first credential keyword present in the
// path, or empty
func firstCredentialKeyword(path string) string {
	lower := strings.ToLower(path)
	for _, keyword := range credentialKeywords {
		if strings.Contains(lower, keyword) {
			return keyword
		}
	}
	return ""
}

// countQueryParams counts &-separated parameters in a raw query string
func countQueryParams(query string) int {
	if query == "" {
		return 0
	}
	return strings.Count(query, "&") + 1
}

// shannonEntropy computes Shannon entropy in bits per character over a
// bounded prefix of the string
func shannonEntropy(s string) float64 {
	runes := []rune(s)
	if len(runes) > entropyPrefixBound {
		runes = runes[:entropyPrefixBound]
	}
	if len(runes) == 0 {
		return 0
	}
	freq := make(map[rune]int)
	for _, r := range runes {
		freq[r]++
	}
	length := float64(len(runes))
	entropy := 0.0
	for _, count := range freq {
		p := float64(count) / length
		entropy -= p * math.Log2(p)
	}
	return entropy
}
