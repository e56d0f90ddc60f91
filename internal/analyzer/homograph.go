package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/net/idna"
)

// Homograph scoring constants
const (
	punycodeScore      = 20 // Fixed contribution for any ACE (xn--) label
	confusableScore    = 10 // Per detected lookalike character
	confusableScoreCap = 50 // Cap on the per-character total
)

// confusables maps visually deceptive Cyrillic and Greek characters to the
// Latin letter they imitate. Curated for the characters actually used in
// observed IDN homograph attacks.
var confusables = map[rune]rune{
	// Cyrillic
	'а': 'a', 'е': 'e', 'о': 'o', 'р': 'p', 'с': 'c',
	'х': 'x', 'у': 'y', 'і': 'i', 'ѕ': 's', 'ј': 'j',
	'ԁ': 'd', 'ԛ': 'q', 'ԝ': 'w', 'һ': 'h', 'ӏ': 'l',
	'в': 'b', 'к': 'k', 'м': 'm', 'н': 'h', 'т': 't',
	// Greek
	'α': 'a', 'ε': 'e', 'ι': 'i', 'κ': 'k', 'ν': 'v',
	'ο': 'o', 'ρ': 'p', 'τ': 't', 'υ': 'u', 'χ': 'x',
	'β': 'b', 'γ': 'y',
}

// scriptBlocks resolves a rune to a display name for its Unicode script
var scriptBlocks = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"Latin", unicode.Latin},
	{"Cyrillic", unicode.Cyrillic},
	{"Greek", unicode.Greek},
	{"Armenian", unicode.Armenian},
	{"Hebrew", unicode.Hebrew},
	{"Arabic", unicode.Arabic},
	{"Han", unicode.Han},
	{"Hangul", unicode.Hangul},
	{"Hiragana", unicode.Hiragana},
	{"Katakana", unicode.Katakana},
}

// HomographAnalyzer detects punycode and confusable-character attacks in
// hostnames. It is stateless and safe for concurrent use.
type HomographAnalyzer struct{}

// NewHomographAnalyzer creates a new HomographAnalyzer instance
func NewHomographAnalyzer() *HomographAnalyzer {
	return &HomographAnalyzer{}
}

// Analyze inspects a host for homograph attacks. ACE labels are decoded to
// Unicode and contribute a fixed score independently of any per-character
// findings. A host written entirely in one non-Latin script is presumed to
// be a legitimate internationalized domain and is not scanned for
// confusables.
func (h *HomographAnalyzer) Analyze(host string) *HomographResult {
	result := &HomographResult{}
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return result
	}

	scanTarget := host

	// Decode punycode labels first so the confusable scan sees the real
	// characters an address bar would render
	if hasPunycodeLabel(host) {
		result.Score += punycodeScore
		if decoded, err := idna.Lookup.ToUnicode(host); err == nil && decoded != host {
			result.Punycode = decoded
			scanTarget = decoded
		}
		result.IsHomograph = true
	}

	// Single-script exemption: no Latin letters at all means nothing is
	// being imitated (e.g. a fully Cyrillic or fully Greek domain)
	if isSingleNonLatinScript(scanTarget) {
		result.SafeDisplayHost = scanTarget
		return result
	}

	// Scan every code point against the lookalike table
	charScore := 0
	display := make([]rune, 0, len(scanTarget))
	for pos, r := range []rune(scanTarget) {
		lookalike, found := confusables[r]
		if !found {
			display = append(display, r)
			continue
		}
		charScore += confusableScore
		display = append(display, lookalike)
		result.DetectedCharacters = append(result.DetectedCharacters, ConfusableChar{
			Position:     pos,
			SourceChar:   string(r),
			LookalikeOf:  string(lookalike),
			UnicodeBlock: scriptBlockName(r),
		})
	}
	if charScore > confusableScoreCap {
		charScore = confusableScoreCap
	}
	result.Score += charScore

	if len(result.DetectedCharacters) > 0 {
		result.IsHomograph = true
	}
	result.SafeDisplayHost = string(display)
	return result
}

// isSingleNonLatinScript reports whether every letter in the host belongs to
// the same non-Latin script. Digits, dots, and hyphens are ignored.
func isSingleNonLatinScript(host string) bool {
	script := ""
	for _, r := range host {
		if !unicode.IsLetter(r) {
			continue
		}
		name := scriptBlockName(r)
		if name == "Latin" || name == "" {
			return false
		}
		if script == "" {
			script = name
			continue
		}
		if name != script {
			return false
		}
	}
	return script != ""
}

// scriptBlockName returns the display name of the script a rune belongs to,
// or empty when it is not in the recognized set
func scriptBlockName(r rune) string {
	for _, block := range scriptBlocks {
		if unicode.In(r, block.table) {
			return block.name
		}
	}
	return ""
}
