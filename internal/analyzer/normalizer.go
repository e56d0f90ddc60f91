package analyzer

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalization limits
const (
	maxInputRunes       = 10000 // Longer input is truncated, never rejected
	maxDecodeIterations = 3     // Cap on iterative percent-decoding
	maxNestedURLs       = 5     // Cap on collected embedded URLs
)

// attackWeights maps each obfuscation technique to its fixed score contribution
var attackWeights = map[Attack]int{
	AttackMixedScripts:    20,
	AttackZeroWidth:       20,
	AttackDoubleEncoding:  15,
	AttackNestedRedirects: 15,
	AttackRTLOverride:     25,
	AttackCombiningMarks:  15,
	AttackDecimalIP:       15,
	AttackHexIP:           15,
	AttackOctalIP:         15,
	AttackMixedIPNotation: 20,
	AttackPunycodeDomain:  10,
}

// zeroWidthChars are invisible characters used to break up hostnames visually
var zeroWidthChars = map[rune]bool{
	'\u200B': true, // zero width space
	'\u200C': true, // zero width non-joiner
	'\u200D': true, // zero width joiner
	'\uFEFF': true, // zero width no-break space / BOM
}

const rtlOverride = '\u202E'

// Normalizer performs lexical URL cleanup and obfuscation detection.
// It is stateless and safe for concurrent use.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer instance
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize cleans up a raw URL string and reports every obfuscation
// technique it finds. It never fails: any string input produces a result.
// When no attack is detected the normalized URL is byte-identical to the
// whitespace-trimmed input.
func (n *Normalizer) Normalize(raw string) *NormalizationResult {
	result := &NormalizationResult{}

	// Bound the input before any scanning
	trimmed := strings.TrimSpace(raw)
	if runes := []rune(trimmed); len(runes) > maxInputRunes {
		trimmed = string(runes[:maxInputRunes])
	}

	attacks := make(map[Attack]bool)

	// Iteratively percent-decode a working copy. The decoded form drives
	// detection only; the output URL is built from the trimmed input so a
	// clean URL passes through unchanged.
	decoded, decodePasses := iterativeDecode(trimmed)
	if decodePasses >= 2 {
		attacks[AttackDoubleEncoding] = true
	}

	// Strip invisible characters and the RTL override from the output form
	normalized := trimmed
	if containsAnyRune(normalized, isZeroWidth) {
		attacks[AttackZeroWidth] = true
		normalized = stripRunes(normalized, isZeroWidth)
	}
	if strings.ContainsRune(normalized, rtlOverride) {
		attacks[AttackRTLOverride] = true
		normalized = stripRunes(normalized, func(r rune) bool { return r == rtlOverride })
	}

	// Canonically compose a scratch copy, then look for free-standing
	// combining marks. Precomposed accented letters survive NFC without any
	// Mn runes, so a mark remaining here was injected rather than part of a
	// real character. The composed form replaces the output only when an
	// attack was found, keeping clean input byte-identical.
	composed := norm.NFC.String(normalized)
	if containsAnyRune(composed, func(r rune) bool { return unicode.Is(unicode.Mn, r) }) {
		attacks[AttackCombiningMarks] = true
		normalized = composed
	}

	// Host-level checks: punycode labels, mixed scripts, exotic IP notation.
	// The raw-case host drives the rewrite so an uppercase evasion like
	// 0XC0A80101 still gets replaced in the output.
	rawHost := extractHost(normalized)
	host := strings.ToLower(rawHost)
	if host != "" {
		if hasPunycodeLabel(host) {
			attacks[AttackPunycodeDomain] = true
		}
		if hostHasMixedScripts(host) {
			attacks[AttackMixedScripts] = true
		}
		if dotted, notation, ok := normalizeIPLiteral(host); ok {
			attacks[notation] = true
			normalized = strings.Replace(normalized, rawHost, dotted, 1)
		}
	}

	// Scan query values (of the decoded form) for embedded absolute URLs
	nested := extractNestedURLs(decoded)
	if len(nested) > 0 {
		attacks[AttackNestedRedirects] = true
		result.NestedURLs = nested
	}

	// Order attacks deterministically and sum the per-attack weights
	score := 0
	for _, attack := range attackOrder {
		if attacks[attack] {
			result.DetectedAttacks = append(result.DetectedAttacks, attack)
			score += attackWeights[attack]
		}
	}
	if score > 100 {
		score = 100
	}

	result.NormalizedURL = normalized
	result.HasObfuscation = len(attacks) > 0
	result.RiskScore = score
	return result
}

// attackOrder fixes the reporting order so identical inputs always yield
// identical results
var attackOrder = []Attack{
	AttackMixedScripts,
	AttackZeroWidth,
	AttackDoubleEncoding,
	AttackNestedRedirects,
	AttackRTLOverride,
	AttackCombiningMarks,
	AttackDecimalIP,
	AttackHexIP,
	AttackOctalIP,
	AttackMixedIPNotation,
	AttackPunycodeDomain,
}

// iterativeDecode percent-decodes a string until it stops changing, up to a
// fixed iteration cap. Returns the decoded string and how many passes
// actually changed it.
func iterativeDecode(s string) (string, int) {
	current := s
	passes := 0
	for i := 0; i < maxDecodeIterations; i++ {
		decoded, err := url.PathUnescape(current)
		if err != nil || decoded == current {
			break
		}
		current = decoded
		passes++
	}
	return current, passes
}

func isZeroWidth(r rune) bool {
	return zeroWidthChars[r]
}

// containsAnyRune reports whether any rune in s satisfies pred
func containsAnyRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}

// stripRunes removes every rune satisfying pred
func stripRunes(s string, pred func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !pred(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// extractHost pulls the host portion out of a URL string without requiring a
// full parse, preserving its original case. Used before the parser runs, so
// it has to tolerate anything.
func extractHost(s string) string {
	rest := s
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+3:]
	}
	// Host ends at the first path, query, or fragment delimiter
	if idx := strings.IndexAny(rest, "/?#"); idx >= 0 {
		rest = rest[:idx]
	}
	// Drop userinfo
	if idx := strings.LastIndex(rest, "@"); idx >= 0 {
		rest = rest[idx+1:]
	}
	// Drop a port, but leave bracketed IPv6 literals alone
	if !strings.HasPrefix(rest, "[") {
		if idx := strings.LastIndex(rest, ":"); idx >= 0 {
			rest = rest[:idx]
		}
	}
	return rest
}

// hasPunycodeLabel reports whether any DNS label carries the ACE prefix
func hasPunycodeLabel(host string) bool {
	for _, label := range strings.Split(host, ".") {
		if strings.HasPrefix(label, "xn--") {
			return true
		}
	}
	return false
}

// hostHasMixedScripts reports whether any single label mixes Latin letters
// with Cyrillic or Greek ones. A label written entirely in one non-Latin
// script is legitimate and not flagged.
func hostHasMixedScripts(host string) bool {
	for _, label := range strings.Split(host, ".") {
		hasLatin := false
		hasConfusableScript := false
		for _, r := range label {
			if !unicode.IsLetter(r) {
				continue
			}
			switch {
			case unicode.In(r, unicode.Latin):
				hasLatin = true
			case unicode.In(r, unicode.Cyrillic), unicode.In(r, unicode.Greek):
				hasConfusableScript = true
			}
			if hasLatin && hasConfusableScript {
				return true
			}
		}
	}
	return false
}

// extractNestedURLs collects absolute URLs and dangerous URI schemes embedded
// in query-string values. A value merely containing the word "redirect" is
// not enough: it has to parse as an absolute URL or a script/data scheme.
func extractNestedURLs(s string) []string {
	queryStart := strings.Index(s, "?")
	if queryStart < 0 || queryStart == len(s)-1 {
		return nil
	}
	query := s[queryStart+1:]
	if idx := strings.Index(query, "#"); idx >= 0 {
		query = query[:idx]
	}

	var nested []string
	for _, pair := range strings.Split(query, "&") {
		if len(nested) >= maxNestedURLs {
			break
		}
		value := pair
		if idx := strings.Index(pair, "="); idx >= 0 {
			value = pair[idx+1:]
		}
		// Values may arrive still percent-encoded
		if unescaped, err := url.QueryUnescape(value); err == nil {
			value = unescaped
		}
		if isEmbeddedURL(value) {
			nested = append(nested, value)
		}
	}
	return nested
}

// isEmbeddedURL reports whether a query value is itself an absolute URL or a
// javascript:/data: URI
func isEmbeddedURL(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "data:") {
		return true
	}
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}
	parsed, err := url.Parse(strings.TrimSpace(value))
	return err == nil && parsed.Host != ""
}
