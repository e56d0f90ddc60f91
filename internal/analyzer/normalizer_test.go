package analyzer

import (
	"strings"
	"testing"
)

func containsAttack(attacks []Attack, want Attack) bool {
	for _, a := range attacks {
		if a == want {
			return true
		}
	}
	return false
}

func TestNormalizer_CleanURLPassesThroughUnchanged(t *testing.T) {
	n := NewNormalizer()

	input := "https://www.google.com/search?q=golang"
	result := n.Normalize(input)

	if result.HasObfuscation {
		t.Errorf("Expected no obfuscation, got attacks %v", result.DetectedAttacks)
	}
	if result.NormalizedURL != input {
		t.Errorf("Expected normalized URL to equal input, got %q", result.NormalizedURL)
	}
	if result.RiskScore != 0 {
		t.Errorf("Expected risk score 0, got %d", result.RiskScore)
	}
}

func TestNormalizer_ZeroWidthCharacters(t *testing.T) {
	n := NewNormalizer()

	result := n.Normalize("https://drop\u200Bbox.com")

	if !containsAttack(result.DetectedAttacks, AttackZeroWidth) {
		t.Fatalf("Expected zero_width_characters attack, got %v", result.DetectedAttacks)
	}
	if strings.ContainsRune(result.NormalizedURL, '\u200B') {
		t.Error("Zero-width character should be stripped from normalized URL")
	}
	if result.NormalizedURL != "https://dropbox.com" {
		t.Errorf("Expected https://dropbox.com, got %q", result.NormalizedURL)
	}
	if result.RiskScore == 0 {
		t.Error("Expected a non-zero risk score")
	}
}

func TestNormalizer_ByteOrderMarkIsStripped(t *testing.T) {
	n := NewNormalizer()

	result := n.Normalize("https://pay\uFEFFpal.com/verify")

	if !containsAttack(result.DetectedAttacks, AttackZeroWidth) {
		t.Fatalf("Expected zero_width_characters attack, got %v", result.DetectedAttacks)
	}
	if result.NormalizedURL != "https://paypal.com/verify" {
		t.Errorf("Expected https://paypal.com/verify, got %q", result.NormalizedURL)
	}
}

func TestNormalizer_DecomposedUnicodePassesThroughUnchanged(t *testing.T) {
	n := NewNormalizer()

	// NFD form: "e" followed by a combining acute accent. Composition would
	// fold the pair into a precomposed letter, so the accent alone must not
	// count as an attack or alter the output bytes.
	input := "https://cafe\u0301.com/menu"
	result := n.Normalize(input)

	if result.HasObfuscation {
		t.Errorf("Expected no obfuscation, got attacks %v", result.DetectedAttacks)
	}
	if result.NormalizedURL != input {
		t.Errorf("Expected normalized URL to equal input, got %q", result.NormalizedURL)
	}
}

func TestNormalizer_InjectedCombiningMarks(t *testing.T) {
	n := NewNormalizer()

	// A diaeresis on "q" has no precomposed form, so the mark survives NFC
	// and marks the URL as manipulated
	result := n.Normalize("https://example.com/q\u0308uery")

	if !containsAttack(result.DetectedAttacks, AttackCombiningMarks) {
		t.Fatalf("Expected combining_marks attack, got %v", result.DetectedAttacks)
	}
}

func TestNormalizer_RTLOverride(t *testing.T) {
	n := NewNormalizer()

	result := n.Normalize("https://example.com/document\u202Egpj.exe")

	if !containsAttack(result.DetectedAttacks, AttackRTLOverride) {
		t.Fatalf("Expected rtl_override attack, got %v", result.DetectedAttacks)
	}
	if strings.ContainsRune(result.NormalizedURL, '\u202E') {
		t.Error("RTL override character should be stripped from normalized URL")
	}
}

func TestNormalizer_DoubleEncoding(t *testing.T) {
	n := NewNormalizer()

	// %252e decodes to %2e, which decodes again to "."
	result := n.Normalize("https://example.com/%252e%252e/admin")

	if !containsAttack(result.DetectedAttacks, AttackDoubleEncoding) {
		t.Fatalf("Expected double_encoding attack, got %v", result.DetectedAttacks)
	}
}

func TestNormalizer_SingleEncodingIsNotFlagged(t *testing.T) {
	n := NewNormalizer()

	result := n.Normalize("https://example.com/a%20b")

	if containsAttack(result.DetectedAttacks, AttackDoubleEncoding) {
		t.Error("A single round of percent-encoding should not be flagged")
	}
}

func TestNormalizer_NestedRedirect(t *testing.T) {
	n := NewNormalizer()

	result := n.Normalize("https://example.com/?next=https%3A%2F%2Fevil.com%2Flogin")

	if !containsAttack(result.DetectedAttacks, AttackNestedRedirects) {
		t.Fatalf("Expected nested_redirects attack, got %v", result.DetectedAttacks)
	}
	if len(result.NestedURLs) != 1 {
		t.Fatalf("Expected 1 nested URL, got %d", len(result.NestedURLs))
	}
	if result.NestedURLs[0] != "https://evil.com/login" {
		t.Errorf("Expected decoded nested URL, got %q", result.NestedURLs[0])
	}
}

func TestNormalizer_JavascriptSchemeInQuery(t *testing.T) {
	n := NewNormalizer()

	result := n.Normalize("https://example.com/?u=javascript:alert(1)")

	if !containsAttack(result.DetectedAttacks, AttackNestedRedirects) {
		t.Fatalf("Expected nested_redirects attack, got %v", result.DetectedAttacks)
	}
}

func TestNormalizer_PlainQueryValuesAreNotRedirects(t *testing.T) {
	n := NewNormalizer()

	result := n.Normalize("https://example.com/?redirect=homepage&q=hello")

	if containsAttack(result.DetectedAttacks, AttackNestedRedirects) {
		t.Error("Query values that are not absolute URLs should not be flagged")
	}
}

func TestNormalizer_PunycodeLabel(t *testing.T) {
	n := NewNormalizer()

	result := n.Normalize("https://xn--pypal-4ve.com/signin")

	if !containsAttack(result.DetectedAttacks, AttackPunycodeDomain) {
		t.Fatalf("Expected punycode_domain attack, got %v", result.DetectedAttacks)
	}
}

func TestNormalizer_MixedScriptsInHost(t *testing.T) {
	n := NewNormalizer()

	// Cyrillic small a inside an otherwise Latin label
	result := n.Normalize("https://pаypal.com/login")

	if !containsAttack(result.DetectedAttacks, AttackMixedScripts) {
		t.Fatalf("Expected mixed_scripts attack, got %v", result.DetectedAttacks)
	}
}

func TestNormalizer_FullyCyrillicHostIsNotMixed(t *testing.T) {
	n := NewNormalizer()

	result := n.Normalize("https://почта.рф/")

	if containsAttack(result.DetectedAttacks, AttackMixedScripts) {
		t.Error("A single-script non-Latin host should not be flagged as mixed")
	}
}

func TestNormalizer_DecimalIPRewritten(t *testing.T) {
	n := NewNormalizer()

	// 3627734734 == 216.58.214.206
	result := n.Normalize("http://3627734734/")

	if !containsAttack(result.DetectedAttacks, AttackDecimalIP) {
		t.Fatalf("Expected decimal_ip attack, got %v", result.DetectedAttacks)
	}
	if !strings.Contains(result.NormalizedURL, "216.58.214.206") {
		t.Errorf("Expected dotted-quad rewrite, got %q", result.NormalizedURL)
	}
}

func TestNormalizer_UppercaseHexIPRewritten(t *testing.T) {
	n := NewNormalizer()

	// 0XC0A80101 == 192.168.1.1; the uppercase prefix must not survive
	result := n.Normalize("http://0XC0A80101/admin")

	if !containsAttack(result.DetectedAttacks, AttackHexIP) {
		t.Fatalf("Expected hex_ip attack, got %v", result.DetectedAttacks)
	}
	if result.NormalizedURL != "http://192.168.1.1/admin" {
		t.Errorf("Expected dotted-quad rewrite, got %q", result.NormalizedURL)
	}
}

func TestNormalizer_Deterministic(t *testing.T) {
	n := NewNormalizer()

	input := "https://xn--e1awd7f.example.com/%252e?next=https://evil.com\u200B"
	first := n.Normalize(input)
	for i := 0; i < 10; i++ {
		again := n.Normalize(input)
		if again.RiskScore != first.RiskScore || again.NormalizedURL != first.NormalizedURL {
			t.Fatalf("Run %d differed: %+v vs %+v", i, again, first)
		}
		if len(again.DetectedAttacks) != len(first.DetectedAttacks) {
			t.Fatalf("Attack list length changed between runs")
		}
		for j := range again.DetectedAttacks {
			if again.DetectedAttacks[j] != first.DetectedAttacks[j] {
				t.Fatalf("Attack order changed between runs")
			}
		}
	}
}

func TestNormalizer_AdversarialInputIsBounded(t *testing.T) {
	n := NewNormalizer()

	// A 10,000+ character URL combining punycode, double encoding, zero-width
	// characters, and an RTL override
	var b strings.Builder
	b.WriteString("https://xn--pypal-4ve.com/")
	for b.Len() < 12000 {
		b.WriteString("%252e\u200B\u202Ea")
	}
	result := n.Normalize(b.String())

	if !result.HasObfuscation {
		t.Error("Expected obfuscation to be detected")
	}
	if result.RiskScore < 0 || result.RiskScore > 100 {
		t.Errorf("Risk score out of bounds: %d", result.RiskScore)
	}
}

func TestNormalizer_EmptyInput(t *testing.T) {
	n := NewNormalizer()

	result := n.Normalize("")

	if result.HasObfuscation {
		t.Error("Empty input should report no attacks")
	}
	if result.NormalizedURL != "" {
		t.Errorf("Expected empty normalized URL, got %q", result.NormalizedURL)
	}
}
