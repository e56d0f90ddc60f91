package analyzer

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func newTestEngine() *Engine {
	return NewEngine(Config{})
}

func TestEngine_KnownSafeDomain(t *testing.T) {
	e := newTestEngine()

	result := e.Analyze("https://www.google.com/search?q=weather")

	if result.Verdict != VerdictSafe {
		t.Fatalf("Expected safe verdict, got %q (score %d, flags %v)",
			result.Verdict, result.Score, result.Flags)
	}
	if result.Score >= verdictSafeBelow {
		t.Errorf("Expected score below %d, got %d", verdictSafeBelow, result.Score)
	}
}

func TestEngine_MaliciousPattern(t *testing.T) {
	e := newTestEngine()

	result := e.Analyze("http://paypa1-secure.tk/login")

	if result.Verdict == VerdictSafe {
		t.Fatalf("Combosquat on a free TLD must not be safe, got score %d", result.Score)
	}
	if result.Score < 50 {
		t.Errorf("Expected score >= 50, got %d", result.Score)
	}
}

func TestEngine_EmptyInputIsMaximumRisk(t *testing.T) {
	e := newTestEngine()

	result := e.Analyze("")

	if result.Score != 100 {
		t.Errorf("Expected score 100 for empty input, got %d", result.Score)
	}
	if result.Verdict != VerdictMalicious {
		t.Errorf("Expected malicious verdict, got %q", result.Verdict)
	}
}

func TestEngine_UnparsableURLIsSuspicious(t *testing.T) {
	e := newTestEngine()

	result := e.Analyze("ftp://example.com/file.zip")

	if result.Verdict != VerdictSuspicious {
		t.Errorf("Expected suspicious verdict for unsupported scheme, got %q", result.Verdict)
	}
	if len(result.Flags) == 0 {
		t.Error("Expected an explanatory flag for the parse failure")
	}
}

func TestEngine_OfficialDomainCeiling(t *testing.T) {
	e := newTestEngine()

	// Official brand domain with noisy-looking extras must stay below the
	// suspicious band regardless of what the ML ensemble thinks
	result := e.Analyze("http://paypal.com/login/verify?a=1")

	if result.Score > officialDomainCeiling {
		t.Errorf("Official domain score must be capped at %d, got %d",
			officialDomainCeiling, result.Score)
	}
	if result.Verdict != VerdictSafe {
		t.Errorf("Expected safe verdict for official domain, got %q", result.Verdict)
	}
}

func TestEngine_HomographDomainFlagged(t *testing.T) {
	e := newTestEngine()

	result := e.Analyze("https://pаypal.com/signin")

	if result.Verdict == VerdictSafe {
		t.Fatalf("Lookalike domain must not be safe, got score %d", result.Score)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	e := newTestEngine()

	urls := []string{
		"https://www.google.com/",
		"http://paypa1-secure.tk/login",
		"https://xn--pypal-4ve.com/verify",
		"http://0xC0.168.01.10/admin",
		"",
	}

	for _, u := range urls {
		first := e.Analyze(u)
		for i := 0; i < 5; i++ {
			again := e.Analyze(u)
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("Analyze(%q) run %d differed:\n%+v\nvs\n%+v", u, i, first, again)
			}
		}
	}
}

func TestEngine_ScoreBounds(t *testing.T) {
	e := newTestEngine()

	urls := []string{
		"https://www.google.com/",
		"http://paypa1-secure.tk/login",
		"http://203.0.113.7:4444/verify@wallet",
		strings.Repeat("x", 500),
		"https://" + strings.Repeat("sub.", 20) + "example.tk/" + strings.Repeat("%252e", 50),
	}

	for _, u := range urls {
		result := e.Analyze(u)
		if result.Score < 0 || result.Score > 100 {
			t.Errorf("Analyze(%q) score out of bounds: %d", u, result.Score)
		}
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Errorf("Analyze(%q) confidence out of bounds: %f", u, result.Confidence)
		}
	}
}

func TestEngine_AdversarialURLCompletesQuickly(t *testing.T) {
	e := newTestEngine()

	var b strings.Builder
	b.WriteString("https://xn--pypal-4ve.\u200Bexample.tk/")
	for b.Len() < 10000 {
		b.WriteString("%252e\u202E\u200Ba")
	}

	start := time.Now()
	result := e.Analyze(b.String())
	elapsed := time.Since(start)

	if result == nil {
		t.Fatal("Expected a result for adversarial input")
	}
	if elapsed > 2*time.Second {
		t.Errorf("Adversarial analysis took too long: %v", elapsed)
	}
}

func TestEngine_FlagsAreDeduplicated(t *testing.T) {
	e := newTestEngine()

	result := e.Analyze("http://paypa1-secure.tk/login")

	seen := make(map[string]bool)
	for _, flag := range result.Flags {
		if seen[flag] {
			t.Errorf("Duplicate flag %q", flag)
		}
		seen[flag] = true
	}
	if len(result.Flags) == 0 {
		t.Error("Expected at least one flag")
	}
}

func TestEngine_Batch(t *testing.T) {
	e := newTestEngine()

	results := e.AnalyzeBatch([]string{
		"https://www.google.com/",
		"http://paypa1-secure.tk/login",
	})

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Verdict != VerdictSafe {
		t.Errorf("Expected first result safe, got %q", results[0].Verdict)
	}
	if results[1].Verdict == VerdictSafe {
		t.Error("Expected second result not safe")
	}
}

func TestEngine_ReportIncludesComponents(t *testing.T) {
	e := newTestEngine()

	report := e.AnalyzeReport("http://paypa1-secure.tk/login")

	if report.Components == nil || report.Heuristics == nil || report.Brand == nil ||
		report.Homograph == nil || report.ML == nil || report.Normalization == nil {
		t.Fatal("Expected every component section to be populated")
	}
	if report.Components.RegistrableDomain != "paypa1-secure.tk" {
		t.Errorf("Unexpected registrable domain %q", report.Components.RegistrableDomain)
	}
	if report.Assessment.Score < 50 {
		t.Errorf("Expected score >= 50, got %d", report.Assessment.Score)
	}
}
