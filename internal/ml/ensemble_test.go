package ml

import (
	"math"
	"strings"
	"testing"
)

func TestEnsemble_ScoreBounds(t *testing.T) {
	e := NewEnsemble(nil, nil)

	urls := []string{
		"https://www.google.com/",
		"http://paypa1-secure.tk/login",
		"http://192.168.1.1/verify",
		"",
		strings.Repeat("%", 5000),
	}

	for _, u := range urls {
		result := e.Score(u)
		if result.EnsembleScore < 0 || result.EnsembleScore > 1 {
			t.Errorf("Score(%q) ensemble score out of bounds: %f", u, result.EnsembleScore)
		}
		if result.CharScore < 0 || result.CharScore > 1 {
			t.Errorf("Score(%q) char score out of bounds: %f", u, result.CharScore)
		}
		if result.FeatureScore < 0 || result.FeatureScore > 1 {
			t.Errorf("Score(%q) feature score out of bounds: %f", u, result.FeatureScore)
		}
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Errorf("Score(%q) confidence out of bounds: %f", u, result.Confidence)
		}
	}
}

func TestEnsemble_Deterministic(t *testing.T) {
	e := NewEnsemble(nil, nil)

	u := "http://paypa1-secure.tk/login"
	first := e.Score(u)
	for i := 0; i < 10; i++ {
		again := e.Score(u)
		if again.EnsembleScore != first.EnsembleScore ||
			again.CharScore != first.CharScore ||
			again.FeatureScore != first.FeatureScore {
			t.Fatalf("Run %d differed: %+v vs %+v", i, again, first)
		}
	}
}

func TestEnsemble_SeparatesSafeFromPhishing(t *testing.T) {
	e := NewEnsemble(nil, nil)

	safe := e.Score("https://www.google.com/")
	phishing := e.Score("http://paypa1-secure.tk/login")

	if safe.IsPhishing {
		t.Errorf("google.com scored as phishing: %f", safe.EnsembleScore)
	}
	if !phishing.IsPhishing {
		t.Errorf("Combosquat on a free TLD scored as safe: %f", phishing.EnsembleScore)
	}
	if phishing.EnsembleScore <= safe.EnsembleScore {
		t.Errorf("Expected phishing score %f above safe score %f",
			phishing.EnsembleScore, safe.EnsembleScore)
	}
}

func TestEnsemble_ShortenerScoresHigh(t *testing.T) {
	e := NewEnsemble(nil, nil)

	result := e.Score("http://bit.ly/3xYzAbC")
	if !result.IsPhishing {
		t.Errorf("Shortened URL should land above the threshold, got %f", result.EnsembleScore)
	}
}

func TestEnsemble_AgreementAdjustment(t *testing.T) {
	e := NewEnsemble(nil, nil)

	result := e.Score("http://paypa1-secure.tk/login")
	weighted := charModelWeight*result.CharScore + featureModelWeight*result.FeatureScore

	if result.CharScore >= agreeHighBound && result.FeatureScore >= agreeHighBound {
		want := math.Min(weighted+agreementBoost, 1)
		if math.Abs(result.EnsembleScore-want) > 1e-9 {
			t.Errorf("Expected boosted score %f, got %f", want, result.EnsembleScore)
		}
	} else {
		if math.Abs(result.EnsembleScore-weighted) > 1e-9 {
			t.Errorf("Expected unadjusted weighted average %f, got %f", weighted, result.EnsembleScore)
		}
	}
}

func TestEnsemble_TopFeaturesRanked(t *testing.T) {
	e := NewEnsemble(nil, nil)

	result := e.Score("http://paypa1-secure.tk/login?a=1&b=2")

	if len(result.TopFeatures) == 0 {
		t.Fatal("Expected at least one contributing feature")
	}
	if len(result.TopFeatures) > 5 {
		t.Errorf("Expected at most 5 top features, got %d", len(result.TopFeatures))
	}
	for i := 1; i < len(result.TopFeatures); i++ {
		if result.TopFeatures[i].Importance > result.TopFeatures[i-1].Importance {
			t.Errorf("Top features not sorted by importance at index %d", i)
		}
	}
}

func TestLogisticModel_NeutralOnNonFinite(t *testing.T) {
	m := &LogisticModel{}
	var features [FeatureCount]float64
	features[3] = math.NaN()

	if got := m.Predict(features); got != 0.5 {
		t.Errorf("Expected neutral 0.5 for non-finite input, got %f", got)
	}
}

func TestFeatureNet_NeutralOnNonFinite(t *testing.T) {
	n := NewFeatureNet(nil)
	var features [FeatureCount]float64
	features[0] = math.Inf(1)

	if got := n.Predict(features); got != 0.5 {
		t.Errorf("Expected neutral 0.5 for non-finite input, got %f", got)
	}
}

func TestCharNet_IndexingIsBounded(t *testing.T) {
	n := NewCharNet(nil)

	// Control characters, multibyte runes, and DEL all map into the vocab
	inputs := []string{
		"\x00\x01\x7f",
		"почта.рф",
		strings.Repeat("\xff", 300),
	}
	for _, in := range inputs {
		score := n.Predict(in)
		if score < 0 || score > 1 {
			t.Errorf("Predict(%q) out of bounds: %f", in, score)
		}
	}
}
