package policy

import "testing"

func TestDetectPayloadType(t *testing.T) {
	tests := []struct {
		content string
		want    PayloadType
	}{
		{"https://example.com/", PayloadURL},
		{"http://example.com/", PayloadURL},
		{"WIFI:T:WPA;S:guest;P:secret;;", PayloadWiFi},
		{"BEGIN:VCARD\nVERSION:3.0\nFN:Jane\nEND:VCARD", PayloadVCard},
		{"MECARD:N:Doe;", PayloadVCard},
		{"SMSTO:+15551234567:hello", PayloadSMS},
		{"sms:+15551234567", PayloadSMS},
		{"mailto:a@example.com", PayloadEmail},
		{"tel:+15551234567", PayloadPhone},
		{"geo:48.2,16.3", PayloadGeo},
		{"just some text", PayloadText},
	}

	for _, tt := range tests {
		if got := DetectPayloadType(tt.content); got != tt.want {
			t.Errorf("DetectPayloadType(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestEvaluatePayload_TypeGating(t *testing.T) {
	e := NewEvaluator(Policy{
		Version:             1,
		AllowedPayloadTypes: []string{"URL", "TEXT"},
		MaxURLLength:        2048,
	})

	blocked := e.EvaluatePayload("WIFI:T:WPA;S:guest;P:secret;;", PayloadWiFi)
	if blocked.Decision != DecisionBlocked || blocked.BlockReason != BlockPayloadTypeBlocked {
		t.Errorf("WIFI payload should be gated, got %+v", blocked)
	}

	ok := e.EvaluatePayload("hello", PayloadText)
	if ok.Decision != DecisionPassed {
		t.Errorf("TEXT payload should pass, got %+v", ok)
	}
}

func TestEvaluatePayload_EmptyTypeSetAllowsAll(t *testing.T) {
	e := NewEvaluator(Default())

	result := e.EvaluatePayload("WIFI:T:WPA;S:guest;P:secret;;", PayloadWiFi)
	if result.Decision != DecisionPassed {
		t.Errorf("Empty allowed-type set should not gate payloads, got %+v", result)
	}
}

func TestEvaluatePayload_URLGoesThroughRuleChain(t *testing.T) {
	e := NewEvaluator(Policy{
		Version:      1,
		BlockedTLDs:  []string{"tk"},
		MaxURLLength: 2048,
	})

	result := e.EvaluatePayload("http://prize.tk/claim", PayloadURL)
	if result.Decision != DecisionBlocked || result.BlockReason != BlockTLDBlocked {
		t.Errorf("URL payload should run the full rule chain, got %+v", result)
	}
}

func TestEvaluatePayload_DetectsTypeWhenUnspecified(t *testing.T) {
	e := NewEvaluator(Policy{
		Version:      1,
		BlockedTLDs:  []string{"tk"},
		MaxURLLength: 2048,
	})

	result := e.EvaluatePayload("http://prize.tk/claim", "")
	if result.Decision != DecisionBlocked {
		t.Errorf("Payload type should be auto-detected, got %+v", result)
	}
}

func TestEvaluatePayload_Smishing(t *testing.T) {
	e := NewEvaluator(Policy{
		Version:      1,
		BlockedTLDs:  []string{"tk"},
		MaxURLLength: 2048,
	})

	result := e.EvaluatePayload("SMSTO:+15551234567:Your parcel is held, pay at http://delivery-fee.tk/pay", PayloadSMS)

	if result.Decision != DecisionBlocked {
		t.Fatalf("Expected smishing to be blocked, got %+v", result)
	}
	if result.BlockReason != BlockSmishingDetected {
		t.Errorf("Expected SMISHING_DETECTED, got %q", result.BlockReason)
	}
}

func TestEvaluatePayload_CleanSMSPasses(t *testing.T) {
	e := NewEvaluator(Policy{
		Version:      1,
		BlockedTLDs:  []string{"tk"},
		MaxURLLength: 2048,
	})

	result := e.EvaluatePayload("SMSTO:+15551234567:Running late, see you at 7", PayloadSMS)
	if result.Decision != DecisionPassed {
		t.Errorf("SMS without links should pass, got %+v", result)
	}
}

func TestEvaluatePayload_SMSWithCleanLinkPasses(t *testing.T) {
	e := NewEvaluator(Policy{
		Version:      1,
		BlockedTLDs:  []string{"tk"},
		MaxURLLength: 2048,
	})

	result := e.EvaluatePayload("SMSTO:+15551234567:Details at https://example.com/event", PayloadSMS)
	if result.Decision != DecisionPassed {
		t.Errorf("SMS with a clean link should pass, got %+v", result)
	}
}
