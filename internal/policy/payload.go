package policy

import (
	"fmt"
	"regexp"
	"strings"
)

// PayloadType classifies decoded QR content
type PayloadType string

const (
	PayloadURL   PayloadType = "URL"
	PayloadWiFi  PayloadType = "WIFI"
	PayloadVCard PayloadType = "VCARD"
	PayloadSMS   PayloadType = "SMS"
	PayloadText  PayloadType = "TEXT"
	PayloadEmail PayloadType = "EMAIL"
	PayloadPhone PayloadType = "PHONE"
	PayloadGeo   PayloadType = "GEO"
)

// DetectPayloadType classifies raw decoded content by its scheme prefix,
// defaulting to TEXT
func DetectPayloadType(content string) PayloadType {
	trimmed := strings.TrimSpace(content)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return PayloadURL
	case strings.HasPrefix(lower, "wifi:"):
		return PayloadWiFi
	case strings.HasPrefix(lower, "begin:vcard"), strings.HasPrefix(lower, "mecard:"):
		return PayloadVCard
	case strings.HasPrefix(lower, "smsto:"), strings.HasPrefix(lower, "sms:"):
		return PayloadSMS
	case strings.HasPrefix(lower, "mailto:"), strings.HasPrefix(lower, "matmsg:"):
		return PayloadEmail
	case strings.HasPrefix(lower, "tel:"):
		return PayloadPhone
	case strings.HasPrefix(lower, "geo:"):
		return PayloadGeo
	default:
		return PayloadText
	}
}

// smsURLPattern finds http(s) URLs embedded in SMS body text. RE2 matching
// is linear-time, so adversarial bodies cannot stall evaluation.
var smsURLPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// maxSMSBodyURLs bounds how many embedded links one SMS body is screened for
const maxSMSBodyURLs = 10

// EvaluatePayload screens a decoded QR payload. URL payloads go through the
// full URL rule chain; SMS payloads additionally have their body scanned for
// embedded links, and any link the policy would block marks the whole payload
// as smishing. Other payload types are only gated by the allowed-type set.
func (e *Evaluator) EvaluatePayload(content string, payloadType PayloadType) Result {
	if len(e.allowedTypes) > 0 && !e.allowedTypes[payloadType] {
		return blocked(BlockPayloadTypeBlocked, fmt.Sprintf("payload type %s is not permitted", payloadType))
	}

	switch payloadType {
	case PayloadURL:
		return e.Evaluate(content)
	case PayloadSMS:
		return e.evaluateSMS(content)
	default:
		return passed()
	}
}

// evaluateSMS extracts URLs from an SMS body and flags the payload as
// smishing if any embedded link violates the policy
func (e *Evaluator) evaluateSMS(content string) Result {
	body := smsBody(content)
	urls := smsURLPattern.FindAllString(body, maxSMSBodyURLs)
	for _, u := range urls {
		res := e.Evaluate(u)
		if res.Decision == DecisionBlocked {
			return blocked(BlockSmishingDetected, fmt.Sprintf("SMS body contains blocked link %s (%s)", u, res.BlockReason))
		}
		if res.Decision == DecisionRequiresReview {
			return review(fmt.Sprintf("SMS body contains link needing review: %s", u))
		}
	}
	return passed()
}

// smsBody strips the SMSTO:/sms: envelope down to the message text.
// "SMSTO:+15551234567:Click http://evil.tk" yields everything after the
// second colon.
func smsBody(content string) string {
	trimmed := strings.TrimSpace(content)
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "smsto:") && !strings.HasPrefix(lower, "sms:") {
		return trimmed
	}
	rest := trimmed[strings.Index(trimmed, ":")+1:]
	if i := strings.Index(rest, ":"); i >= 0 {
		return rest[i+1:]
	}
	return rest
}

func payloadTypeSet(names []string) map[PayloadType]bool {
	set := make(map[PayloadType]bool, len(names))
	for _, name := range names {
		set[PayloadType(strings.ToUpper(strings.TrimSpace(name)))] = true
	}
	return set
}
