package policy

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/mehrguard/urlguard/internal/analyzer"
)

// Decision is the outcome class of a policy evaluation
type Decision string

const (
	DecisionAllowed        Decision = "allowed"
	DecisionBlocked        Decision = "blocked"
	DecisionRequiresReview Decision = "requires_review"
	// DecisionPassed means no rule matched and the URL falls through to
	// the classifier
	DecisionPassed Decision = "passed_policy"
)

// BlockReason identifies which rule produced a block
type BlockReason string

const (
	BlockDomainBlocked      BlockReason = "DOMAIN_BLOCKED"
	BlockTLDBlocked         BlockReason = "TLD_BLOCKED"
	BlockHTTPSRequired      BlockReason = "HTTPS_REQUIRED"
	BlockIPAddress          BlockReason = "IP_ADDRESS"
	BlockShortener          BlockReason = "SHORTENER"
	BlockLengthExceeded     BlockReason = "LENGTH_EXCEEDED"
	BlockPatternMatch       BlockReason = "PATTERN_MATCH"
	BlockPayloadTypeBlocked BlockReason = "PAYLOAD_TYPE_BLOCKED"
	BlockSmishingDetected   BlockReason = "SMISHING_DETECTED"
)

// Result is the outcome of evaluating one URL or payload against a policy
type Result struct {
	Decision    Decision    `json:"decision"`
	Reason      string      `json:"reason,omitempty"`
	BlockReason BlockReason `json:"blockReason,omitempty"` // set when Decision is blocked
}

func allowed(reason string) Result {
	return Result{Decision: DecisionAllowed, Reason: reason}
}

func blocked(br BlockReason, reason string) Result {
	return Result{Decision: DecisionBlocked, Reason: reason, BlockReason: br}
}

func review(reason string) Result {
	return Result{Decision: DecisionRequiresReview, Reason: reason}
}

func passed() Result {
	return Result{Decision: DecisionPassed}
}

// strictModeMaxSubdomains is the subdomain depth above which strict mode
// escalates to review
const strictModeMaxSubdomains = 3

// Evaluator applies a Policy to URLs and QR payloads. Patterns are compiled
// once at construction; invalid regular expressions are dropped so a bad
// pattern can never take the evaluator down.
type Evaluator struct {
	policy        Policy
	allowPatterns []*regexp.Regexp
	blockPatterns []*regexp.Regexp
	allowedTypes  map[PayloadType]bool
	parser        *analyzer.Parser
}

// NewEvaluator compiles the policy into an evaluator. The returned evaluator
// is read-only and safe for concurrent use.
func NewEvaluator(p Policy) *Evaluator {
	return &Evaluator{
		policy:        p,
		allowPatterns: compilePatterns(p.AllowedPatterns),
		blockPatterns: compilePatterns(p.BlockedPatterns),
		allowedTypes:  payloadTypeSet(p.AllowedPayloadTypes),
		parser:        analyzer.NewParser(),
	}
}

// Policy returns the policy this evaluator was built from
func (e *Evaluator) Policy() Policy {
	return e.policy
}

// Evaluate applies the policy rules to a URL. Allow rules always win over
// block rules: an explicitly allow-listed domain bypasses an org-wide TLD or
// shortener block. Rules are checked in a fixed order and the first match
// decides.
func (e *Evaluator) Evaluate(rawURL string) Result {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return review("empty URL")
	}

	host := e.evalHost(trimmed)

	// Allow rules first
	if host != "" && matchDomainList(host, e.policy.AllowedDomains) {
		return allowed("domain allow-listed")
	}
	for _, re := range e.allowPatterns {
		if re.MatchString(trimmed) {
			return allowed(fmt.Sprintf("matched allow pattern %q", re.String()))
		}
	}

	// Block rules
	if host != "" && matchDomainList(host, e.policy.BlockedDomains) {
		return blocked(BlockDomainBlocked, fmt.Sprintf("domain %s is block-listed", host))
	}
	if host != "" && !analyzer.IsIPLiteral(host) {
		if tld, ok := matchBlockedTLD(host, e.policy.BlockedTLDs); ok {
			return blocked(BlockTLDBlocked, fmt.Sprintf("TLD .%s is blocked", tld))
		}
	}
	for _, re := range e.blockPatterns {
		if re.MatchString(trimmed) {
			return blocked(BlockPatternMatch, fmt.Sprintf("matched block pattern %q", re.String()))
		}
	}
	if e.policy.RequireHTTPS && strings.HasPrefix(strings.ToLower(trimmed), "http://") {
		return blocked(BlockHTTPSRequired, "plain HTTP is not permitted")
	}
	if e.policy.BlockIPAddresses && host != "" && analyzer.IsIPLiteral(host) {
		return blocked(BlockIPAddress, "IP-literal hosts are not permitted")
	}
	if e.policy.BlockShorteners && host != "" && analyzer.IsShortenerDomain(host) {
		return blocked(BlockShortener, fmt.Sprintf("URL shortener %s is not permitted", host))
	}
	if e.policy.MaxURLLength > 0 && len(trimmed) > e.policy.MaxURLLength {
		return blocked(BlockLengthExceeded, fmt.Sprintf("URL length %d exceeds limit %d", len(trimmed), e.policy.MaxURLLength))
	}
	if e.policy.StrictMode && host != "" {
		if depth := subdomainDepth(host); depth > strictModeMaxSubdomains {
			return review(fmt.Sprintf("strict mode: %d subdomain levels", depth))
		}
	}

	return passed()
}

// evalHost extracts the lowercased host for rule matching. Policy matching
// is best-effort: an unparsable URL still runs through the pattern and
// length rules with an empty host.
func (e *Evaluator) evalHost(rawURL string) string {
	if comps, err := e.parser.Parse(rawURL); err == nil {
		return comps.Host
	}
	// Tolerate scheme-less input like "login.example.tk/verify"
	if u, err := url.Parse("http://" + rawURL); err == nil && u.Hostname() != "" {
		return strings.ToLower(u.Hostname())
	}
	return ""
}

// matchDomainList reports whether host matches any entry. A "*.example.com"
// entry matches example.com and every subdomain of it; a bare "example.com"
// entry matches only that exact host.
func matchDomainList(host string, entries []string) bool {
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if base, ok := strings.CutPrefix(entry, "*."); ok {
			if host == base || strings.HasSuffix(host, "."+base) {
				return true
			}
			continue
		}
		if host == entry {
			return true
		}
	}
	return false
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// matchBlockedTLD matches host label-suffix-wise against each entry, so both
// single-label TLDs ("tk") and multi-label public suffixes ("co.uk") work.
// Entries may carry a leading dot.
func matchBlockedTLD(host string, entries []string) (string, bool) {
	for _, entry := range entries {
		suffix := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(entry), "."))
		if suffix == "" {
			continue
		}
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return suffix, true
		}
	}
	return "", false
}

func subdomainDepth(host string) int {
	if analyzer.IsIPLiteral(host) {
		return 0
	}
	n := strings.Count(host, ".")
	if n < 1 {
		return 0
	}
	return n - 1
}
