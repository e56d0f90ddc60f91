package analyzer

// Attack identifies a specific URL obfuscation technique found during
// normalization
type Attack string

// Obfuscation attack constants
const (
	AttackMixedScripts    Attack = "mixed_scripts"
	AttackZeroWidth       Attack = "zero_width_characters"
	AttackDoubleEncoding  Attack = "double_encoding"
	AttackNestedRedirects Attack = "nested_redirects"
	AttackRTLOverride     Attack = "rtl_override"
	AttackCombiningMarks  Attack = "combining_marks"
	AttackDecimalIP       Attack = "decimal_ip"
	AttackHexIP           Attack = "hex_ip"
	AttackOctalIP         Attack = "octal_ip"
	AttackMixedIPNotation Attack = "mixed_ip_notation"
	AttackPunycodeDomain  Attack = "punycode_domain"
)

// NormalizationResult holds the outcome of URL normalization
type NormalizationResult struct {
	NormalizedURL   string   `json:"normalized_url"`             // Cleaned-up URL
	HasObfuscation  bool     `json:"has_obfuscation"`            // True if any attack was detected
	DetectedAttacks []Attack `json:"detected_attacks,omitempty"` // Which obfuscation techniques were found
	NestedURLs      []string `json:"nested_urls,omitempty"`      // Embedded redirect targets, in order of appearance
	RiskScore       int      `json:"risk_score"`                 // 0-100, sum of per-attack weights
}

// URLComponents is the parsed form of a normalized URL.
// Produced once per analysis and never mutated.
type URLComponents struct {
	Protocol          string   `json:"protocol"`             // "http" or "https"
	Host              string   `json:"host"`                 // Lowercased hostname
	Port              int      `json:"port,omitempty"`       // 0 when the URL carries no explicit port
	Path              string   `json:"path,omitempty"`       // Path including leading slash
	Query             string   `json:"query,omitempty"`      // Raw query string without "?"
	Fragment          string   `json:"fragment,omitempty"`   // Fragment without "#"
	TLD               string   `json:"tld,omitempty"`        // Public suffix (e.g. "com", "co.uk")
	RegistrableDomain string   `json:"registrable_domain"`   // SLD + TLD (e.g. "example.com")
	Subdomains        []string `json:"subdomains,omitempty"` // Ordered subdomain labels, outermost first
	IsIPHost          bool     `json:"is_ip_host"`           // Host is an IP literal
}

// ConfusableChar records a single lookalike character found in a host
type ConfusableChar struct {
	Position     int    `json:"position"`      // Rune index within the host
	SourceChar   string `json:"source_char"`   // The suspicious character as found
	LookalikeOf  string `json:"lookalike_of"`  // The ASCII letter it imitates
	UnicodeBlock string `json:"unicode_block"` // Script/block name for display (e.g. "Cyrillic")
}

// HomographResult holds the outcome of homograph analysis for a host
type HomographResult struct {
	IsHomograph        bool             `json:"is_homograph"`
	Punycode           string           `json:"punycode,omitempty"` // Decoded Unicode form of an xn-- host
	DetectedCharacters []ConfusableChar `json:"detected_characters,omitempty"`
	SafeDisplayHost    string           `json:"safe_display_host,omitempty"` // Host with confusables projected to ASCII
	Score              int              `json:"score"`                       // 0-50 capped (plus punycode contribution)
}

// BrandMatchType identifies how a protected brand was impersonated
type BrandMatchType string

const (
	MatchTyposquat     BrandMatchType = "typosquat"
	MatchComboSquat    BrandMatchType = "combo_squat"
	MatchSubdomain     BrandMatchType = "exact_in_subdomain"
	MatchHomographAlts BrandMatchType = "homograph"
)

// BrandCategory groups protected brands by industry
type BrandCategory string

const (
	CategoryFinancial  BrandCategory = "financial"
	CategoryGovernment BrandCategory = "government"
	CategoryLogistics  BrandCategory = "logistics"
	CategoryTech       BrandCategory = "tech"
	CategoryRetail     BrandCategory = "retail"
	CategorySocial     BrandCategory = "social"
	CategoryCrypto     BrandCategory = "crypto"
)

// Severity levels for detection results
const (
	SeverityNone     = "none"
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// BrandDetectionResult holds the outcome of brand impersonation detection
type BrandDetectionResult struct {
	Brand           string         `json:"brand,omitempty"` // Matched brand id, empty when no match
	Score           int            `json:"score"`           // 0 when no match
	MatchType       BrandMatchType `json:"match_type,omitempty"`
	Category        BrandCategory  `json:"category,omitempty"`
	Severity        string         `json:"severity"`         // Derived from score
	IsImpersonation bool           `json:"is_impersonation"` // Brand != ""
	IsOfficial      bool           `json:"is_official"`      // Registrable domain is a protected brand's own
	Detail          string         `json:"detail,omitempty"` // Human-readable explanation
}

// Reason is one triggered heuristic check with display metadata
type Reason struct {
	Code        string `json:"code"`     // Stable machine code (e.g. "no_https")
	Severity    string `json:"severity"` // low | medium | high | critical
	Description string `json:"description"`
}

// HeuristicResult holds the outcome of the rule-based checks
type HeuristicResult struct {
	Score   int      `json:"score"` // 0-100 clamped
	Reasons []Reason `json:"reasons,omitempty"`
	Flags   []string `json:"flags,omitempty"` // Short tags for display
}

// Verdict constants for the final assessment
const (
	VerdictSafe       = "safe"
	VerdictSuspicious = "suspicious"
	VerdictMalicious  = "malicious"
)

// RiskAssessment is the final artifact returned to callers.
// Created once per Analyze call and owned by the caller.
type RiskAssessment struct {
	URL        string   `json:"url"`             // Original input URL
	Score      int      `json:"score"`           // 0-100 clamped
	Verdict    string   `json:"verdict"`         // safe | suspicious | malicious
	Flags      []string `json:"flags,omitempty"` // Deduplicated reason strings from all components
	Confidence float64  `json:"confidence"`      // 0.0-1.0
}
