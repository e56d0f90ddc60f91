// Package policy implements the enterprise rule-evaluation layer that can
// short-circuit or override the classifier for managed deployments. A Policy
// is an immutable versioned value object: rebuild it to change it.
package policy

import (
	"encoding/json"
	"os"
)

// maxPolicyFileSize bounds a policy document; anything larger falls back to
// the compiled-in default
const maxPolicyFileSize = 16 * 1024

// Policy is the managed-deployment configuration. Fields round-trip to and
// from JSON losslessly.
type Policy struct {
	Version int `json:"version"`

	// Domain lists support "*.example.com" wildcard entries
	AllowedDomains []string `json:"allowedDomains,omitempty"`
	BlockedDomains []string `json:"blockedDomains,omitempty"`
	BlockedTLDs    []string `json:"blockedTlds,omitempty"`

	// Pattern lists are regular expressions matched against the whole URL
	AllowedPatterns []string `json:"allowedPatterns,omitempty"`
	BlockedPatterns []string `json:"blockedPatterns,omitempty"`

	RequireHTTPS     bool `json:"requireHttps"`
	BlockIPAddresses bool `json:"blockIpAddresses"`
	BlockShorteners  bool `json:"blockShorteners"`
	StrictMode       bool `json:"strictMode"`

	MaxURLLength int `json:"maxUrlLength,omitempty"`

	// AllowedPayloadTypes gates non-URL QR payloads; empty means all types
	// are allowed
	AllowedPayloadTypes []string `json:"allowedPayloadTypes,omitempty"`
	BlockedCategories   []string `json:"blockedCategories,omitempty"`
}

// Default returns the compiled-in permissive policy
func Default() Policy {
	return Policy{
		Version:      1,
		MaxURLLength: 2048,
	}
}

// Load reads a policy document from disk. Missing, oversized, or malformed
// documents fall back to the compiled-in default; the loader boundary never
// propagates an error.
func Load(path string) Policy {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	return Parse(data)
}

// Parse decodes a policy document, falling back to the compiled-in default
// on malformed or oversized input
func Parse(data []byte) Policy {
	if len(data) == 0 || len(data) > maxPolicyFileSize {
		return Default()
	}
	var p Policy
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	if p.MaxURLLength == 0 {
		p.MaxURLLength = Default().MaxURLLength
	}
	return p
}

// MarshalDocument serializes the policy to its canonical JSON document form
func (p Policy) MarshalDocument() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
