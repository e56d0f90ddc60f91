package analyzer

import (
	"errors"
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// Parse failure sentinels. Callers treat any of these as "cannot assess",
// never as a crash.
var (
	ErrEmptyURL      = errors.New("empty URL")
	ErrInvalidURL    = errors.New("invalid URL format")
	ErrInvalidScheme = errors.New("URL must use http or https")
	ErrMissingHost   = errors.New("URL has no host")
)

// Component length bounds applied before any further processing
const (
	maxPathLength     = 2000
	maxQueryLength    = 2000
	maxFragmentLength = 500
	maxSubdomainDepth = 10
)

// Parser splits a normalized URL into its components.
// It is stateless and safe for concurrent use.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts a normalized URL string into URLComponents.
// Only http and https schemes are accepted.
func (p *Parser) Parse(rawURL string) (*URLComponents, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, ErrEmptyURL
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, ErrInvalidURL
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, ErrInvalidScheme
	}

	// Hostname() strips brackets from IPv6 literals and any port
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return nil, ErrMissingHost
	}

	// Internationalized hosts are carried in their ASCII (ACE) form so the
	// downstream table lookups operate on one canonical representation
	if ascii, err := idna.Lookup.ToASCII(host); err == nil && ascii != "" {
		host = ascii
	}

	components := &URLComponents{
		Protocol: scheme,
		Host:     host,
		Path:     truncate(parsed.Path, maxPathLength),
		Query:    truncate(parsed.RawQuery, maxQueryLength),
		Fragment: truncate(parsed.Fragment, maxFragmentLength),
	}

	// Optional explicit port, validated to the TCP range
	if portStr := parsed.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port < 1 || port > 65535 {
			return nil, ErrInvalidURL
		}
		components.Port = port
	}

	// IP hosts have no registrable domain to decompose
	if net.ParseIP(host) != nil {
		components.IsIPHost = true
		components.RegistrableDomain = host
		return components, nil
	}

	decomposeDomain(components)
	return components, nil
}

// decomposeDomain fills in the TLD, registrable domain (SLD+TLD), and the
// ordered subdomain chain using the public suffix list
func decomposeDomain(c *URLComponents) {
	suffix, _ := publicsuffix.PublicSuffix(c.Host)
	c.TLD = suffix

	registrable, err := publicsuffix.EffectiveTLDPlusOne(c.Host)
	if err != nil {
		// Host is itself a public suffix or otherwise undecomposable;
		// fall back to the host so downstream lookups still have a value
		c.RegistrableDomain = c.Host
		return
	}
	c.RegistrableDomain = registrable

	// Whatever precedes the registrable domain is the subdomain chain
	if prefix, found := strings.CutSuffix(c.Host, "."+registrable); found && prefix != "" {
		labels := strings.Split(prefix, ".")
		if len(labels) > maxSubdomainDepth {
			labels = labels[len(labels)-maxSubdomainDepth:]
		}
		c.Subdomains = labels
	}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
