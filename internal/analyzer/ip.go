package analyzer

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// IsIPLiteral reports whether host is an IPv4 or IPv6 address literal
func IsIPLiteral(host string) bool {
	trimmed := strings.Trim(host, "[]")
	return net.ParseIP(trimmed) != nil
}

// normalizeIPLiteral recognizes IP hosts written in evasive notations
// (single 32-bit decimal, hex, octal, or a mixture per octet) and rewrites
// them to dotted-quad form. A plain dotted-quad host is already canonical and
// reports no attack. Returns the dotted form, the notation attack tag, and
// whether a rewrite happened.
func normalizeIPLiteral(host string) (string, Attack, bool) {
	if host == "" || strings.HasPrefix(host, "[") {
		return "", "", false
	}

	parts := strings.Split(host, ".")

	// Whole-address forms: a single token holding all 32 bits
	if len(parts) == 1 {
		token := parts[0]
		if value, ok := parseUint32Hex(token); ok {
			return uint32ToDotted(value), AttackHexIP, true
		}
		if isOctalToken(token) {
			if value, err := strconv.ParseUint(token, 8, 32); err == nil {
				return uint32ToDotted(uint32(value)), AttackOctalIP, true
			}
			return "", "", false
		}
		if isAllDigits(token) && len(token) >= 4 {
			if value, err := strconv.ParseUint(token, 10, 32); err == nil {
				return uint32ToDotted(uint32(value)), AttackDecimalIP, true
			}
		}
		return "", "", false
	}

	if len(parts) != 4 {
		return "", "", false
	}

	// Per-octet forms: each octet may independently be decimal, octal, or hex
	var octets [4]uint8
	var notations [4]Attack
	for i, part := range parts {
		value, notation, ok := parseOctet(part)
		if !ok {
			return "", "", false
		}
		octets[i] = value
		notations[i] = notation
	}

	// Classify: any exotic octet makes the host suspicious, and octets in
	// differing notations (hex next to decimal, octal next to hex) count as
	// mixed notation
	exotic := Attack("")
	mixed := false
	for _, notation := range notations {
		if notation == "" {
			continue
		}
		if exotic != "" && exotic != notation {
			mixed = true
		}
		exotic = notation
	}
	if exotic != "" {
		for _, notation := range notations {
			if notation == "" {
				mixed = true
			}
		}
	}

	switch {
	case mixed:
		return dottedQuad(octets), AttackMixedIPNotation, true
	case exotic == AttackHexIP:
		return dottedQuad(octets), AttackHexIP, true
	case exotic == AttackOctalIP:
		return dottedQuad(octets), AttackOctalIP, true
	default:
		// Plain dotted quad, nothing to rewrite
		return "", "", false
	}
}

// parseOctet parses one IP octet and reports which notation it used.
// An empty notation means plain decimal.
func parseOctet(part string) (uint8, Attack, bool) {
	if value, ok := parseUint32Hex(part); ok {
		if value > 255 {
			return 0, "", false
		}
		return uint8(value), AttackHexIP, true
	}
	if isOctalToken(part) {
		value, err := strconv.ParseUint(part, 8, 16)
		if err != nil || value > 255 {
			return 0, "", false
		}
		return uint8(value), AttackOctalIP, true
	}
	if !isAllDigits(part) || part == "" {
		return 0, "", false
	}
	value, err := strconv.ParseUint(part, 10, 16)
	if err != nil || value > 255 {
		return 0, "", false
	}
	return uint8(value), "", true
}

// parseUint32Hex parses a 0x-prefixed hex token
func parseUint32Hex(token string) (uint32, bool) {
	lower := strings.ToLower(token)
	if !strings.HasPrefix(lower, "0x") || len(lower) < 3 {
		return 0, false
	}
	value, err := strconv.ParseUint(lower[2:], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(value), true
}

// isOctalToken reports whether a token looks like an octal number: a leading
// zero followed by at least one octal digit
func isOctalToken(token string) bool {
	if len(token) < 2 || token[0] != '0' {
		return false
	}
	for _, c := range token[1:] {
		if c < '0' || c > '7' {
			return false
		}
	}
	return true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func uint32ToDotted(value uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		byte(value>>24), byte(value>>16), byte(value>>8), byte(value))
}

func dottedQuad(octets [4]uint8) string {
	return fmt.Sprintf("%d.%d.%d.%d", octets[0], octets[1], octets[2], octets[3])
}
