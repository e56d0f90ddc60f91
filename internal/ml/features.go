// Package ml implements the deterministic phishing-inference ensemble: a
// character-pooled network and a tabular-feature feedforward network over
// fixed, pre-trained weights. Inference is pure and allocation-light; there
// is no randomness and no I/O at scoring time.
package ml

import (
	"math"
	"strings"
)

// FeatureCount is the size of the tabular feature vector
const FeatureCount = 15

// maxFeatureInputLength bounds the URL before feature extraction; anything
// longer produces the all-zero vector rather than an error
const maxFeatureInputLength = 10000

// Feature normalization constants, shared with the training pipeline
const (
	normURLLength  = 500.0
	normHostLength = 100.0
	normPathLength = 200.0
	normSubdomains = 5.0
	normEntropy    = 5.0
	normQueryCount = 10.0
	normDotCount   = 10.0
	normDashCount  = 10.0
)

// featureShorteners mirrors the shortener set the model was trained against
var featureShorteners = []string{
	"bit.ly", "tinyurl.com", "t.co", "goo.gl", "ow.ly",
}

// featureSuspiciousTLDs mirrors the suspicious-TLD set the model was trained
// against
var featureSuspiciousTLDs = map[string]bool{
	"tk": true, "ml": true, "ga": true, "cf": true, "gq": true,
	"xyz": true, "icu": true, "top": true,
}

// FeatureNames labels each tabular feature, index-aligned with
// ExtractFeatures output
var FeatureNames = [FeatureCount]string{
	"url_length",
	"host_length",
	"path_length",
	"subdomain_count",
	"has_https",
	"has_ip_host",
	"host_entropy",
	"path_entropy",
	"query_param_count",
	"has_at_symbol",
	"dot_count",
	"dash_count",
	"has_port",
	"is_shortener",
	"suspicious_tld",
}

// ExtractFeatures converts a URL into the model's 15 normalized numeric
// features. It never fails: invalid or oversized input yields the all-zero
// vector.
func ExtractFeatures(rawURL string) [FeatureCount]float64 {
	var features [FeatureCount]float64
	if rawURL == "" || len(rawURL) > maxFeatureInputLength {
		return features
	}

	hasHTTPS := strings.HasPrefix(rawURL, "https://")
	clean := strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")

	// Host runs to the first path or query delimiter
	hostEnd := len(clean)
	if idx := strings.IndexAny(clean, "/?"); idx >= 0 {
		hostEnd = idx
	}
	host := clean[:hostEnd]
	pathAndQuery := clean[hostEnd:]
	path := pathAndQuery
	if idx := strings.Index(pathAndQuery, "?"); idx >= 0 {
		path = pathAndQuery[:idx]
	}
	hostNoPort := host
	if idx := strings.Index(host, ":"); idx >= 0 {
		hostNoPort = host[:idx]
	}

	features[0] = clampUnit(float64(len(rawURL)) / normURLLength)
	features[1] = clampUnit(float64(len(host)) / normHostLength)
	features[2] = clampUnit(float64(len(path)) / normPathLength)

	subdomains := strings.Count(host, ".") - 1
	if subdomains < 0 {
		subdomains = 0
	}
	features[3] = clampUnit(float64(subdomains) / normSubdomains)

	if hasHTTPS {
		features[4] = 1
	}
	if isDottedQuad(hostNoPort) {
		features[5] = 1
	}

	features[6] = clampUnit(stringEntropy(host) / normEntropy)
	features[7] = clampUnit(stringEntropy(path) / normEntropy)

	queryCount := strings.Count(pathAndQuery, "&")
	if strings.Contains(pathAndQuery, "?") {
		queryCount++
	}
	features[8] = clampUnit(float64(queryCount) / normQueryCount)

	if strings.Contains(rawURL, "@") {
		features[9] = 1
	}
	features[10] = clampUnit(float64(strings.Count(rawURL, ".")) / normDotCount)
	features[11] = clampUnit(float64(strings.Count(rawURL, "-")) / normDashCount)

	if idx := strings.LastIndex(host, ":"); idx >= 0 && allDigits(host[idx+1:]) {
		features[12] = 1
	}
	for _, shortener := range featureShorteners {
		if strings.Contains(host, shortener) {
			features[13] = 1
			break
		}
	}
	if idx := strings.LastIndex(hostNoPort, "."); idx >= 0 {
		if featureSuspiciousTLDs[hostNoPort[idx+1:]] {
			features[14] = 1
		}
	}

	// Guard against non-finite values leaking into the networks
	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			features[i] = 0
		}
	}
	return features
}

// isDottedQuad reports whether a host is a plain dotted-quad IPv4 literal
func isDottedQuad(host string) bool {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if len(part) == 0 || len(part) > 3 || !allDigits(part) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
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

// stringEntropy computes Shannon entropy in bits per character
func stringEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	freq := make(map[rune]int)
	total := 0
	for _, r := range s {
		freq[r]++
		total++
	}
	entropy := 0.0
	for _, count := range freq {
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

func relu(z float64) float64 {
	if z < 0 {
		return 0
	}
	return z
}
