package urlutil

import (
	"fmt"
	"strings"

	"github.com/jongio/rfcurl/rfc1738"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048

	// MaxDomainLength is the RFC 1035 limit for a full domain name
	MaxDomainLength = 253

	// MaxLabelLength is the RFC 1035 limit for a single domain label
	MaxLabelLength = 63
)

// Validate performs HTTP/HTTPS URL validation with the strict RFC 1738 grammar.
// It validates that the URL:
//   - Is not empty or only whitespace
//   - Does not exceed MaxURLLength (2048 characters)
//   - Uses http:// or https:// protocol
//   - Has a valid host/domain
//   - Matches every production of the RFC 1738 grammar
//
// Leading and trailing whitespace is ignored. Returns an error with context if
// validation fails; grammar failures wrap the *rfc1738.Violation.
//
// Example:
//
//	if err := urlutil.Validate("https://example.com"); err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
func Validate(rawURL string) error {
	_, err := validate(rawURL, 0)
	return err
}

// ValidateWithLimit is Validate with a custom length limit. A limit of zero or
// less uses MaxURLLength.
func ValidateWithLimit(rawURL string, maxLength int) error {
	_, err := validate(rawURL, maxLength)
	return err
}

func validate(rawURL string, maxLength int) (*URL, error) {
	if maxLength <= 0 {
		maxLength = MaxURLLength
	}
	rawURL = strings.TrimSpace(rawURL)

	if rawURL == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}

	if len(rawURL) > maxLength {
		return nil, fmt.Errorf("url exceeds maximum length of %d characters", maxLength)
	}

	// The scheme is checked before the rest of the grammar so that
	// non-HTTP inputs get a protocol error instead of a grammar error.
	generic, err := rfc1738.DecomposeGenericURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("url must use http:// or https://")
	}
	if generic.Scheme != SchemeHTTP && generic.Scheme != SchemeHTTPS {
		if generic.Scheme == "" {
			return nil, fmt.Errorf("url must use http:// or https://")
		}
		return nil, fmt.Errorf("url must use http:// or https://, got: %s", generic.Scheme)
	}

	parsed, err := Parse(rawURL)
	if err != nil {
		if rfc1738.IsViolation(err, rfc1738.Host) && hostOf(rawURL) == "" {
			return nil, fmt.Errorf("url missing host/domain")
		}
		return nil, fmt.Errorf("invalid URL format: %w", err)
	}

	if parsed.Host == "" {
		return nil, fmt.Errorf("url missing host/domain")
	}

	return parsed, nil
}

// ValidateHTTPSOnly enforces HTTPS-only URLs for production use.
// It allows HTTP for localhost (127.0.0.1, localhost) for local development,
// but rejects all other HTTP URLs. IPv6 literals are not part of the RFC 1738
// grammar and are rejected by Validate.
//
// Example:
//
//	if err := urlutil.ValidateHTTPSOnly(apiEndpoint); err != nil {
//		return fmt.Errorf("production endpoint must use HTTPS: %w", err)
//	}
func ValidateHTTPSOnly(rawURL string) error {
	return ValidateHTTPSOnlyWithLimit(rawURL, 0)
}

// ValidateHTTPSOnlyWithLimit is ValidateHTTPSOnly with a custom length limit.
func ValidateHTTPSOnlyWithLimit(rawURL string, maxLength int) error {
	parsed, err := validate(rawURL, maxLength)
	if err != nil {
		return err
	}

	if parsed.Scheme == SchemeHTTPS {
		return nil
	}

	if parsed.Scheme == SchemeHTTP && isLocalhost(parsed.Host) {
		return nil
	}

	return fmt.Errorf("url must use https:// (http:// only allowed for localhost)")
}

// NormalizeScheme ensures URL has http:// or https:// prefix.
// If the URL already has a valid scheme (http:// or https://), it is returned unchanged.
// If the URL has no scheme or an invalid scheme, the defaultScheme is prepended.
//
// The defaultScheme should be either "http" or "https" (without "://").
//
// Example:
//
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
//
//	normalized = urlutil.NormalizeScheme("http://example.com", "https")
//	// Returns: "http://example.com" (already has valid scheme)
func NormalizeScheme(rawURL, defaultScheme string) string {
	rawURL = strings.TrimSpace(rawURL)

	generic, err := rfc1738.DecomposeGenericURL(rawURL)
	if err == nil && (generic.Scheme == SchemeHTTP || generic.Scheme == SchemeHTTPS) {
		return rawURL
	}

	return defaultScheme + "://" + rawURL
}

// ValidateDomain validates a bare domain name such as "api.example.com".
// Protocols and ports are rejected, every label must be 1-63 characters of
// letters, digits and inner hyphens, and the whole name must match the
// RFC 1738 hostname production. "localhost" is the only dotless name allowed.
func ValidateDomain(domain string) error {
	domain = strings.TrimSpace(domain)

	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}

	if strings.Contains(domain, "://") {
		return fmt.Errorf("domain should not include protocol (e.g. use %q, not %q)", hostOf(domain), domain)
	}

	if len(domain) > MaxDomainLength {
		return fmt.Errorf("domain exceeds maximum length of %d characters", MaxDomainLength)
	}

	if strings.Contains(domain, ":") {
		return fmt.Errorf("domain should not include port")
	}

	labels := strings.Split(domain, ".")
	for _, label := range labels {
		if label == "" {
			return fmt.Errorf("domain has empty label: %s", domain)
		}
		if len(label) > MaxLabelLength {
			return fmt.Errorf("domain label exceeds %d characters: %s", MaxLabelLength, label)
		}
		for i := 0; i < len(label); i++ {
			if !rfc1738.IsAlphaDigit(label[i:i+1]) && label[i] != '-' {
				return fmt.Errorf("domain label contains invalid character %q: %s", label[i], label)
			}
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("domain label cannot start or end with hyphen: %s", label)
		}
	}

	if len(labels) == 1 && !isLocalhost(domain) {
		return fmt.Errorf("domain must have at least one dot: %s", domain)
	}

	if !rfc1738.IsHostName(domain) {
		return fmt.Errorf("domain is not a valid hostname: %w", &rfc1738.Violation{Nonterminal: rfc1738.Host, Input: domain})
	}

	return nil
}

// hostOf returns the host candidate of rawURL without validating it.
func hostOf(rawURL string) string {
	generic, err := rfc1738.DecomposeGenericURL(rawURL)
	if err != nil {
		return ""
	}
	sp, err := rfc1738.DecomposeSchemePart(generic.SchemePart)
	if err != nil || sp.Form != rfc1738.FormIP {
		return ""
	}
	login, err := rfc1738.DecomposeLogin(sp.Login)
	if err != nil {
		return ""
	}
	hp, err := rfc1738.DecomposeHostPort(login.HostPort)
	if err != nil {
		return ""
	}
	return hp.Host
}

// isLocalhost checks if the hostname is a localhost address
func isLocalhost(hostname string) bool {
	return strings.EqualFold(hostname, "localhost") || hostname == "127.0.0.1"
}
