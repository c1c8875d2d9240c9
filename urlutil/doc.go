// Package urlutil builds URL records on top of the strict RFC 1738 grammar in
// package rfc1738, and provides HTTP/HTTPS validation helpers for consumers
// that want RFC 1738 strictness instead of net/url leniency.
//
// # Usage
//
// Use Parse to decompose an absolute URL into its named parts:
//
//	import "github.com/jongio/rfcurl/urlutil"
//
//	u, err := urlutil.Parse("http://user:pw@example.com:8080/a/b?x=1")
//	if err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
//	fmt.Println(u.Host, u.Port, u.LastPathComponent)
//
// Parse fails with the *rfc1738.Violation of the first production that did not
// match, so callers can report which part of the URL was wrong:
//
//	var v *rfc1738.Violation
//	if errors.As(err, &v) {
//		fmt.Printf("bad %s: %q\n", v.Nonterminal, v.Input)
//	}
//
// Use Validate for HTTP/HTTPS-only validation of configuration values:
//
//	if err := urlutil.Validate(customURL); err != nil {
//		return fmt.Errorf("invalid custom URL: %w", err)
//	}
//
// Use ValidateHTTPSOnly for production environments requiring HTTPS:
//
//	// Enforce HTTPS-only (allows localhost HTTP for development)
//	if err := urlutil.ValidateHTTPSOnly(apiEndpoint); err != nil {
//		return fmt.Errorf("API endpoint must use HTTPS: %w", err)
//	}
//
// # Ports
//
// An absent or zero port is replaced by 80 for http and 443 for https. Any other
// scheme without a port reports Port 0.
//
// # Paths
//
// PathComponents always starts with a synthetic "/" element followed by the
// "/"-separated segments of the path, so "http://h/a/b" yields ["/", "a", "b"]
// and "http://h" yields ["/", ""].
//
// # Metrics
//
// Every Parse call increments Prometheus counters on the default registry:
// rfcurl_parse_total{result} and rfcurl_grammar_violations_total{nonterminal}.
// WriteMetrics dumps them in text exposition format.
package urlutil
