package urlutil

import (
	"strconv"
	"strings"

	"github.com/jongio/rfcurl/logutil"
	"github.com/jongio/rfcurl/rfc1738"
)

// Well-known schemes.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeFile  = "file"
)

var defaultPorts = map[string]int{
	SchemeHTTP:  80,
	SchemeHTTPS: 443,
}

// URL is an absolute URL decomposed by the RFC 1738 grammar.
// Components the URL does not carry are empty strings.
type URL struct {
	Scheme   string `json:"scheme" yaml:"scheme"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	Host     string `json:"host" yaml:"host"`
	// Port is 0 when the URL has no port and the scheme has no default.
	Port              int      `json:"port,omitempty" yaml:"port,omitempty"`
	Query             string   `json:"query" yaml:"query"`
	PathComponents    []string `json:"pathComponents" yaml:"pathComponents"`
	LastPathComponent string   `json:"lastPathComponent" yaml:"lastPathComponent"`
	AbsoluteString    string   `json:"absoluteString" yaml:"absoluteString"`
	IsFileURL         bool     `json:"isFileURL" yaml:"isFileURL"`
	// Opaque holds the schemepart when it only matched the *xchar form.
	// Login and path fields are then empty.
	Opaque string `json:"opaque,omitempty" yaml:"opaque,omitempty"`
}

// String returns the original input.
func (u *URL) String() string {
	return u.AbsoluteString
}

// Path returns the path without the synthetic leading component.
func (u *URL) Path() string {
	if len(u.PathComponents) < 2 {
		return ""
	}
	return strings.Join(u.PathComponents[1:], "/")
}

// DefaultPort returns the port implied by scheme, or 0 if it has none.
func DefaultPort(scheme string) int {
	return defaultPorts[scheme]
}

// Parse decomposes raw with the RFC 1738 grammar. raw is not trimmed or
// normalized. On failure the returned error is the *rfc1738.Violation of the
// first production that did not match.
func Parse(raw string) (*URL, error) {
	u, err := parse(raw)
	recordParse(err)
	if err != nil {
		logutil.Debug("url rejected", "url", raw, "error", err)
		return nil, err
	}
	return u, nil
}

func parse(raw string) (*URL, error) {
	generic, err := rfc1738.DecomposeGenericURL(raw)
	if err != nil {
		return nil, err
	}
	scheme, err := rfc1738.DecomposeScheme(generic.Scheme)
	if err != nil {
		return nil, err
	}
	schemePart, err := rfc1738.DecomposeSchemePart(generic.SchemePart)
	if err != nil {
		return nil, err
	}

	u := &URL{
		Scheme:         scheme,
		IsFileURL:      scheme == SchemeFile,
		AbsoluteString: raw,
	}

	if schemePart.Form == rfc1738.FormXChars {
		u.Opaque = schemePart.XChars
		u.Port = DefaultPort(scheme)
		u.PathComponents = []string{"/"}
		u.LastPathComponent = "/"
		return u, nil
	}

	login, err := rfc1738.DecomposeLogin(schemePart.Login)
	if err != nil {
		return nil, err
	}
	urlPath, err := rfc1738.DecomposeURLPath(schemePart.URLPath)
	if err != nil {
		return nil, err
	}
	logutil.Debug("decomposed urlpath", "path", urlPath.Path, "query", urlPath.Query)

	if u.User, err = rfc1738.DecomposeUser(login.User); err != nil {
		return nil, err
	}
	if u.Password, err = rfc1738.DecomposePassword(login.Password); err != nil {
		return nil, err
	}
	hostPort, err := rfc1738.DecomposeHostPort(login.HostPort)
	if err != nil {
		return nil, err
	}
	if u.Host, err = rfc1738.DecomposeHost(hostPort.Host); err != nil {
		return nil, err
	}
	port, err := rfc1738.DecomposePort(hostPort.Port)
	if err != nil {
		return nil, err
	}
	if u.Port, err = resolvePort(scheme, port); err != nil {
		return nil, err
	}

	u.Query = urlPath.Query
	u.PathComponents = append([]string{"/"}, strings.Split(urlPath.Path, "/")...)
	u.LastPathComponent = u.PathComponents[len(u.PathComponents)-1]
	return u, nil
}

// resolvePort converts a *digit port, substituting the scheme default when it
// is empty or zero.
func resolvePort(scheme, port string) (int, error) {
	if port == "" {
		return DefaultPort(scheme), nil
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		// Only reachable on overflow; the digits were already checked.
		return 0, &rfc1738.Violation{Nonterminal: rfc1738.Port, Input: port}
	}
	if n == 0 {
		return DefaultPort(scheme), nil
	}
	return n, nil
}
