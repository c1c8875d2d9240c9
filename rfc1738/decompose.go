// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rfc1738

import "strings"

// GenericURLParts is the result of genericurl = scheme ":" schemepart.
type GenericURLParts struct {
	Scheme     string `json:"scheme" yaml:"scheme"`
	SchemePart string `json:"schemePart" yaml:"schemePart"`
}

// Form tells which alternative of schemepart matched.
type Form int

const (
	// FormIP is ip-schemepart = "//" login [ "/" urlpath ].
	FormIP Form = iota
	// FormXChars is the opaque *xchar alternative.
	FormXChars
)

func (f Form) String() string {
	if f == FormXChars {
		return "xchars"
	}
	return "ip-schemepart"
}

// MarshalText encodes the form by name.
func (f Form) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// SchemePartParts is the result of schemepart = *xchar | ip-schemepart.
// For FormIP, Login and URLPath are set and XChars is empty; for FormXChars
// only XChars is set.
type SchemePartParts struct {
	Form    Form   `json:"form" yaml:"form"`
	Login   string `json:"login" yaml:"login"`
	URLPath string `json:"urlPath" yaml:"urlPath"`
	XChars  string `json:"xchars" yaml:"xchars"`
}

// LoginParts is the result of login = [ user [ ":" password ] "@" ] hostport.
type LoginParts struct {
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	HostPort string `json:"hostport" yaml:"hostport"`
}

// HostPortParts is the result of hostport = host [ ":" port ].
type HostPortParts struct {
	Host string `json:"host" yaml:"host"`
	Port string `json:"port" yaml:"port"`
}

// URLPathParts is the result of urlpath = path [ "?" query ].
type URLPathParts struct {
	Path  string `json:"path" yaml:"path"`
	Query string `json:"query" yaml:"query"`
}

// DecomposeGenericURL splits s at its first ":". The halves are not checked;
// pass them to DecomposeScheme and DecomposeSchemePart.
func DecomposeGenericURL(s string) (GenericURLParts, error) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return GenericURLParts{}, violation(GenericURL, s)
	}
	return GenericURLParts{Scheme: s[:i], SchemePart: s[i+1:]}, nil
}

// DecomposeScheme returns s if it is a valid scheme.
func DecomposeScheme(s string) (string, error) {
	if !IsScheme(s) {
		return "", violation(Scheme, s)
	}
	return s, nil
}

// DecomposeSchemePart splits s into login and urlpath.
//
// With the empty pieces around "//" removed, a single remaining piece is read
// as ip-schemepart: login runs to the first "/" and urlpath follows it. Any
// other count means the input cannot be an ip-schemepart, so it is accepted
// only as a flat *xchar sequence.
func DecomposeSchemePart(s string) (SchemePartParts, error) {
	var pieces []string
	for _, p := range strings.Split(s, "//") {
		if p != "" {
			pieces = append(pieces, p)
		}
	}
	if len(pieces) != 1 {
		if IsXChars(s) {
			return SchemePartParts{Form: FormXChars, XChars: s}, nil
		}
		return SchemePartParts{}, violation(SchemePart, s)
	}

	login, urlPath, _ := strings.Cut(pieces[0], "/")
	return SchemePartParts{Form: FormIP, Login: login, URLPath: urlPath}, nil
}

// DecomposeLogin splits s into user, password and hostport.
// A ":" in the user part requires a non-empty user and password around it.
func DecomposeLogin(s string) (LoginParts, error) {
	at := strings.IndexByte(s, '@')
	if at < 0 {
		return LoginParts{HostPort: s}, nil
	}
	if at == 0 || strings.Count(s, "@") > 1 {
		return LoginParts{}, violation(Login, s)
	}

	userInfo, hostPort := s[:at], s[at+1:]
	colon := strings.IndexByte(userInfo, ':')
	if colon < 0 {
		return LoginParts{User: userInfo, HostPort: hostPort}, nil
	}
	if colon == 0 || colon == len(userInfo)-1 {
		return LoginParts{}, violation(Login, s)
	}
	return LoginParts{
		User:     userInfo[:colon],
		Password: userInfo[colon+1:],
		HostPort: hostPort,
	}, nil
}

// DecomposeHostPort splits s into host and port. A trailing ":" yields an
// empty port.
func DecomposeHostPort(s string) (HostPortParts, error) {
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return HostPortParts{Host: s}, nil
	}
	if colon == 0 || strings.Count(s, ":") > 1 {
		return HostPortParts{}, violation(HostPort, s)
	}
	return HostPortParts{Host: s[:colon], Port: s[colon+1:]}, nil
}

// DecomposeHost returns s if it is a hostname or a hostnumber.
func DecomposeHost(s string) (string, error) {
	if !IsHost(s) {
		return "", violation(Host, s)
	}
	return s, nil
}

// DecomposePort returns s if it is *digit. The empty string means no port.
func DecomposePort(s string) (string, error) {
	if !IsDigits(s) {
		return "", violation(Port, s)
	}
	return s, nil
}

// DecomposeUser returns s if it is a valid user.
func DecomposeUser(s string) (string, error) {
	if !IsUser(s) {
		return "", violation(User, s)
	}
	return s, nil
}

// DecomposePassword returns s if it is a valid password.
func DecomposePassword(s string) (string, error) {
	if !IsPassword(s) {
		return "", violation(Password, s)
	}
	return s, nil
}

// DecomposeURLPath splits s at its first "?" into path and query. RFC 1738
// leaves the query syntax open, so only the whole string is checked as *xchar.
func DecomposeURLPath(s string) (URLPathParts, error) {
	if !IsXChars(s) {
		return URLPathParts{}, violation(URLPath, s)
	}
	path, query, _ := strings.Cut(s, "?")
	return URLPathParts{Path: path, Query: query}, nil
}
