// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rfc1738

import (
	"errors"
	"fmt"
)

// Nonterminal names a grammar production that can fail to match.
type Nonterminal string

const (
	GenericURL Nonterminal = "genericurl"
	Scheme     Nonterminal = "scheme"
	SchemePart Nonterminal = "schemepart"
	Login      Nonterminal = "login"
	HostPort   Nonterminal = "hostport"
	Host       Nonterminal = "host"
	Port       Nonterminal = "port"
	User       Nonterminal = "user"
	Password   Nonterminal = "password"
	URLPath    Nonterminal = "urlpath"
)

// Nonterminals lists every production a Violation can name, in decomposition order.
var Nonterminals = []Nonterminal{
	GenericURL, Scheme, SchemePart, Login, URLPath, User, Password, HostPort, Host, Port,
}

// Violation reports that Input does not match the production Nonterminal.
type Violation struct {
	Nonterminal Nonterminal
	Input       string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%q is not a valid %s BNF form", v.Input, v.Nonterminal)
}

func violation(nt Nonterminal, input string) *Violation {
	return &Violation{Nonterminal: nt, Input: input}
}

// IsViolation reports whether err is, or wraps, a Violation of nt.
func IsViolation(err error, nt Nonterminal) bool {
	var v *Violation
	if !errors.As(err, &v) {
		return false
	}
	return v.Nonterminal == nt
}

// ParseNonterminal resolves a production name, ignoring case and the
// "-"/"_" separators ("URL_PATH", "url-path" and "urlpath" are equal).
func ParseNonterminal(name string) (Nonterminal, error) {
	key := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '-' || c == '_':
			continue
		case 'A' <= c && c <= 'Z':
			c += 'a' - 'A'
		}
		key = append(key, c)
	}
	for _, nt := range Nonterminals {
		if string(nt) == string(key) {
			return nt, nil
		}
	}
	return "", fmt.Errorf("unknown nonterminal: %s", name)
}
