// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rfc1738

import "strings"

// every reports whether each byte of s is in class. The empty string is
// vacuously accepted.
func every(s string, class func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !class(s[i]) {
			return false
		}
	}
	return true
}

// IsDigits reports whether s is *digit.
func IsDigits(s string) bool { return every(s, digit) }

// IsXChars reports whether s is *xchar.
func IsXChars(s string) bool { return every(s, xchar) }

// IsUChars reports whether s is *uchar.
func IsUChars(s string) bool { return every(s, uchar) }

func userChar(c byte) bool {
	switch c {
	case ';', '?', '&', '=':
		return true
	}
	return uchar(c)
}

// IsUser reports whether s matches user = *[ uchar | ";" | "?" | "&" | "=" ].
func IsUser(s string) bool { return every(s, userChar) }

// IsPassword reports whether s matches password, which shares the user rule.
func IsPassword(s string) bool { return every(s, userChar) }

func schemeChar(c byte) bool {
	return lowAlpha(c) || digit(c) || c == '+' || c == '-' || c == '.'
}

// IsScheme reports whether s matches scheme = 1*[ lowalpha | digit | "+" | "-" | "." ].
// Uppercase letters are rejected.
func IsScheme(s string) bool {
	return s != "" && every(s, schemeChar)
}

// label checks a label whose first byte must satisfy first, last byte must be
// alphadigit and interior bytes alphadigit or "-".
func label(s string, first func(byte) bool) bool {
	if len(s) < 2 {
		return single(s, first)
	}
	end := len(s) - 1
	if !first(s[0]) || !alphaDigit(s[end]) {
		return false
	}
	for i := 1; i < end; i++ {
		if !alphaDigit(s[i]) && s[i] != '-' {
			return false
		}
	}
	return true
}

// IsDomainLabel reports whether s matches
// domainlabel = alphadigit | alphadigit *[ alphadigit | "-" ] alphadigit.
func IsDomainLabel(s string) bool { return label(s, alphaDigit) }

// IsTopLabel reports whether s matches
// toplabel = alpha | alpha *[ alphadigit | "-" ] alphadigit.
func IsTopLabel(s string) bool { return label(s, alpha) }

// IsHostName reports whether s matches hostname = *[ domainlabel "." ] toplabel.
// Every domain label is checked; an empty label (".a", "a..b") fails.
func IsHostName(s string) bool {
	top := strings.LastIndexByte(s, '.')
	if top == 0 {
		return false
	}
	if top > 0 {
		for _, l := range strings.Split(s[:top], ".") {
			if !IsDomainLabel(l) {
				return false
			}
		}
	}
	return IsTopLabel(s[top+1:])
}

// IsHostNumber reports whether s matches
// hostnumber = digits "." digits "." digits "." digits.
// Groups must be non-empty; their numeric range is not checked.
func IsHostNumber(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		if g == "" || !IsDigits(g) {
			return false
		}
	}
	return true
}

// IsHost reports whether s matches host = hostname | hostnumber.
func IsHost(s string) bool {
	return IsHostName(s) || IsHostNumber(s)
}
