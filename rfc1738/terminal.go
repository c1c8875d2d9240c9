// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package rfc1738

// Terminal predicates take a single character. Any string whose length is not
// exactly one byte is outside every class, including the empty string.

// alpha = lowalpha | hialpha
func alpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func lowAlpha(c byte) bool {
	return 'a' <= c && c <= 'z'
}

// digit = "0" | "1" | ... | "9"
func digit(c byte) bool {
	return '0' <= c && c <= '9'
}

// safe = "$" | "-" | "_" | "." | "+"
func safe(c byte) bool {
	switch c {
	case '$', '-', '_', '.', '+':
		return true
	}
	return false
}

// extra = "!" | "*" | "'" | "(" | ")" | ","
func extra(c byte) bool {
	switch c {
	case '!', '*', '\'', '(', ')', ',':
		return true
	}
	return false
}

// reserved = ";" | "/" | "?" | ":" | "@" | "&" | "="
func reserved(c byte) bool {
	switch c {
	case ';', '/', '?', ':', '@', '&', '=':
		return true
	}
	return false
}

func alphaDigit(c byte) bool {
	return alpha(c) || digit(c)
}

// unreserved = alpha | digit | safe | extra
func unreserved(c byte) bool {
	return alpha(c) || digit(c) || safe(c) || extra(c)
}

// xchar = unreserved | reserved | escape
//
// Escapes are not decoded, so "%" is not an xchar here.
func xchar(c byte) bool {
	return unreserved(c) || reserved(c)
}

// uchar = unreserved | escape
func uchar(c byte) bool {
	return unreserved(c)
}

func single(s string, class func(byte) bool) bool {
	return len(s) == 1 && class(s[0])
}

// IsAlpha reports whether s is one ASCII letter.
func IsAlpha(s string) bool { return single(s, alpha) }

// IsDigit reports whether s is one ASCII digit.
func IsDigit(s string) bool { return single(s, digit) }

// IsSafe reports whether s is one of "$-_.+".
func IsSafe(s string) bool { return single(s, safe) }

// IsExtra reports whether s is one of "!*'(),".
func IsExtra(s string) bool { return single(s, extra) }

// IsAlphaDigit reports whether s is one letter or digit.
func IsAlphaDigit(s string) bool { return single(s, alphaDigit) }

// IsUnreserved reports whether s is alpha, digit, safe or extra.
func IsUnreserved(s string) bool { return single(s, unreserved) }

// IsReserved reports whether s is one of ";/?:@&=".
func IsReserved(s string) bool { return single(s, reserved) }

// IsXChar reports whether s is unreserved or reserved.
func IsXChar(s string) bool { return single(s, xchar) }

// IsUChar reports whether s may appear in a user or password.
func IsUChar(s string) bool { return single(s, uchar) }
