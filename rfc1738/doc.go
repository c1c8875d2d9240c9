// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package rfc1738 implements a strict decomposer for absolute URLs following
// the BNF grammar of RFC 1738 section 5.
//
// The package is organized the same way the grammar is: terminal predicates
// recognize single characters, composite predicates recognize whole
// nonterminal strings, and one Decompose function per production splits an
// input into the substrings of its right-hand side.
//
// # Usage
//
//	g, err := rfc1738.DecomposeGenericURL("http://user@example.com:8080/a/b?q")
//	if err != nil {
//		return err
//	}
//	scheme, err := rfc1738.DecomposeScheme(g.Scheme)
//	...
//
// Every decomposer fails with a *Violation naming the production that did not
// match and the exact substring that was rejected:
//
//	var v *rfc1738.Violation
//	if errors.As(err, &v) {
//		fmt.Println(v.Nonterminal, v.Input)
//	}
//
// # Strictness
//
// The grammar is applied literally. Schemes must be lowercase, hosts must be
// dotted hostnames or dotted quads, and no percent-decoding or normalization is
// performed. Inputs accepted by net/url or browsers are frequently rejected.
//
// All functions are pure and safe for concurrent use.
package rfc1738
