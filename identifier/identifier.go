// Package identifier validates and normalizes container names: paths of
// [a-z0-9_] segments separated by '/'.
package identifier

import (
	"strings"

	"github.com/aeriksson/blocktable/errs"
)

const op = "identifier.Normalize"

// IsAllowed reports whether c is a legal identifier character: an ASCII
// letter, digit, underscore, or the path separator '/'.
func IsAllowed(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '/':
		return true
	default:
		return false
	}
}

// Normalize lowercases ASCII letters in id and, if sep is non-zero, maps
// '/' to sep. It rejects any disallowed character and any occurrence of
// two consecutive '/'.
//
// Normalize(Normalize(id, sep), sep) == Normalize(id, sep) for any id that
// normalizes successfully: the output alphabet ({a-z,0-9,_,sep}) is a
// subset of the input alphabet once sep is itself an allowed character or
// zero.
func Normalize(id string, sep byte) (string, error) {
	if id == "" {
		return "", errs.New(errs.InvalidArgument, op, "identifier must not be empty")
	}

	out := make([]byte, 0, len(id))
	var prevSlash bool

	for i := 0; i < len(id); i++ {
		c := id[i]
		if !IsAllowed(c) {
			return "", errs.New(errs.InvalidArgument, op, "disallowed character '"+string(c)+"' in identifier")
		}

		isSlash := c == '/'
		if isSlash && prevSlash {
			return "", errs.New(errs.InvalidArgument, op, "consecutive '/' in identifier")
		}
		prevSlash = isSlash

		if c >= 'A' && c <= 'Z' {
			c = c - 'A' + 'a'
		}
		if c == '/' && sep != 0 {
			c = sep
		}
		out = append(out, c)
	}

	return string(out), nil
}

// MustNormalize is Normalize with sep='/' and no error return, for use in
// package-level const-like identifiers that are known valid at compile
// time (mirrors the teacher's fixed constant-name style in
// core/constants.go, e.g. DatafileZeroName).
func MustNormalize(id string) string {
	out, err := Normalize(id, '/')
	if err != nil {
		panic(err)
	}
	return out
}

// Split breaks a normalized identifier into its '/'-delimited segments,
// useful for callers that need to create the directory structure backing
// a nested container name.
func Split(normalized string, sep byte) []string {
	if sep == 0 {
		sep = '/'
	}
	return strings.Split(normalized, string(sep))
}
