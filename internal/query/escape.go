package query

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Decode when the unescaped bytes are not text.
var ErrInvalidUTF8 = errors.New("decoded value is not valid UTF-8")

// Escape percent-encodes everything except ASCII letters, digits and -_.~
// Spaces become %20, never '+'.
func Escape(s string) string {
	// QueryEscape already turns a literal '+' into %2B, so every '+' left
	// in its output stands for a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Decode reverses Escape. '+' is kept literally.
func Decode(s string) (string, error) {
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(out) {
		return "", ErrInvalidUTF8
	}
	return out, nil
}
