// Package query keeps a URL's query string and a parameter table in step.
//
// Parse derives the table from a URL and Build derives the URL from a table.
// Neither direction merges: each call replaces what the other side held.
package query

import (
	"strings"

	"github.com/shhac/courier/internal/domain"
)

// Split returns the part of rawURL before the first '?' and the query
// string after it. ok is false when rawURL has no '?'.
func Split(rawURL string) (base, rawQuery string, ok bool) {
	return strings.Cut(rawURL, "?")
}

// Base returns rawURL without its query string.
func Base(rawURL string) string {
	base, _, _ := Split(rawURL)
	return base
}

// HasQuery reports whether rawURL carries a query string separator.
func HasQuery(rawURL string) bool {
	return strings.Contains(rawURL, "?")
}

// Parse returns the parameter rows encoded in rawURL's query string.
//
// Pairs without '=' are skipped. Values are percent-decoded and fall back to
// "" when decoding fails; names are taken verbatim. ok is false when rawURL
// has no '?', meaning the caller should keep its current rows.
func Parse(rawURL string) (params []domain.Parameter, ok bool) {
	_, rawQuery, ok := Split(rawURL)
	if !ok {
		return nil, false
	}

	params = []domain.Parameter{}
	for _, pair := range strings.Split(rawQuery, "&") {
		name, rawValue, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		value, err := Decode(rawValue)
		if err != nil {
			value = ""
		}
		params = append(params, domain.NewParameter(name, value))
	}
	return params, true
}

// Encode serializes params as name=value pairs joined by '&'.
// Rows with an empty name are left out.
func Encode(params []domain.Parameter) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		if p.Name == "" {
			continue
		}
		pairs = append(pairs, Escape(p.Name)+"="+Escape(p.Value))
	}
	return strings.Join(pairs, "&")
}

// Build replaces rawURL's query string with the one encoded from params.
// When no named rows remain the result is the bare base, without '?'.
func Build(rawURL string, params []domain.Parameter) string {
	base := Base(rawURL)
	q := Encode(params)
	if q == "" {
		return base
	}
	return base + "?" + q
}
