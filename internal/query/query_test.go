package query

import (
	"testing"

	"github.com/shhac/courier/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   []domain.Parameter
		wantOK bool
	}{
		{
			name:   "single pair",
			url:    "https://x.test/posts?q=1",
			want:   []domain.Parameter{{Name: "q", Value: "1", Type: domain.ParamString}},
			wantOK: true,
		},
		{
			name: "duplicate names kept in order",
			url:  "https://x.test/?a=1&a=2",
			want: []domain.Parameter{
				{Name: "a", Value: "1", Type: domain.ParamString},
				{Name: "a", Value: "2", Type: domain.ParamString},
			},
			wantOK: true,
		},
		{
			name: "pair without equals is skipped",
			url:  "https://x.test/?a=1&bogus&c=3",
			want: []domain.Parameter{
				{Name: "a", Value: "1", Type: domain.ParamString},
				{Name: "c", Value: "3", Type: domain.ParamString},
			},
			wantOK: true,
		},
		{
			name:   "value keeps later equals signs",
			url:    "https://x.test/?expr=a=b=c",
			want:   []domain.Parameter{{Name: "expr", Value: "a=b=c", Type: domain.ParamString}},
			wantOK: true,
		},
		{
			name:   "only first question mark splits",
			url:    "https://x.test/?next=/a?b",
			want:   []domain.Parameter{{Name: "next", Value: "/a?b", Type: domain.ParamString}},
			wantOK: true,
		},
		{
			name:   "value is percent decoded",
			url:    "https://x.test/?q=hello%20world",
			want:   []domain.Parameter{{Name: "q", Value: "hello world", Type: domain.ParamString}},
			wantOK: true,
		},
		{
			name:   "plus is not a space",
			url:    "https://x.test/?q=a+b",
			want:   []domain.Parameter{{Name: "q", Value: "a+b", Type: domain.ParamString}},
			wantOK: true,
		},
		{
			name:   "name is not decoded",
			url:    "https://x.test/?my%20key=v",
			want:   []domain.Parameter{{Name: "my%20key", Value: "v", Type: domain.ParamString}},
			wantOK: true,
		},
		{
			name:   "invalid escape falls back to empty value",
			url:    "https://x.test/?q=%zz&r=2",
			want:   []domain.Parameter{{Name: "q", Value: "", Type: domain.ParamString}, {Name: "r", Value: "2", Type: domain.ParamString}},
			wantOK: true,
		},
		{
			name:   "invalid utf8 falls back to empty value",
			url:    "https://x.test/?q=%ff",
			want:   []domain.Parameter{{Name: "q", Value: "", Type: domain.ParamString}},
			wantOK: true,
		},
		{
			name:   "empty name with value is kept",
			url:    "https://x.test/?=v",
			want:   []domain.Parameter{{Name: "", Value: "v", Type: domain.ParamString}},
			wantOK: true,
		},
		{
			name:   "trailing question mark yields no rows",
			url:    "https://x.test/?",
			want:   []domain.Parameter{},
			wantOK: true,
		},
		{
			name:   "no question mark",
			url:    "https://x.test/posts",
			want:   nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		params []domain.Parameter
		want   string
	}{
		{
			name:   "space encoded as %20",
			url:    "https://x.test/posts",
			params: []domain.Parameter{domain.NewParameter("q", "hello world")},
			want:   "https://x.test/posts?q=hello%20world",
		},
		{
			name:   "existing query replaced",
			url:    "https://x.test/posts?old=1",
			params: []domain.Parameter{domain.NewParameter("new", "2")},
			want:   "https://x.test/posts?new=2",
		},
		{
			name:   "no rows drops the question mark",
			url:    "https://x.test/posts?old=1",
			params: nil,
			want:   "https://x.test/posts",
		},
		{
			name:   "empty names excluded",
			url:    "https://x.test/posts",
			params: []domain.Parameter{domain.NewParameter("", "ignored"), domain.NewParameter("a", "1")},
			want:   "https://x.test/posts?a=1",
		},
		{
			name:   "only empty names",
			url:    "https://x.test/posts?a=1",
			params: []domain.Parameter{domain.NewParameter("", "x")},
			want:   "https://x.test/posts",
		},
		{
			name:   "duplicates serialized in order",
			url:    "https://x.test/",
			params: []domain.Parameter{domain.NewParameter("a", "1"), domain.NewParameter("a", "2")},
			want:   "https://x.test/?a=1&a=2",
		},
		{
			name:   "reserved characters escaped in name and value",
			url:    "https://x.test/",
			params: []domain.Parameter{domain.NewParameter("a&b", "c=d+e")},
			want:   "https://x.test/?a%26b=c%3Dd%2Be",
		},
		{
			name: "cosmetic fields ignored",
			url:  "https://x.test/",
			params: []domain.Parameter{{
				Name: "n", Value: "1", Type: domain.ParamNumber, Required: true, Description: "count",
			}},
			want: "https://x.test/?n=1",
		},
		{
			name:   "empty value kept",
			url:    "https://x.test/",
			params: []domain.Parameter{domain.NewParameter("flag", "")},
			want:   "https://x.test/?flag=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.url, tt.params))
		})
	}
}

func TestBuildParseRoundTrip(t *testing.T) {
	params := []domain.Parameter{
		{Name: "userId", Value: "1", Type: domain.ParamNumber, Required: true, Description: "owner"},
		{Name: "title", Value: "hello world & more", Type: domain.ParamString},
		{Name: "tags", Value: "a,b;c", Type: domain.ParamArray},
		{Name: "title", Value: "100%"},
	}

	got, ok := Parse(Build("https://x.test/posts", params))
	require.True(t, ok)
	require.Len(t, got, len(params))
	for i, p := range params {
		assert.Equal(t, domain.NewParameter(p.Name, p.Value), got[i], "row %d", i)
	}
}

func TestBuildIdempotent(t *testing.T) {
	params := []domain.Parameter{
		domain.NewParameter("q", "hello world"),
		domain.NewParameter("", "skip"),
		domain.NewParameter("page", "2"),
	}

	once := Build("https://x.test/search?stale=1", params)
	twice := Build(once, params)
	assert.Equal(t, once, twice)
	assert.Equal(t, "https://x.test/search?q=hello%20world&page=2", once)
}

func TestEncodeNeverEmitsEmptyNames(t *testing.T) {
	for _, value := range []string{"", "x", "=", "&a=b"} {
		q := Encode([]domain.Parameter{domain.NewParameter("", value)})
		assert.Empty(t, q, "value %q", value)
	}
}

func TestEscapeDecode(t *testing.T) {
	tests := []struct {
		raw     string
		escaped string
	}{
		{"hello world", "hello%20world"},
		{"a-b_c.d~e", "a-b_c.d~e"},
		{"a+b", "a%2Bb"},
		{"ünï", "%C3%BCn%C3%AF"},
		{"/?#", "%2F%3F%23"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.escaped, Escape(tt.raw))
			decoded, err := Decode(tt.escaped)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, decoded)
		})
	}

	_, err := Decode("%")
	assert.Error(t, err)
	_, err = Decode("%ff")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestSplit(t *testing.T) {
	base, q, ok := Split("https://x.test/a?b=1?c")
	assert.True(t, ok)
	assert.Equal(t, "https://x.test/a", base)
	assert.Equal(t, "b=1?c", q)

	assert.Equal(t, "https://x.test/a", Base("https://x.test/a"))
	assert.False(t, HasQuery("https://x.test/a"))
	assert.True(t, HasQuery("?"))
}
