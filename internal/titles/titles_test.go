package titles

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "feel lonely sometimes", "feel lonely sometimes"},
		{"strips anybody prefix", "Does anybody else feel lonely?", "feel lonely"},
		{"strips anyone prefix", "does anyone else talk to themselves??", "talk to themselves"},
		{"strips dae prefix", "DAE get nervous ordering coffee", "get nervous ordering coffee"},
		{"trims punctuation", "  hate mondays!!  ", "hate mondays"},
		{"lowercases", "FEEL WEIRD", "feel weird"},
		{"empty after strip", "does anybody else?", ""},
		{"empty input", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestDefaultCorpus(t *testing.T) {
	src := Default()
	titles, err := src.Titles(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, titles)

	for _, title := range titles {
		assert.NotEmpty(t, title)
		assert.Equal(t, title, Normalize(title),
			"corpus entry should already be normalized: %q", title)
		assert.False(t, strings.HasPrefix(title, "does anybody else"),
			"corpus entry should be a completion, not a full phrase: %q", title)
	}
}

func TestStaticReturnsCopy(t *testing.T) {
	src := NewStatic([]string{"one", "two"})
	first, err := src.Titles(context.Background())
	require.NoError(t, err)

	first[0] = "mutated"

	second, err := src.Titles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "one", second[0])
}

func TestParseListing(t *testing.T) {
	raw := []byte(`{
		"data": {
			"children": [
				{"data": {"id": "a1", "title": "Does anybody else feel lonely?", "stickied": false}},
				{"data": {"id": "a2", "title": "Rules of the subreddit", "stickied": true}},
				{"data": {"id": "a3", "title": "DAE feel lonely", "stickied": false}},
				{"data": {"id": "a4", "title": "does anyone else cry at commercials", "stickied": false}}
			]
		}
	}`)

	titles, err := parseListing(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"feel lonely", "cry at commercials"}, titles)
}

func TestParseListingRejectsGarbage(t *testing.T) {
	_, err := parseListing([]byte("not json"))
	assert.Error(t, err)
}

func TestParseGenerated(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		titles, err := parseGenerated(`["feel lonely", "Cry at commercials!"]`)
		require.NoError(t, err)
		assert.Equal(t, []string{"feel lonely", "cry at commercials"}, titles)
	})

	t.Run("fenced array", func(t *testing.T) {
		titles, err := parseGenerated("```json\n[\"feel lonely\"]\n```")
		require.NoError(t, err)
		assert.Equal(t, []string{"feel lonely"}, titles)
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := parseGenerated(`{"titles": []}`)
		assert.Error(t, err)
	})

	t.Run("empty array", func(t *testing.T) {
		_, err := parseGenerated(`[]`)
		assert.Error(t, err)
	})
}
