package sitemap_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sitemapper/pkg/sitemap"
)

func TestNewEntry_Defaults(t *testing.T) {
	before := time.Now().Add(-time.Second)

	e, err := sitemap.NewEntry(sitemap.EntryParams{Location: "https://example.com/"})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", e.Location())
	assert.Equal(t, sitemap.Daily, e.ChangeFrequency())
	assert.Equal(t, "0.5", e.Priority())
	assert.Empty(t, e.Alternates())

	lastmod, ok := e.LastModifiedTime()
	require.True(t, ok, "lastmod %q should be RFC 3339", e.LastModified())
	assert.False(t, lastmod.Before(before.Truncate(time.Second)))
}

func TestNewEntry_ExplicitLastModified(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	e, err := sitemap.NewEntry(sitemap.EntryParams{Location: "https://example.com/", LastModified: &ts})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15T10:30:00Z", e.LastModified())
}

func TestEntry_SetPriority(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.8", "0.8"},
		{"1", "1.0"},
		{"0", "0.0"},
		{" 0.3 ", "0.3"},
		{"7", "0.5"},
		{"-0.1", "0.5"},
		{"abc", "0.5"},
		{"", "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := sitemap.NewEntry(sitemap.EntryParams{Location: "https://example.com/", Priority: tt.in})
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Priority())
		})
	}
}

func TestEntry_SetChangeFrequency(t *testing.T) {
	for _, f := range sitemap.ChangeFrequencies() {
		t.Run(string(f), func(t *testing.T) {
			e, err := sitemap.NewEntry(sitemap.EntryParams{Location: "https://example.com/", ChangeFrequency: string(f)})
			require.NoError(t, err)
			assert.Equal(t, f, e.ChangeFrequency())
		})
	}

	for _, in := range []string{"sometimes", "", "Weekly"} {
		t.Run("fallback "+in, func(t *testing.T) {
			e, err := sitemap.NewEntry(sitemap.EntryParams{Location: "https://example.com/", ChangeFrequency: in})
			require.NoError(t, err)
			assert.Equal(t, sitemap.Daily, e.ChangeFrequency())
		})
	}
}

func TestChangeFrequency_Valid(t *testing.T) {
	assert.Len(t, sitemap.ChangeFrequencies(), 7)
	assert.True(t, sitemap.Monthly.Valid())
	assert.False(t, sitemap.ChangeFrequency("fortnightly").Valid())
}

func TestNewEntry_InvalidLocation(t *testing.T) {
	tests := []string{
		"",
		"not a url",
		"example.com/page",
		"/relative/path",
		"https://example.com",
		"https:///page",
		"https://example.com/a b",
	}

	for _, loc := range tests {
		t.Run(loc, func(t *testing.T) {
			_, err := sitemap.NewEntry(sitemap.EntryParams{Location: loc})
			require.Error(t, err)
			assert.True(t, errors.Is(err, sitemap.ErrInvalidLocation))

			var verr *sitemap.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "location", verr.Field)
			assert.Equal(t, loc, verr.Value)
		})
	}
}

func TestEntry_SetLocationKeepsPreviousOnError(t *testing.T) {
	e, err := sitemap.NewEntry(sitemap.EntryParams{Location: "https://example.com/"})
	require.NoError(t, err)

	require.Error(t, e.SetLocation("nope"))
	assert.Equal(t, "https://example.com/", e.Location())

	require.NoError(t, e.SetLocation("https://example.com/other/"))
	assert.Equal(t, "https://example.com/other/", e.Location())
}

func TestNewEntry_AlternatesDefineLocation(t *testing.T) {
	alts := []sitemap.Alternate{
		{Lang: "en", URL: "https://example.com/en/"},
		{Lang: "de", URL: "https://example.com/de/"},
	}

	e, err := sitemap.NewEntry(sitemap.EntryParams{Location: "https://example.com/ignored/", Alternates: alts})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/en/", e.Location())
	assert.Equal(t, alts, e.Alternates())

	// Callers cannot mutate the entry through either slice.
	alts[0].URL = "https://example.com/changed/"
	got := e.Alternates()
	got[1].Lang = "fr"
	assert.Equal(t, "https://example.com/en/", e.Alternates()[0].URL)
	assert.Equal(t, "de", e.Alternates()[1].Lang)
}

func TestNewEntry_InvalidFirstAlternate(t *testing.T) {
	_, err := sitemap.NewEntry(sitemap.EntryParams{
		Alternates: []sitemap.Alternate{{Lang: "en", URL: "en"}},
	})
	assert.ErrorIs(t, err, sitemap.ErrInvalidLocation)
}
