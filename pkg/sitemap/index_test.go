package sitemap_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sitemapper/internal/files/filesystem"
	"github.com/vvka-141/sitemapper/pkg/sitemap"
)

func newMemoryIndex(t *testing.T, mfs *filesystem.MemoryFileSystem, path string, opts ...sitemap.Option) *sitemap.Index {
	t.Helper()
	idx, err := sitemap.NewIndex(path, append([]sitemap.Option{sitemap.WithFileSystem(mfs)}, opts...)...)
	require.NoError(t, err)
	return idx
}

func TestIndex_NewNormalizesPath(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/www")

	assert.Equal(t, "/www/sitemap-index.xml", newMemoryIndex(t, mfs, "/www/sitemap-index").FilePath())
	assert.Equal(t, "/www/sitemap-index.xml.gz", newMemoryIndex(t, mfs, "/www/sitemap-index.xml", sitemap.WithGzip(true)).FilePath())
}

func TestIndex_AddSitemapRefreshesExisting(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/www")
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	idx := newMemoryIndex(t, mfs, "/www/index.xml")
	require.NoError(t, idx.AddSitemap("https://example.com/a.xml", &jan))
	require.NoError(t, idx.AddSitemap("https://example.com/b.xml", &jan))
	require.NoError(t, idx.AddSitemap("https://example.com/a.xml", &feb))

	require.Equal(t, 2, idx.CountItems())
	entries := idx.Entries()
	assert.Equal(t, "https://example.com/a.xml", entries[0].Location())
	assert.Equal(t, "2024-02-01T00:00:00Z", entries[0].LastModified())
}

func TestIndex_AddSitemapRejectsInvalidLocation(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/www")
	idx := newMemoryIndex(t, mfs, "/www/index.xml")

	assert.ErrorIs(t, idx.AddSitemap("a.xml", nil), sitemap.ErrInvalidLocation)
	assert.ErrorIs(t, idx.RemoveSitemap("a.xml"), sitemap.ErrInvalidLocation)
	assert.Equal(t, 0, idx.CountItems())
}

func TestIndex_WriteAndRead(t *testing.T) {
	for _, compressed := range []bool{false, true} {
		t.Run(fmt.Sprintf("gzip=%v", compressed), func(t *testing.T) {
			mfs := filesystem.NewMemoryFileSystem("/www")
			ts := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

			idx := newMemoryIndex(t, mfs, "/www/index", sitemap.WithGzip(compressed))
			require.NoError(t, idx.AddSitemap("https://example.com/a.xml", &ts))
			require.NoError(t, idx.AddSitemap("https://example.com/b.xml", &ts))
			require.NoError(t, idx.AddSitemap("https://example.com/c.xml", &ts))
			require.NoError(t, idx.RemoveSitemap("https://example.com/b.xml"))
			require.NoError(t, idx.RemoveSitemap("https://example.com/missing.xml"))
			require.NoError(t, idx.Write())

			data, err := mfs.ReadFile(idx.FilePath())
			require.NoError(t, err)
			assert.Equal(t, compressed, sitemap.IsGzip(data))

			reloaded := newMemoryIndex(t, mfs, idx.FilePath(), sitemap.WithGzip(compressed))
			assert.Equal(t, []string{"https://example.com/a.xml", "https://example.com/c.xml"}, entryLocations(reloaded.Entries()))
			assert.Equal(t, "2024-06-01T09:00:00Z", reloaded.Entries()[0].LastModified())
		})
	}
}

func TestIndex_ReadRequiresLastmod(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/www")
	mfs.AddFile("/www/index.xml", fmt.Sprintf(indexTemplate,
		"<sitemap><loc>https://example.com/no-lastmod.xml</loc></sitemap>"+
			sitemapRef("https://example.com/ok.xml")+
			sitemapRef("not a url")))

	idx := newMemoryIndex(t, mfs, "/www/index.xml")
	assert.Equal(t, []string{"https://example.com/ok.xml"}, entryLocations(idx.Entries()))
}

func TestIndex_IgnoresURLRecords(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/www")
	mfs.AddFile("/www/index.xml", urlSet("https://example.com/page/"))

	idx := newMemoryIndex(t, mfs, "/www/index.xml")
	assert.Equal(t, 0, idx.CountItems())
}

func TestIndex_MalformedFileStartsEmpty(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/www")
	mfs.AddFile("/www/index.xml", "<sitemapindex><sitemap>")

	idx := newMemoryIndex(t, mfs, "/www/index.xml")
	assert.Equal(t, 0, idx.CountItems())
}

func TestIndex_WithReadFalse(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/www")
	mfs.AddFile("/www/index.xml", fmt.Sprintf(indexTemplate, sitemapRef("https://example.com/ok.xml")))

	idx := newMemoryIndex(t, mfs, "/www/index.xml", sitemap.WithRead(false))
	assert.Equal(t, 0, idx.CountItems())
}
