package sitemap

import (
	"fmt"
	"time"
)

// Index is a sitemap index document bound to one file.
// Re-adding a location replaces its entry, so timestamps can be refreshed.
type Index struct {
	filePath   string
	collection *Collection
	compressed bool
	fs         FileSystem
	logger     Logger
}

// NewIndex creates an index bound to path. The path is normalized to end in
// ".xml" (".xml.gz" when compressed). Unless WithRead(false) is given, an
// existing file is loaded; unreadable files leave the index empty.
func NewIndex(path string, opts ...Option) (*Index, error) {
	o, err := resolve(path, opts)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		filePath:   NormalizeFilePath(path, o.compressed),
		collection: NewCollection(),
		compressed: o.compressed,
		fs:         o.fs,
		logger:     o.logger,
	}

	if !o.read {
		return idx, nil
	}
	if !idx.fs.Exists(idx.filePath) {
		idx.logger.Verbose("Index %s does not exist yet, starting empty", idx.filePath)
		return idx, nil
	}
	idx.fillCollection()
	return idx, nil
}

// FilePath returns the normalized path the index reads from and writes to.
func (x *Index) FilePath() string { return x.filePath }

// CountItems returns the number of referenced sitemaps.
func (x *Index) CountItems() int { return x.collection.Count() }

// Entries returns the sitemap references in order.
func (x *Index) Entries() []*Entry { return x.collection.Entries() }

// AddSitemap references the sitemap at location. A nil lastModified means now.
// An existing reference to the same location is replaced in place.
func (x *Index) AddSitemap(location string, lastModified *time.Time) error {
	e, err := NewEntry(EntryParams{Location: location, LastModified: lastModified})
	if err != nil {
		return err
	}
	if x.collection.AddOrUpdate(e) {
		x.logger.Verbose("Updated sitemap reference %s", location)
	}
	return nil
}

// RemoveSitemap drops the reference to location if present.
func (x *Index) RemoveSitemap(location string) error {
	e, err := NewEntry(EntryParams{Location: location})
	if err != nil {
		return err
	}
	x.collection.Remove(e)
	return nil
}

// Write serializes every reference into a single sitemapindex file.
func (x *Index) Write() error {
	data, err := encodeSitemapIndex(x.collection.items)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, x.filePath, err)
	}
	if err := writeFile(x.fs, x.filePath, data, x.compressed); err != nil {
		return err
	}
	x.logger.Verbose("Wrote index %s with %d sitemap(s)", x.filePath, x.collection.Count())
	return nil
}

// fillCollection loads references from the existing file. Only references with
// both loc and lastmod are taken; nested indexes are not followed.
func (x *Index) fillCollection() {
	doc, err := readDocument(x.fs, x.filePath)
	if err != nil {
		x.logger.Verbose("Ignoring unreadable index %s: %v", x.filePath, err)
		return
	}

	for _, ref := range doc.Sitemaps {
		if !ref.HasLastMod {
			continue
		}
		if err := x.AddSitemap(ref.Location, parseTimestamp(ref.LastModified)); err != nil {
			x.logger.Verbose("Skipping sitemap reference in %s: %v", x.filePath, err)
		}
	}
	x.logger.Verbose("Loaded %d sitemap reference(s) from %s", x.collection.Count(), x.filePath)
}
