package sitemap

import (
	"fmt"
	"path/filepath"
)

// Sitemap is a urlset document bound to one file. When it grows past the URL
// limit, Write splits it into numbered chunk files linked by an index written
// at the original path.
//
// A Sitemap is not safe for concurrent use. Generate sitemaps in parallel by
// giving each goroutine its own instance and file path.
type Sitemap struct {
	filePath     string
	collection   *Collection
	compressed   bool
	documentRoot string
	useXHTML     bool
	maxURLs      int
	maxBytes     int64
	parts        []string
	fs           FileSystem
	logger       Logger
}

// New creates a sitemap bound to path. The path is normalized to end in
// ".xml" (".xml.gz" when compressed). Unless WithRead(false) is given, an
// existing file is loaded, following index references down to their chunks.
// Unreadable or malformed files leave the sitemap empty.
func New(path string, opts ...Option) (*Sitemap, error) {
	o, err := resolve(path, opts)
	if err != nil {
		return nil, err
	}

	s := &Sitemap{
		filePath:     NormalizeFilePath(path, o.compressed),
		collection:   NewCollection(),
		compressed:   o.compressed,
		documentRoot: o.documentRoot,
		maxURLs:      o.maxURLs,
		maxBytes:     o.maxBytes,
		fs:           o.fs,
		logger:       o.logger,
	}

	if !o.read {
		return s, nil
	}
	if !s.fs.Exists(s.filePath) {
		s.logger.Verbose("Sitemap %s does not exist yet, starting empty", s.filePath)
		return s, nil
	}
	s.fillCollection(s.filePath, map[string]bool{})
	return s, nil
}

// FilePath returns the normalized path of the sitemap (or of its index once chunked).
func (s *Sitemap) FilePath() string { return s.filePath }

// FilePathParts returns the chunk files produced by the last Write, or found
// through the index while reading. It is empty for a single-file sitemap.
func (s *Sitemap) FilePathParts() []string {
	return append([]string(nil), s.parts...)
}

// CountItems returns the number of distinct locations.
func (s *Sitemap) CountItems() int { return s.collection.Count() }

// Entries returns the entries in insertion order.
func (s *Sitemap) Entries() []*Entry { return s.collection.Entries() }

// Get returns the entry stored under location.
func (s *Sitemap) Get(location string) (*Entry, bool) { return s.collection.Get(location) }

// UsesXHTML reports whether the xhtml namespace will be declared on write.
func (s *Sitemap) UsesXHTML() bool { return s.useXHTML }

// DocumentRoot returns the directory used to translate chunk paths to URLs.
func (s *Sitemap) DocumentRoot() string { return s.documentRoot }

// SetMaxURLs changes the per-file URL limit used by the next Write.
func (s *Sitemap) SetMaxURLs(n int) error {
	if n < 1 {
		return fmt.Errorf("max URLs must be at least 1, got %d: %w", n, ErrInvalidConfig)
	}
	s.maxURLs = n
	return nil
}

// SetDocumentRoot changes the document root. An empty root means "use $DOCUMENT_ROOT".
func (s *Sitemap) SetDocumentRoot(root string) {
	s.documentRoot = resolveDocumentRoot(root)
}

// AddItem adds a page. Params with Alternates describe a localized page:
// the first alternate becomes the location and the xhtml namespace is enabled.
// A location that is already present is left untouched, metadata included.
func (s *Sitemap) AddItem(p EntryParams) error {
	e, err := NewEntry(p)
	if err != nil {
		return err
	}
	if len(p.Alternates) > 0 {
		s.useXHTML = true
	}
	if !s.collection.AddIfAbsent(e) {
		s.logger.Verbose("Skipping duplicate location %s", e.Location())
	}
	return nil
}

// RemoveItem removes the page at location if present.
func (s *Sitemap) RemoveItem(location string) error {
	e, err := NewEntry(EntryParams{Location: location})
	if err != nil {
		return err
	}
	s.collection.Remove(e)
	return nil
}

// Write stores the sitemap. Up to the URL limit a single file is written at
// FilePath. Beyond it, chunk i goes to "{i}_name" next to FilePath and an
// index listing every chunk URL replaces the file at FilePath. Chunk URLs use
// the scheme and host of the first entry and the path relative to the document root.
func (s *Sitemap) Write() error {
	chunks := s.collection.Chunk(s.maxURLs)
	s.parts = nil

	var index *Index
	var origin string
	if len(chunks) > 1 {
		first, _ := s.collection.First()
		var ok bool
		if origin, ok = SchemeAndHost(first.Location()); !ok {
			return fmt.Errorf("%w: no scheme and host in %q", ErrWriteFailed, first.Location())
		}
		index = &Index{
			filePath:   s.filePath,
			collection: NewCollection(),
			compressed: s.compressed,
			fs:         s.fs,
			logger:     s.logger,
		}
	}

	for i, chunk := range chunks {
		data, err := encodeURLSet(chunk.items, s.useXHTML)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWriteFailed, s.filePath, err)
		}

		path := s.filePath
		if index != nil {
			path = ChunkPath(s.filePath, i)
		}
		if size := int64(len(data)); size > s.maxBytes {
			s.logger.Error("Sitemap %s is %d bytes, above the %d byte limit", path, size, s.maxBytes)
		}
		if err := writeFile(s.fs, path, data, s.compressed); err != nil {
			return err
		}
		s.logger.Verbose("Wrote %s with %d URL(s)", path, chunk.Count())

		if index == nil {
			continue
		}
		s.parts = append(s.parts, path)
		if err := index.AddSitemap(PublicURL(path, s.documentRoot, origin), nil); err != nil {
			return fmt.Errorf("%w: chunk %s: %w", ErrWriteFailed, path, err)
		}
	}

	if index == nil {
		return nil
	}
	return index.Write()
}

// fillCollection loads path into the collection. Index documents are followed
// into their children; visited guards against self-referencing indexes.
func (s *Sitemap) fillCollection(path string, visited map[string]bool) {
	key := filepath.Clean(path)
	if visited[key] {
		s.logger.Verbose("Skipping %s, already read", path)
		return
	}
	visited[key] = true

	doc, err := readDocument(s.fs, path)
	if err != nil {
		s.logger.Verbose("Ignoring unreadable sitemap %s: %v", path, err)
		return
	}

	for _, ref := range doc.Sitemaps {
		child := FilesystemPath(ref.Location, s.documentRoot)
		if visited[filepath.Clean(child)] {
			s.logger.Verbose("Index %s references %s again, skipping", path, child)
			continue
		}
		if !s.fs.Exists(child) {
			s.logger.Verbose("Index %s references missing file %s", path, child)
			continue
		}
		s.parts = append(s.parts, child)
		s.fillCollection(child, visited)
	}

	for _, u := range doc.URLs {
		err := s.AddItem(EntryParams{
			Location:        u.Location,
			LastModified:    parseTimestamp(u.LastModified),
			ChangeFrequency: u.ChangeFrequency,
			Priority:        u.Priority,
			Alternates:      u.Alternates,
		})
		if err != nil {
			s.logger.Verbose("Skipping entry in %s: %v", path, err)
		}
	}
}
