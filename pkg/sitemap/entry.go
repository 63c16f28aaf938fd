package sitemap

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ChangeFrequency is the crawl hint emitted in <changefreq>.
type ChangeFrequency string

const (
	Always  ChangeFrequency = "always"
	Hourly  ChangeFrequency = "hourly"
	Daily   ChangeFrequency = "daily"
	Weekly  ChangeFrequency = "weekly"
	Monthly ChangeFrequency = "monthly"
	Yearly  ChangeFrequency = "yearly"
	Never   ChangeFrequency = "never"
)

// ChangeFrequencies returns the accepted values in protocol order.
func ChangeFrequencies() []ChangeFrequency {
	return []ChangeFrequency{Always, Hourly, Daily, Weekly, Monthly, Yearly, Never}
}

// Valid reports whether f is one of the protocol values.
func (f ChangeFrequency) Valid() bool {
	for _, v := range ChangeFrequencies() {
		if f == v {
			return true
		}
	}
	return false
}

// Alternate is one language variant of a localized page.
type Alternate struct {
	Lang string `json:"lang"`
	URL  string `json:"url"`
}

// EntryParams holds the recognized fields for building an Entry.
//
// Zero values mean "unset": LastModified nil becomes the current time,
// an empty or unknown ChangeFrequency becomes daily and an empty Priority becomes 0.5.
// When Alternates is non-empty the first alternate URL is the canonical location
// and Location is ignored.
type EntryParams struct {
	Location        string
	LastModified    *time.Time
	ChangeFrequency string
	Priority        string
	Alternates      []Alternate
}

// Entry is one <url> record of a sitemap, or one <sitemap> reference of an index.
// Identity is the location; every other field is payload.
type Entry struct {
	location        string
	lastModified    string
	changeFrequency ChangeFrequency
	priority        string
	alternates      []Alternate
}

// NewEntry builds an Entry from params. It fails only when the location is invalid.
func NewEntry(p EntryParams) (*Entry, error) {
	e := &Entry{}
	e.SetLastModified(p.LastModified)
	e.SetChangeFrequency(p.ChangeFrequency)
	e.SetPriority(p.Priority)

	location := p.Location
	if len(p.Alternates) > 0 {
		location = p.Alternates[0].URL
	}
	if err := e.SetLocation(location); err != nil {
		return nil, err
	}
	e.SetAlternates(p.Alternates)
	return e, nil
}

// SetLocation sets the page URL. The value must be an absolute URL with a
// scheme, a host and a non-empty path; the entry is left unchanged otherwise.
func (e *Entry) SetLocation(location string) error {
	if !validLocation(location) {
		return &ValidationError{
			Field:   "location",
			Value:   location,
			Message: "not an absolute URL with a path",
			Hint:    "Use a full URL such as https://example.com/page/",
		}
	}
	e.location = location
	return nil
}

// SetLastModified stores t (or the current time when nil) as ISO-8601.
func (e *Entry) SetLastModified(t *time.Time) {
	if t == nil {
		now := time.Now()
		t = &now
	}
	e.lastModified = t.Format(time.RFC3339)
}

// SetChangeFrequency stores freq, falling back to daily for anything outside the enumeration.
func (e *Entry) SetChangeFrequency(freq string) {
	f := ChangeFrequency(freq)
	if !f.Valid() {
		f = Daily
	}
	e.changeFrequency = f
}

// SetPriority stores p with one decimal place. Empty, non-numeric and
// out-of-range values fall back to 0.5 without an error.
func (e *Entry) SetPriority(p string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
	if err != nil || v < 0 || v > 1 {
		e.priority = DefaultPriority
		return
	}
	e.priority = strconv.FormatFloat(v, 'f', 1, 64)
}

// SetAlternates replaces the language alternates. The slice is copied.
func (e *Entry) SetAlternates(alts []Alternate) {
	if len(alts) == 0 {
		e.alternates = nil
		return
	}
	e.alternates = append([]Alternate(nil), alts...)
}

func (e *Entry) Location() string                 { return e.location }
func (e *Entry) LastModified() string             { return e.lastModified }
func (e *Entry) ChangeFrequency() ChangeFrequency { return e.changeFrequency }
func (e *Entry) Priority() string                 { return e.priority }

// Alternates returns a copy of the language alternates in insertion order.
func (e *Entry) Alternates() []Alternate {
	return append([]Alternate(nil), e.alternates...)
}

// LastModifiedTime parses the stored timestamp back into a time.Time.
func (e *Entry) LastModifiedTime() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, e.lastModified)
	return t, err == nil
}

func validLocation(location string) bool {
	if location == "" || strings.ContainsAny(location, " \t\r\n") {
		return false
	}
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != "" && u.Path != ""
}

// parseTimestamp accepts the lastmod formats found in the wild. It returns nil
// when s cannot be parsed so the caller falls back to the current time.
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
