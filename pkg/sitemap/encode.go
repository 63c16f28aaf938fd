package sitemap

import (
	"bytes"
	"fmt"

	xw "github.com/shabbyrobe/xmlwriter"
)

// encodeURLSet serializes entries as a <urlset> document.
// The xhtml namespace is declared on the root when xhtml is true.
func encodeURLSet(entries []*Entry, xhtml bool) ([]byte, error) {
	attrs := []xw.Attr{{Name: "xmlns", Value: NamespaceSitemap}}
	if xhtml {
		attrs = append(attrs, xw.Attr{Name: "xmlns:xhtml", Value: NamespaceXHTML})
	}

	return encodeDocument(xw.Elem{Name: "urlset", Attrs: attrs}, len(entries), func(i int) xw.Elem {
		e := entries[i]
		content := []xw.Writable{
			textElem("loc", e.Location()),
			textElem("lastmod", e.LastModified()),
			textElem("changefreq", string(e.ChangeFrequency())),
			textElem("priority", e.Priority()),
		}
		for _, alt := range e.alternates {
			content = append(content, xw.Elem{
				Name: "xhtml:link",
				Attrs: []xw.Attr{
					{Name: "rel", Value: "alternate"},
					{Name: "hreflang", Value: alt.Lang},
					{Name: "href", Value: alt.URL},
				},
			})
		}
		return xw.Elem{Name: "url", Content: content}
	})
}

// encodeSitemapIndex serializes entries as a <sitemapindex> document.
func encodeSitemapIndex(entries []*Entry) ([]byte, error) {
	root := xw.Elem{Name: "sitemapindex", Attrs: []xw.Attr{{Name: "xmlns", Value: NamespaceSitemap}}}

	return encodeDocument(root, len(entries), func(i int) xw.Elem {
		e := entries[i]
		return xw.Elem{Name: "sitemap", Content: []xw.Writable{
			textElem("loc", e.Location()),
			textElem("lastmod", e.LastModified()),
		}}
	})
}

// encodeDocument opens the document and root, writes n children produced by child and closes everything.
func encodeDocument(root xw.Elem, n int, child func(i int) xw.Elem) ([]byte, error) {
	var buf bytes.Buffer
	w := xw.Open(&buf, xw.WithIndent())

	if err := w.Start(xw.Doc{}, root); err != nil {
		return nil, fmt.Errorf("start <%s>: %w", root.Name, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(child(i)); err != nil {
			return nil, fmt.Errorf("write <%s> child %d: %w", root.Name, i, err)
		}
	}
	if err := w.EndAllFlush(); err != nil {
		return nil, fmt.Errorf("close <%s>: %w", root.Name, err)
	}
	return buf.Bytes(), nil
}

func textElem(name, value string) xw.Elem {
	return xw.Elem{Name: name, Content: []xw.Writable{xw.Text(value)}}
}
