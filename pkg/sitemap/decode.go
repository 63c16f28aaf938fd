package sitemap

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

var errNoRoot = errors.New("document has no root element")

// parsedURL is one <url> record as found on disk, before normalization.
type parsedURL struct {
	Location        string
	LastModified    string
	ChangeFrequency string
	Priority        string
	Alternates      []Alternate
}

// parsedRef is one <sitemap> reference of an index.
type parsedRef struct {
	Location     string
	LastModified string
	HasLastMod   bool
}

// parsedDocument holds whatever a file contained: url records, index references or both.
type parsedDocument struct {
	Root     string
	URLs     []parsedURL
	Sitemaps []parsedRef
}

// decodeDocument parses a urlset or sitemapindex document.
func decodeDocument(data []byte) (*parsedDocument, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errNoRoot
	}

	parsed := &parsedDocument{Root: root.Tag}

	for _, el := range root.SelectElements("sitemap") {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		ref := parsedRef{Location: strings.TrimSpace(loc.Text())}
		if lastmod := el.SelectElement("lastmod"); lastmod != nil {
			ref.LastModified = strings.TrimSpace(lastmod.Text())
			ref.HasLastMod = true
		}
		parsed.Sitemaps = append(parsed.Sitemaps, ref)
	}

	for _, el := range root.SelectElements("url") {
		rec := parsedURL{
			Location:        childText(el, "loc"),
			LastModified:    childText(el, "lastmod"),
			ChangeFrequency: childText(el, "changefreq"),
			Priority:        childText(el, "priority"),
		}
		for _, link := range el.ChildElements() {
			if !isXHTMLLink(link) {
				continue
			}
			href := link.SelectAttrValue("href", "")
			lang := link.SelectAttrValue("hreflang", "")
			if href == "" || lang == "" {
				continue
			}
			rec.Alternates = append(rec.Alternates, Alternate{Lang: lang, URL: href})
		}
		parsed.URLs = append(parsed.URLs, rec)
	}

	return parsed, nil
}

// isXHTMLLink matches <link> in the XHTML namespace under any prefix. An
// undeclared "xhtml" prefix is accepted as well.
func isXHTMLLink(el *etree.Element) bool {
	if el.Tag != "link" {
		return false
	}
	switch el.NamespaceURI() {
	case NamespaceXHTML:
		return true
	case "":
		return el.Space == "xhtml"
	}
	return false
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
