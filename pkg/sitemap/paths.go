package sitemap

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// duplicateSlashRegex matches runs of slashes that do not follow a scheme's colon.
var duplicateSlashRegex = regexp.MustCompile(`(^|[^:])//+`)

// NormalizeFilePath strips the first "xml" and "gz" tokens from the file name
// and re-appends ".xml", plus ".gz" when compressed. A name made only of those
// tokens keeps its first one as the stem, and a leading dot is preserved.
//
//	NormalizeFilePath("/www/sitemap", false)        // /www/sitemap.xml
//	NormalizeFilePath("/www/sitemap.xml.gz", false) // /www/sitemap.xml
//	NormalizeFilePath("/www/sitemap.xml", true)     // /www/sitemap.xml.gz
//	NormalizeFilePath("/www/xml.gz", false)         // /www/xml.xml
func NormalizeFilePath(path string, compressed bool) string {
	dir, name := filepath.Split(path)

	all := lo.Without(strings.Split(name, "."), "")
	tokens := removeFirst(all, ExtensionXML)
	tokens = removeFirst(tokens, ExtensionGzip)
	if len(tokens) == 0 && len(all) > 0 {
		tokens = all[:1:1]
	}

	tokens = append(tokens, ExtensionXML)
	if compressed {
		tokens = append(tokens, ExtensionGzip)
	}

	stem := strings.Join(tokens, ".")
	if strings.HasPrefix(name, ".") {
		stem = "." + stem
	}
	return dir + stem
}

// ChunkPath returns the path of chunk index for basePath: dir/{index}_name.ext.
func ChunkPath(basePath string, index int) string {
	dir, name := filepath.Split(basePath)
	return dir + fmt.Sprintf("%d_%s", index, name)
}

// PublicURL maps a file under documentRoot to its URL on schemeAndHost
// (for example "https://example.com").
func PublicURL(filesystemPath, documentRoot, schemeAndHost string) string {
	p := filepath.ToSlash(filesystemPath)
	root := strings.TrimRight(filepath.ToSlash(documentRoot), "/")
	if root != "" && (p == root || strings.HasPrefix(p, root+"/")) {
		p = strings.TrimPrefix(p, root)
	}
	return collapseSlashes(strings.TrimRight(schemeAndHost, "/") + "/" + p)
}

// FilesystemPath maps a public URL back to the file under documentRoot.
func FilesystemPath(rawURL, documentRoot string) string {
	var urlPath string
	if u, err := url.Parse(rawURL); err == nil {
		urlPath = u.Path
	}
	joined := collapseSlashes(filepath.ToSlash(documentRoot) + "/" + urlPath)
	return filepath.FromSlash(joined)
}

// SchemeAndHost returns "scheme://host" of location, or false if it has neither.
func SchemeAndHost(location string) (string, bool) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}

func collapseSlashes(s string) string {
	return duplicateSlashRegex.ReplaceAllString(s, "${1}/")
}

func removeFirst(tokens []string, token string) []string {
	for i, t := range tokens {
		if t == token {
			return append(tokens[:i:i], tokens[i+1:]...)
		}
	}
	return tokens
}
