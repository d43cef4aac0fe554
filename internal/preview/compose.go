// Package preview merges a files bundle into a single standalone HTML
// document by role-based selection and literal-tag injection.
package preview

import (
	"strings"

	"ai-app-builder-backend/internal/models"
)

// Placeholder is the document served when a bundle has no index.html.
const Placeholder = "<!doctype html><html><body><div>Missing index.html</div></body></html>"

// Compose is pure and deterministic. Selection picks the first file whose
// path equals index.html (case-insensitive), the first .css and the first
// .js. The stylesheet is injected before the first literal </head> and the
// script before the first literal </body>; a missing marker silently drops
// that injection. Files beyond the first of each role are preview-only
// omissions; export still carries them.
func Compose(files models.FilesBundle) string {
	index := pick(files, func(p string) bool { return p == "index.html" })
	if index == nil {
		return Placeholder
	}

	html := index.Content
	if css := pick(files, func(p string) bool { return strings.HasSuffix(p, ".css") }); css != nil {
		html = strings.Replace(html, "</head>", "  <style>\n"+css.Content+"\n</style>\n</head>", 1)
	}
	if js := pick(files, func(p string) bool { return strings.HasSuffix(p, ".js") }); js != nil {
		html = strings.Replace(html, "</body>", "  <script>\n"+js.Content+"\n</script>\n</body>", 1)
	}
	return html
}

func pick(files models.FilesBundle, match func(string) bool) *models.File {
	for i := range files {
		if match(strings.ToLower(files[i].Path)) {
			return &files[i]
		}
	}
	return nil
}
