package generate

import (
	"fmt"
	"strings"

	"ai-app-builder-backend/internal/models"
)

// Fallback synthesizes a minimal, self-consistent bundle for a generation
// request without calling any upstream. The output is deterministic for a
// given (appType, template, prompt) triple and always contains index.html,
// styles.css and app.js in a shape the preview composer accepts unmodified.
func Fallback(req models.GenerateRequest) models.FilesBundle {
	title := fmt.Sprintf("%s %s", req.Template, req.AppType)
	hero := strings.TrimSpace(req.Prompt)

	return models.FilesBundle{
		{Path: "index.html", Content: fallbackIndex(title, hero, req.Template)},
		{Path: "styles.css", Content: fallbackStyles(req.Template)},
		{Path: "app.js", Content: fallbackScript(title)},
	}
}

func fallbackIndex(title, hero, template string) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", title)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "  <header class=\"hero\">\n    <h1>%s</h1>\n    <p class=\"tagline\">%s</p>\n  </header>\n", title, hero)
	b.WriteString("  <nav>\n")
	for _, section := range sectionsFor(template) {
		fmt.Fprintf(&b, "    <a href=\"#%s\">%s</a>\n", strings.ToLower(section), section)
	}
	b.WriteString("  </nav>\n  <main>\n")
	for _, section := range sectionsFor(template) {
		fmt.Fprintf(&b, "    <section id=\"%s\">\n      <h2>%s</h2>\n      <p>Content for %s goes here.</p>\n    </section>\n",
			strings.ToLower(section), section, strings.ToLower(section))
	}
	b.WriteString("  </main>\n")
	fmt.Fprintf(&b, "  <footer>\n    <p>Built with the %s template.</p>\n  </footer>\n", template)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func sectionsFor(template string) []string {
	switch template {
	case "Business":
		return []string{"Services", "About", "Contact"}
	case "Blog":
		return []string{"Posts", "Archive", "About"}
	case "E-Commerce":
		return []string{"Products", "Cart", "Support"}
	default: // Portfolio
		return []string{"Work", "About", "Contact"}
	}
}

func accentFor(template string) string {
	switch template {
	case "Business":
		return "#0f766e"
	case "Blog":
		return "#7c3aed"
	case "E-Commerce":
		return "#b45309"
	default: // Portfolio
		return "#1d4ed8"
	}
}

func fallbackStyles(template string) string {
	return fmt.Sprintf(`:root {
  --accent: %s;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: system-ui, -apple-system, sans-serif;
  color: #1f2937;
  line-height: 1.6;
}

.hero {
  background: var(--accent);
  color: #fff;
  padding: 4rem 2rem;
  text-align: center;
}

.hero h1 { margin: 0 0 0.5rem; }

.tagline { margin: 0; opacity: 0.9; }

nav {
  display: flex;
  gap: 1.5rem;
  justify-content: center;
  padding: 1rem;
  border-bottom: 1px solid #e5e7eb;
}

nav a { color: var(--accent); text-decoration: none; }

main { max-width: 720px; margin: 0 auto; padding: 2rem; }

section { margin-bottom: 2rem; }

footer {
  padding: 2rem;
  text-align: center;
  color: #6b7280;
  font-size: 0.875rem;
}
`, accentFor(template))
}

func fallbackScript(title string) string {
	return fmt.Sprintf(`document.addEventListener('DOMContentLoaded', function () {
  console.log('%s ready');
  document.querySelectorAll('nav a').forEach(function (link) {
    link.addEventListener('click', function (event) {
      event.preventDefault();
      var target = document.querySelector(link.getAttribute('href'));
      if (target) target.scrollIntoView({ behavior: 'smooth' });
    });
  });
});
`, strings.ReplaceAll(title, "'", "\\'"))
}
