package lipsum

import "strings"

// legacyEscaper is kept apart from entityEscaper so HTMLify can be removed
// without touching the Markdown formatter.
var legacyEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// HTMLify wraps every non-empty line of text in "<p>...</p>\n", escaping
// HTML entities. Lines split on "\n" only and are kept as they are
// otherwise, leading tabs and carriage returns included.
//
// Deprecated: generate HTML directly by setting Options.HTML, or render
// Markdown output with pkg/mdrender.
func HTMLify(text string) string {
	var b strings.Builder
	for line := range strings.Lines(text) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(legacyEscaper.Replace(line))
		b.WriteString("</p>\n")
	}
	return b.String()
}
