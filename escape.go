package lipsum

import "strings"

// entityEscaper maps the five characters that are unsafe in HTML text and
// attribute values to named entities.
var entityEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeHTML replaces & < > " ' with &amp; &lt; &gt; &quot; &apos;.
func EscapeHTML(s string) string {
	return entityEscaper.Replace(s)
}
