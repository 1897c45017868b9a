// Package generate is the HTTP module of the lipsum service.
//
// Every GET route takes plain integer query parameters (min_words,
// max_words, count, level, elements and so on), builds lipsum ranges from
// them and delegates to the engine:
//
//	GET  /words /fragment /sentence /sentences /paragraph /paragraphs /text /slug /url
//	GET  /markdown/{header,emphasis,link,list,paragraph,paragraphs,document}
//	POST /analyze   {"sentences": n, "words": n}
//	POST /htmlify
//	GET  /version
//
// Invalid parameters and requests above the Config limits get 400 with the
// error text. Requests carrying seed are deterministic and their results
// are cached; X-Cache reports HIT or MISS. Markdown routes accept html=true
// for HTML markup from the engine, or render=true to convert the generated
// Markdown with goldmark.
package generate
