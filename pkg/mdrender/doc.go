// Package mdrender turns generated Markdown into HTML with goldmark.
//
//	out, err := mdrender.ToHTML("# Lorem ipsum\n\nDolor sit amet.\n")
//
// New builds a Renderer with heading IDs, XHTML output or the typographer
// extension switched on.
package mdrender
