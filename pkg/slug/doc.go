// Package slug turns free text into URL-safe identifiers.
//
// Runs of letters and digits become words; everything else is a word break.
// Words are lower-cased and joined with a separator:
//
//	slug.Make("Lorem ipsum, dolor")                       // "lorem-ipsum-dolor"
//	slug.Make("Lorem ipsum dolor", slug.Separator("_"))   // "lorem_ipsum_dolor"
//	slug.Make("Lorem ipsum dolor", slug.MaxLength(11))    // "lorem-ipsum"
//
// The lipsum generator uses it for Slug and for the URL fragment of links.
package slug
