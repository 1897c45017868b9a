package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/lipsum"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestGenerationCommands(t *testing.T) {
	tests := []struct {
		args  []string
		check func(t *testing.T, out string)
	}{
		{[]string{"word"}, func(t *testing.T, out string) {
			assert.Len(t, strings.Fields(out), 1)
		}},
		{[]string{"words", "12"}, func(t *testing.T, out string) {
			assert.Len(t, strings.Fields(out), 12)
		}},
		{[]string{"-words", "2", "fragment"}, func(t *testing.T, out string) {
			assert.Len(t, strings.Fields(out), 2)
		}},
		{[]string{"sentence"}, func(t *testing.T, out string) {
			assert.True(t, strings.HasSuffix(out, ".\n"), out)
		}},
		{[]string{"sentences", "4"}, func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, lipsum.OpeningPhrase))
			assert.Equal(t, 4, lipsum.CountSentences(out))
		}},
		{[]string{"-no-lipsum", "paragraph"}, func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, "\t"))
			assert.NotContains(t, out, lipsum.OpeningPhrase)
		}},
		{[]string{"paragraphs", "2"}, func(t *testing.T, out string) {
			assert.Equal(t, 2, strings.Count(out, "\t"))
		}},
		{[]string{"-paras", "3", "text"}, func(t *testing.T, out string) {
			assert.Equal(t, 3, strings.Count(out, "\t"))
		}},
		{[]string{"-slug-words", "4", "-sep", ".", "slug"}, func(t *testing.T, out string) {
			assert.Equal(t, 3, strings.Count(out, "."))
		}},
		{[]string{"-url", "https://lipsum.test/", "-slug-words", "6-9", "url"}, func(t *testing.T, out string) {
			assert.Regexp(t, `^https://lipsum\.test/#[a-z]+(-[a-z]+){5,8}\n$`, out)
		}},
		{[]string{"header", "4"}, func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, "#### "), out)
		}},
		{[]string{"-bold", "emphasis"}, func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, "**"), out)
		}},
		{[]string{"-url", "https://lipsum.test/", "link"}, func(t *testing.T, out string) {
			assert.Contains(t, out, "](https://lipsum.test/#")
		}},
		{[]string{"-ordered", "-points", "3", "list"}, func(t *testing.T, out string) {
			assert.Contains(t, out, "\n3. ")
		}},
		{[]string{"mdparagraph"}, func(t *testing.T, out string) {
			assert.True(t, strings.HasSuffix(out, "\n\n"))
		}},
		{[]string{"mdparagraphs", "2"}, func(t *testing.T, out string) {
			assert.Equal(t, 2, strings.Count(out, "\n\n"))
		}},
		{[]string{"mdparagraphs"}, func(t *testing.T, out string) {
			assert.Equal(t, 5, strings.Count(out, "\n\n"))
		}},
		{[]string{"document", "6"}, func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, "# "))
		}},
		{[]string{"version"}, func(t *testing.T, out string) {
			assert.Equal(t, lipsum.Version+"\n", out)
		}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, out, errOut := runCLI(t, "", append([]string{"-seed", "3"}, tt.args...)...)
			require.Equal(t, exitOK, code, errOut)
			tt.check(t, out)
		})
	}
}

func TestSeedIsReproducible(t *testing.T) {
	_, a, _ := runCLI(t, "", "-seed", "77", "document")
	_, b, _ := runCLI(t, "", "-seed", "77", "document")
	assert.Equal(t, a, b)

	want, err := lipsum.MustNew(lipsum.WithSeed(77)).Document(15, nil)
	require.NoError(t, err)
	assert.Equal(t, want, a)
}

func TestSeedFromEnvironment(t *testing.T) {
	t.Setenv("LIPSUM_SEED", "5")
	t.Setenv("LIPSUM_URL", "https://env.test/")

	// Load caches per type; start clean so the values above are read.
	resetConfig(t)

	_, out, _ := runCLI(t, "", "link")
	want, err := lipsum.MustNew(lipsum.WithSeed(5)).Link(&lipsum.Options{URL: "https://env.test/"})
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
}

func TestRenderAndHTML(t *testing.T) {
	code, out, _ := runCLI(t, "", "-seed", "2", "-render", "document", "8")
	require.Equal(t, exitOK, code)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("h1").Length())

	code, out, _ = runCLI(t, "", "-html", "-ordered", "-points", "2", "list")
	require.Equal(t, exitOK, code)
	doc, err = goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find("ol > li").Length())
}

func TestCount(t *testing.T) {
	input := "Lorem ipsum. Dolor sit [amet.](https://example.com/#x).\n"

	code, out, _ := runCLI(t, input, "count")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "sentences: 3\nwords: 5\n", out)

	code, out, _ = runCLI(t, input, "-format", "json", "count")
	require.Equal(t, exitOK, code)
	var got counts
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, counts{Sentences: 3, Words: 5}, got)

	code, out, _ = runCLI(t, input, "-format", "yaml", "count")
	require.Equal(t, exitOK, code)
	got = counts{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, counts{Sentences: 3, Words: 5}, got)

	code, _, errOut := runCLI(t, input, "-format", "xml", "count")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "unknown format")
}

func TestHTMLify(t *testing.T) {
	code, out, _ := runCLI(t, "a & b\n\nc\n", "htmlify")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "<p>a &amp; b</p>\n<p>c</p>\n", out)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"no command", nil, exitUsage, "Usage: lipsum"},
		{"unknown command", []string{"poem"}, exitUsage, "unknown command"},
		{"bad count", []string{"words", "many"}, exitUsage, "not a number"},
		{"count on countless command", []string{"sentence", "3"}, exitUsage, "unexpected arguments"},
		{"bad range flag", []string{"-words", "9-4", "sentence"}, exitUsage, "invalid range"},
		{"zero range flag", []string{"-sents", "0", "paragraph"}, exitUsage, "range must start at 1"},
		{"invalid count", []string{"words", "0"}, exitError, "invalid count"},
		{"invalid level", []string{"header", "9"}, exitError, "invalid header level"},
		{"help", []string{"-h"}, exitOK, "Commands:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, "", tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}
