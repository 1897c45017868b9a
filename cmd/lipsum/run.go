package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/lipsum"
	"github.com/dmitrymomot/lipsum/pkg/config"
	"github.com/dmitrymomot/lipsum/pkg/mdrender"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// maxInput caps what count and htmlify read from stdin.
const maxInput = 16 << 20

type env struct {
	Seed uint64 `env:"LIPSUM_SEED"`
	URL  string `env:"LIPSUM_URL"`
}

type command struct {
	name     string
	usage    string
	defaultN int // 0: takes no count argument
	markdown bool
	run      func(c *cli, n int) (string, error)
}

type cli struct {
	gen    *lipsum.Generator
	opts   lipsum.Options
	bold   bool
	order  bool
	format string
	stdin  io.Reader
}

var commands = []command{
	{name: "word", usage: "one word", run: func(c *cli, _ int) (string, error) { return c.gen.Word(), nil }},
	{name: "words", usage: "n words (default 5)", defaultN: 5, run: func(c *cli, n int) (string, error) { return c.gen.Words(n) }},
	{name: "fragment", usage: "a sentence fragment", run: func(c *cli, _ int) (string, error) { return c.gen.Fragment(&c.opts) }},
	{name: "sentence", usage: "one sentence", run: func(c *cli, _ int) (string, error) { return c.gen.Sentence(&c.opts) }},
	{name: "sentences", usage: "n sentences (default 6)", defaultN: 6, run: func(c *cli, n int) (string, error) { return c.gen.Sentences(n, &c.opts) }},
	{name: "paragraph", usage: "one paragraph", run: func(c *cli, _ int) (string, error) { return c.gen.Paragraph(&c.opts) }},
	{name: "paragraphs", usage: "n paragraphs (default 5)", defaultN: 5, run: func(c *cli, n int) (string, error) { return c.gen.Paragraphs(n, &c.opts) }},
	{name: "text", usage: "-paras many paragraphs", run: func(c *cli, _ int) (string, error) { return c.gen.Text(&c.opts) }},
	{name: "slug", usage: "a URL slug", run: func(c *cli, _ int) (string, error) { return c.gen.Slug(&c.opts) }},
	{name: "url", usage: "-url plus a #fragment of -slug-words words", run: func(c *cli, _ int) (string, error) { return c.gen.URL(&c.opts) }},
	{name: "header", usage: "a level-n Markdown header (default 1)", defaultN: 1, markdown: true, run: func(c *cli, n int) (string, error) { return c.gen.Header(n, &c.opts) }},
	{name: "emphasis", usage: "an emphasized sentence, see -bold", markdown: true, run: func(c *cli, _ int) (string, error) { return c.gen.Emphasis(c.bold, &c.opts) }},
	{name: "link", usage: "a Markdown link", markdown: true, run: func(c *cli, _ int) (string, error) { return c.gen.Link(&c.opts) }},
	{name: "list", usage: "a Markdown list, see -ordered", markdown: true, run: func(c *cli, _ int) (string, error) { return c.gen.List(c.order, &c.opts) }},
	{name: "mdparagraph", usage: "a Markdown paragraph with links and emphasis", markdown: true, run: func(c *cli, _ int) (string, error) { return c.gen.MarkdownParagraph(&c.opts) }},
	{name: "mdparagraphs", usage: "n Markdown paragraphs (default 5)", defaultN: 5, markdown: true, run: func(c *cli, n int) (string, error) { return c.gen.MarkdownParagraphs(n, &c.opts) }},
	{name: "document", usage: "a Markdown document of n elements (default 15)", defaultN: 15, markdown: true, run: func(c *cli, n int) (string, error) { return c.gen.Document(n, &c.opts) }},
	{name: "count", usage: "count sentences and words read from stdin, see -format", run: (*cli).count},
	{name: "htmlify", usage: "wrap stdin lines in <p> tags", run: (*cli).htmlify},
	{name: "version", usage: "print the engine version", run: func(*cli, int) (string, error) { return lipsum.EngineVersion() + "\n", nil }},
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var e env
	if err := config.Load(&e); err != nil {
		fmt.Fprintln(stderr, "lipsum:", err)
		return exitError
	}

	c := &cli{stdin: stdin, opts: lipsum.Options{URL: e.URL}}
	fs := flag.NewFlagSet("lipsum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	seed := fs.Uint64("seed", e.Seed, "random seed for reproducible output, 0 for random (env LIPSUM_SEED)")
	fs.Var(&c.opts.Words, "words", "words per fragment, as min-max (default 4-9)")
	fs.Var(&c.opts.Fragments, "frags", "fragments per sentence (default 1-3)")
	fs.Var(&c.opts.Sentences, "sents", "sentences per paragraph (default 5-8)")
	fs.Var(&c.opts.Paragraphs, "paras", "paragraphs for text (default 1-4)")
	fs.Var(&c.opts.Points, "points", "list items (default 3-5)")
	fs.Var(&c.opts.FormatWords, "fmt-words", "words per fragment in links, emphasis and list items (default 4-8)")
	fs.Var(&c.opts.FormatFragments, "fmt-frags", "fragments per sentence in links, emphasis and list items (default 1-2)")
	fs.Var(&c.opts.HeaderWords, "head-words", "words per header (default 2-5)")
	fs.Var(&c.opts.HeaderLevels, "levels", "header levels inside a document (default 2-4)")
	fs.Var(&c.opts.SlugWords, "slug-words", "words per slug (default 2-5)")
	fs.StringVar(&c.opts.SlugSeparator, "sep", "", `slug separator (default "-")`)
	fs.StringVar(&c.opts.URL, "url", c.opts.URL, "link base URL (default "+lipsum.DefaultURL+", env LIPSUM_URL)")
	fs.BoolVar(&c.opts.NoOpeningPhrase, "no-lipsum", false, `do not start with "Lorem ipsum dolor sit amet..."`)
	fs.BoolVar(&c.opts.HTML, "html", false, "emit HTML instead of Markdown")
	fs.BoolVar(&c.bold, "bold", false, "bold instead of italic emphasis")
	fs.BoolVar(&c.order, "ordered", false, "numbered instead of bulleted list")
	render := fs.Bool("render", false, "render Markdown output to HTML")
	fs.StringVar(&c.format, "format", "text", "count output: text, json or yaml")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() == 0 {
		usage(fs)
		return exitUsage
	}
	var zeroRange string
	fs.Visit(func(f *flag.Flag) {
		// A 0 range would read as unset and silently take the default.
		if r, ok := f.Value.(*lipsum.Range); ok && r.IsZero() {
			zeroRange = f.Name
		}
	})
	if zeroRange != "" {
		fmt.Fprintf(stderr, "lipsum: -%s: %v: range must start at 1\n", zeroRange, lipsum.ErrInvalidCount)
		return exitUsage
	}

	cmd, ok := lookup(fs.Arg(0))
	if !ok {
		fmt.Fprintf(stderr, "lipsum: unknown command %q\n", fs.Arg(0))
		return exitUsage
	}
	n, err := countArg(cmd, fs.Args()[1:])
	if err != nil {
		fmt.Fprintln(stderr, "lipsum:", err)
		return exitUsage
	}

	var genOpts []lipsum.GeneratorOption
	if *seed != 0 {
		genOpts = append(genOpts, lipsum.WithSeed(*seed))
	}
	if c.gen, err = lipsum.New(genOpts...); err != nil {
		fmt.Fprintln(stderr, "lipsum:", err)
		return exitError
	}

	out, err := cmd.run(c, n)
	if err == nil && *render && cmd.markdown && !c.opts.HTML {
		out, err = mdrender.ToHTML(out)
	}
	if err != nil {
		fmt.Fprintln(stderr, "lipsum:", err)
		return exitError
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(stdout, out); err != nil {
		return exitError
	}
	return exitOK
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func countArg(cmd command, rest []string) (int, error) {
	switch {
	case len(rest) == 0:
		return cmd.defaultN, nil
	case cmd.defaultN == 0 || len(rest) > 1:
		return 0, fmt.Errorf("%s: unexpected arguments %q", cmd.name, rest)
	}
	n, err := strconv.Atoi(rest[0])
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", cmd.name, rest[0])
	}
	return n, nil
}

type counts struct {
	Sentences int `json:"sentences" yaml:"sentences"`
	Words     int `json:"words" yaml:"words"`
}

func (c *cli) count(int) (string, error) {
	text, err := c.readInput()
	if err != nil {
		return "", err
	}
	res := counts{Sentences: lipsum.CountSentences(text), Words: lipsum.CountWords(text)}

	switch c.format {
	case "text":
		return fmt.Sprintf("sentences: %d\nwords: %d\n", res.Sentences, res.Words), nil
	case "json":
		b, err := json.Marshal(res)
		return string(b), err
	case "yaml":
		b, err := yaml.Marshal(res)
		return string(b), err
	default:
		return "", fmt.Errorf("unknown format %q", c.format)
	}
}

func (c *cli) htmlify(int) (string, error) {
	text, err := c.readInput()
	if err != nil {
		return "", err
	}
	//nolint:staticcheck // SA1019: legacy command
	return lipsum.HTMLify(text), nil
}

func (c *cli) readInput() (string, error) {
	b, err := io.ReadAll(io.LimitReader(c.stdin, maxInput+1))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(b) > maxInput {
		return "", fmt.Errorf("stdin exceeds %d bytes", maxInput)
	}
	return string(b), nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: lipsum [flags] <command> [n]")
	fmt.Fprintln(w, "\nCommands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-13s %s\n", c.name, c.usage)
	}
	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}
