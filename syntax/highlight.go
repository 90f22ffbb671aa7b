package syntax

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/styles"
	"github.com/fatih/color"

	"yog/report"
	"yog/symtab"
)

// yogLexer is a chroma lexer for yog source text.  It is only used to display
// source text and is not consulted by the compiler.
var yogLexer = chroma.MustNewLexer(
	&chroma.Config{
		Name:      "yog",
		Aliases:   []string{"yog"},
		Filenames: []string{"*.yog"},
	},
	chroma.Rules{
		"root": {
			{Pattern: `\s+`, Type: chroma.Text},
			{Pattern: `\b(var|begin|end|read|write|if|else|while)\b`, Type: chroma.Keyword},
			{Pattern: `\bint\b`, Type: chroma.KeywordType},
			{Pattern: `[0-9]+`, Type: chroma.LiteralNumberInteger},
			{Pattern: `[a-zA-Z][a-zA-Z0-9]*`, Type: chroma.NameVariable},
			{Pattern: `:=|<>|<=|>=|[-+*/=<>]`, Type: chroma.Operator},
			{Pattern: `[:;()]`, Type: chroma.Punctuation},
			{Pattern: `.`, Type: chroma.Error},
		},
	},
)

// HighlightSource writes the source text highlighted for a terminal.  If
// colored is false, the text is written unchanged.
func HighlightSource(w io.Writer, src string, colored bool) error {
	formatter := formatters.Get("noop")
	if colored {
		formatter = formatters.Get("terminal256")
	}

	it, err := yogLexer.Tokenise(nil, src)
	if err != nil {
		return err
	}

	return formatter.Format(w, styles.Get("monokai"), it)
}

// -----------------------------------------------------------------------------

// HighlightTokens scans the source text and writes one token per line with its
// position.  Lexical errors are written in place of the invalid tokens.
func HighlightTokens(w io.Writer, src string, colored bool) {
	keyword := color.New(color.FgBlue, color.Bold)
	literal := color.New(color.FgMagenta)
	oper := color.New(color.FgYellow)
	errColor := color.New(color.FgRed)

	for _, c := range []*color.Color{keyword, literal, oper, errColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	errs := &report.ErrorList{}
	sc := NewScanner(strings.NewReader(src), symtab.NewTable(), errs)

	nReported := 0
	for {
		tok := sc.NextToken()

		// errors are recorded while the scanner looks for the next valid
		// token so they come before it
		for ; nReported < errs.Len(); nReported++ {
			err := errs.At(nReported)
			fmt.Fprintf(w, "%-8s %s\n", err.Pos(), errColor.Sprint(err.Error()))
		}

		var text string
		switch {
		case tok.Kind == TOK_LITERAL:
			text = literal.Sprint(tok.String())
		case tok.Kind == TOK_IDENTIFIER:
			text = tok.String()
		case tok.Kind.Has(TOK_VAR | TOK_BEGIN | TOK_END | TOK_INT | TOK_READ | TOK_WRITE | TOK_IF | TOK_ELSE | TOK_WHILE):
			text = keyword.Sprint(tok.String())
		default:
			text = oper.Sprint(tok.String())
		}

		fmt.Fprintf(w, "%-8s %s\n", tok.Position, text)

		if tok.Kind == TOK_EOF {
			break
		}
	}
}
