package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"yog/ir"
	"yog/symtab"
	"yog/syntax"
)

// Enumeration of the sections `dump` can display.
const (
	DumpSource = 1 << iota
	DumpTokens
	DumpAST
	DumpIR
	DumpSymbols
)

// dumpFlagNames maps the flags of the dump command to their sections, in the
// order the sections are displayed.
var dumpFlagNames = []struct {
	name    string
	section int
}{
	{"source", DumpSource},
	{"tokens", DumpTokens},
	{"ast", DumpAST},
	{"ir", DumpIR},
	{"symbols", DumpSymbols},
}

// Dump writes the selected sections of a compiled source.  The compiler must
// have been run even if the source has errors.
func (c *Compiler) Dump(w io.Writer, sections int, colored bool) error {
	title := func(name string) {
		if sections&(sections-1) != 0 {
			fmt.Fprintf(w, "== %s ==\n", name)
		}
	}

	if sections&DumpSource != 0 {
		title("source")
		if err := syntax.HighlightSource(w, string(c.src), colored); err != nil {
			return err
		}

		if len(c.src) > 0 && c.src[len(c.src)-1] != '\n' {
			fmt.Fprintln(w)
		}
	}

	if sections&DumpTokens != 0 {
		title("tokens")
		syntax.HighlightTokens(w, string(c.src), colored)
	}

	if sections&DumpAST != 0 {
		title("ast")
		syntax.DumpAST(w, c.ast)
	}

	if sections&DumpIR != 0 {
		title("ir")
		ir.Print(w, c.prog, colored)
	}

	if sections&DumpSymbols != 0 {
		title("symbols")

		table, err := renderSymbols(c.table)
		if err != nil {
			return err
		}

		fmt.Fprint(w, table)
	}

	return nil
}

// renderSymbols renders the symbol table as a table in bucket order followed
// by its statistics.
func renderSymbols(table *symtab.Table) (string, error) {
	data := pterm.TableData{{"Name", "Type", "Declared At", "Value"}}

	for _, sym := range table.Symbols() {
		typ, site := "unknown", "-"
		if sym.Declared() {
			typ, site = "int", sym.DeclSite.String()
		}

		data = append(data, []string{sym.Name, typ, site, strconv.FormatInt(sym.Value, 10)})
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}

	stats := table.Stats()
	return fmt.Sprintf(
		"%s\n%d symbols in %d buckets (%d empty, longest chain %d)\n",
		rendered, stats.Symbols, stats.Buckets, stats.EmptyBuckets, stats.LongestChain,
	), nil
}
