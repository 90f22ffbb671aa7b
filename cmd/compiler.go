package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"yog/config"
	"yog/interp"
	"yog/ir"
	"yog/lower"
	"yog/report"
	"yog/symtab"
	"yog/syntax"
)

// Compiler compiles and runs a single source file.
type Compiler struct {
	// absPath is the absolute path to the source file.  It is empty if the
	// source was not read from a file.
	absPath string

	// reprPath is the path displayed to the user.
	reprPath string

	profile *config.Profile

	src      []byte
	table    *symtab.Table
	errs     *report.ErrorList
	ast      *syntax.ASTBranch
	prog     *ir.Program
	warnings []lower.Warning
}

// ErrSourceFile is the cause of the errors returned when the source file can't
// be read.
var ErrSourceFile = errors.New("unable to open source file")

// NewCompiler creates a compiler for the source file at path.
func NewCompiler(path string, profile *config.Profile) (*Compiler, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceFile, err)
	}

	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceFile, err)
	}

	c := NewSourceCompiler(src, profile)
	c.absPath = absPath
	c.reprPath = path
	return c, nil
}

// NewSourceCompiler creates a compiler for source text held in memory.
func NewSourceCompiler(src []byte, profile *config.Profile) *Compiler {
	return &Compiler{
		reprPath: "<source>",
		profile:  profile,
		src:      src,
		table:    symtab.NewTable(),
		errs:     &report.ErrorList{},
	}
}

// Compile scans, parses and lowers the source.  Every error found is reported:
// it returns false if there was any.
func (c *Compiler) Compile() bool {
	report.ReportBeginPhase("Parsing")
	c.ast = syntax.ParseSource(bytes.NewReader(c.src), c.table, c.errs, c.profile.WrapLiterals)

	report.ReportBeginPhase("Analyzing")
	c.prog, c.warnings = lower.Lower(c.ast, c.errs, c.profile.FoldConstants)

	report.ReportCompileErrors(c.absPath, c.reprPath, c.errs)
	for _, w := range c.warnings {
		report.ReportCompileWarning(c.absPath, c.reprPath, w.Position, "%s", w.Message)
	}

	report.ReportEndPhase()
	return c.errs.Empty()
}

// Run interprets the compiled program.  Compile must have succeeded before
// this is called.
func (c *Compiler) Run(in interp.Input, out io.Writer) error {
	it := interp.NewInterpreter(c.prog, in, out, interp.Options{
		Prompt:   c.profile.Prompt,
		MaxSteps: c.profile.MaxSteps,
	})

	if err := it.Run(); err != nil {
		report.ReportRuntimeError(err)
		return err
	}

	return nil
}

// Errors returns the list of compile errors.
func (c *Compiler) Errors() *report.ErrorList {
	return c.errs
}

// Warnings returns the warnings produced by the analysis.
func (c *Compiler) Warnings() []lower.Warning {
	return c.warnings
}

// Program returns the lowered program.
func (c *Compiler) Program() *ir.Program {
	return c.prog
}

// AST returns the parsed source.
func (c *Compiler) AST() *syntax.ASTBranch {
	return c.ast
}

// Table returns the symbol table of the source.
func (c *Compiler) Table() *symtab.Table {
	return c.table
}

// Source returns the source text.
func (c *Compiler) Source() []byte {
	return c.src
}
