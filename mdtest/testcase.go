// Package mdtest extracts end-to-end test cases from Markdown documents.
//
// A test case starts at a heading of the form `Test: <name>` and is made of
// the fenced code blocks that follow it: one `yog` block holding the program,
// an optional `input` block holding its standard input, and one or more
// assertion blocks (`output`, `errors`, `ir`).  Words following the language
// of the `yog` fence are options of the case, eg. ```` ```yog fold ````.
package mdtest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Enumeration of the fence languages that may appear in a test case.
const (
	FenceSource = "yog"
	FenceInput  = "input"
	FenceOutput = "output"
	FenceErrors = "errors"
	FenceIR     = "ir"
)

// Assertion is an expectation about the result of running a test case.
type Assertion struct {
	// Kind is the language of the assertion fence.
	Kind string

	// Content is the text of the fence without its final newline.
	Content string

	// Line is the line of the document the fence content starts on.
	Line int
}

// TestCase is a single test case extracted from a document.
type TestCase struct {
	Name string
	Line int

	Source  string
	Options []string

	// Input is the standard input of the program.  It keeps its final newline.
	Input string

	Assertions []Assertion
}

// HasOption returns whether the case was given an option.
func (tc *TestCase) HasOption(name string) bool {
	for _, opt := range tc.Options {
		if opt == name {
			return true
		}
	}

	return false
}

// ExtractTestCases parses a Markdown document and extracts its test cases in
// document order.
func ExtractTestCases(doc []byte) ([]*TestCase, error) {
	root := goldmark.New().Parser().Parse(text.NewReader(doc))

	var cases []*TestCase
	var current *TestCase

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := nodeText(n, doc)
			if !strings.HasPrefix(heading, "Test: ") {
				return ast.WalkSkipChildren, nil
			}

			if current != nil {
				if err := validateTestCase(current); err != nil {
					return ast.WalkStop, err
				}

				cases = append(cases, current)
			}

			current = &TestCase{
				Name: strings.TrimSpace(strings.TrimPrefix(heading, "Test: ")),
				Line: lineOf(n, doc),
			}

			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			return ast.WalkContinue, addFence(current, n, doc)
		}

		return ast.WalkContinue, nil
	})

	if err != nil {
		return nil, err
	}

	if current != nil {
		if err := validateTestCase(current); err != nil {
			return nil, err
		}

		cases = append(cases, current)
	}

	return cases, nil
}

// addFence adds a fenced code block to the current test case.  Fences without
// a language are treated as prose.
func addFence(tc *TestCase, fence *ast.FencedCodeBlock, doc []byte) error {
	lang := string(fence.Language(doc))
	if lang == "" {
		return nil
	}

	line := lineOf(fence, doc)
	if tc == nil {
		return fmt.Errorf("line %d: `%s` fence found outside of a test case", line, lang)
	}

	content := fenceContent(fence, doc)

	switch lang {
	case FenceSource:
		if tc.Source != "" {
			return fmt.Errorf("line %d: multiple `%s` fences in test `%s`", line, lang, tc.Name)
		}

		tc.Source = content
		if fence.Info != nil {
			tc.Options = strings.Fields(string(fence.Info.Segment.Value(doc)))[1:]
		}
	case FenceInput:
		if tc.Input != "" {
			return fmt.Errorf("line %d: multiple `%s` fences in test `%s`", line, lang, tc.Name)
		}

		tc.Input = content
	case FenceOutput, FenceErrors, FenceIR:
		tc.Assertions = append(tc.Assertions, Assertion{
			Kind:    lang,
			Content: strings.TrimSuffix(content, "\n"),
			Line:    line,
		})
	default:
		return fmt.Errorf("line %d: unknown fence language `%s` in test `%s`", line, lang, tc.Name)
	}

	return nil
}

// validateTestCase ensures a test case has a program and something to check.
func validateTestCase(tc *TestCase) error {
	if tc.Source == "" {
		return fmt.Errorf("line %d: test `%s` has no `%s` fence", tc.Line, tc.Name, FenceSource)
	}

	if len(tc.Assertions) == 0 {
		return fmt.Errorf("line %d: test `%s` has no assertion fences", tc.Line, tc.Name)
	}

	return nil
}

// -----------------------------------------------------------------------------

// nodeText returns the plain text of a node.
func nodeText(node ast.Node, doc []byte) string {
	var buf bytes.Buffer

	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(doc))
		}

		return ast.WalkContinue, nil
	})

	return buf.String()
}

// fenceContent returns the raw lines of a fenced code block.
func fenceContent(fence *ast.FencedCodeBlock, doc []byte) string {
	var buf bytes.Buffer

	lines := fence.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(doc))
	}

	return buf.String()
}

// lineOf returns the 1-based line of the document a block starts on.  For a
// fenced code block this is the line of its first content line.
func lineOf(node ast.Node, doc []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}

	start := node.Lines().At(0).Start
	return bytes.Count(doc[:start], []byte("\n")) + 1
}
