package mdtest

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestExtractTestCases(t *testing.T) {
	doc := "# Arithmetic\n\nSome prose.\n\n" +
		"## Test: sum\n\n" +
		"```yog\nvar x: int;\nbegin read x; write x + 1 end\n```\n\n" +
		"```input\n41\n```\n\n" +
		"```output\n42\n```\n\n" +
		"## Test: folded\n\n" +
		"```yog fold\nvar begin write 2 * 3 end\n```\n\n" +
		"```ir\n0000  write 6\n```\n\n" +
		"```output\n6\n```\n"

	cases, err := ExtractTestCases([]byte(doc))
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 2)

	sum := cases[0]
	be.Equal(t, sum.Name, "sum")
	be.Equal(t, sum.Source, "var x: int;\nbegin read x; write x + 1 end\n")
	be.Equal(t, sum.Input, "41\n")
	be.Equal(t, len(sum.Options), 0)
	be.Equal(t, len(sum.Assertions), 1)
	be.Equal(t, sum.Assertions[0].Kind, FenceOutput)
	be.Equal(t, sum.Assertions[0].Content, "42")
	be.Equal(t, sum.Assertions[0].Line, 17)

	folded := cases[1]
	be.Equal(t, folded.Name, "folded")
	be.True(t, folded.HasOption("fold"))
	be.Equal(t, folded.HasOption("wrap"), false)
	be.Equal(t, folded.Input, "")
	be.Equal(t, len(folded.Assertions), 2)
	be.Equal(t, folded.Assertions[0].Kind, FenceIR)
	be.Equal(t, folded.Assertions[0].Content, "0000  write 6")
}

func TestExtractUntitledFences(t *testing.T) {
	doc := "```\nplain code\n```\n\n## Test: one\n\n```yog\nvar begin end\n```\n\n```\nnot an assertion\n```\n\n```output\n```\n"

	cases, err := ExtractTestCases([]byte(doc))
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 1)
	be.Equal(t, cases[0].Assertions[0].Content, "")
}

func TestExtractErrors(t *testing.T) {
	cases := map[string]string{
		"```yog\nvar begin end\n```\n":                                          "outside of a test case",
		"## Test: a\n\n```yog\nvar begin end\n```\n":                           "no assertion fences",
		"## Test: a\n\n```output\n1\n```\n":                                     "no `yog` fence",
		"## Test: a\n\n```yog\nvar begin end\n```\n\n```yog\nvar begin end\n```\n": "multiple `yog` fences",
		"## Test: a\n\n```yog\nvar begin end\n```\n\n```python\npass\n```\n":     "unknown fence language `python`",
	}

	for doc, want := range cases {
		_, err := ExtractTestCases([]byte(doc))
		be.Err(t, err, want)
	}
}
