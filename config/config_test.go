package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"

	"yog/common"
	"yog/report"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, common.ConfigFileName)
	be.Err(t, os.WriteFile(path, []byte(content), 0644), nil)
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[profile]
name = "strict"
log-level = "warn"
prompt = true
fold-constants = true
literal-overflow = "wrap"
max-steps = 1000
`)

	prof, err := Load(path)
	be.Err(t, err, nil)
	be.Equal(t, prof.Name, "strict")
	be.Equal(t, prof.LogLevel, report.LogLevelWarn)
	be.True(t, prof.Prompt)
	be.True(t, prof.FoldConstants)
	be.True(t, prof.WrapLiterals)
	be.Equal(t, prof.MaxSteps, 1000)
	be.Equal(t, prof.Root, dir)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[profile]\n")

	prof, err := Load(path)
	be.Err(t, err, nil)
	be.Equal(t, prof.Name, "default")
	be.Equal(t, prof.LogLevel, report.LogLevelVerbose)
	be.Equal(t, prof.WrapLiterals, false)
	be.Equal(t, prof.MaxSteps, 0)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"[profile]\nlog-level = \"loud\"\n":       "unknown log level",
		"[profile]\nliteral-overflow = \"saturate\"": "literal-overflow",
		"[profile]\nmax-steps = -1":                "max-steps",
		"name = \"x\"":                             "missing [profile]",
		"[profile\n":                               common.ConfigFileName,
	}

	for content, want := range cases {
		path := writeConfig(t, t.TempDir(), content)
		_, err := Load(path)
		be.Err(t, err, want)
	}
}

func TestLoadVersionMismatch(t *testing.T) {
	report.InitReporterTo(report.LogLevelSilent, os.Stdout)
	defer report.InitReporterTo(report.LogLevelVerbose, os.Stdout)

	path := writeConfig(t, t.TempDir(), "[profile]\nyog-version = \"0.0.1\"\n")
	_, err := Load(path)
	be.Err(t, err, nil)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	be.Err(t, os.MkdirAll(nested, 0755), nil)

	// files without a profile are ignored
	writeConfig(t, filepath.Join(root, "a"), "title = \"not a profile\"\n")
	path := writeConfig(t, root, "[profile]\nname = \"outer\"\n")

	found, ok := Find(nested)
	be.True(t, ok)
	be.Equal(t, found, path)

	prof, err := LoadFor(filepath.Join(nested, "main.yog"))
	be.Err(t, err, nil)
	be.Equal(t, prof.Name, "outer")
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	path, err := Init(dir)
	be.Err(t, err, nil)

	prof, err := Load(path)
	be.Err(t, err, nil)
	be.Equal(t, prof.Name, "default")
	be.Equal(t, prof.LogLevel, report.LogLevelVerbose)
	be.Equal(t, prof.WrapLiterals, false)

	_, err = Init(dir)
	be.Err(t, err, "already exists")
}
