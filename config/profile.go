// Package config loads the `yog.toml` profile which configures how programs
// are compiled and run.
package config

import "yog/report"

// Profile is the set of options a program is compiled and run with.
type Profile struct {
	Name string

	// LogLevel must be one of the log levels enumerated in package report.
	LogLevel int

	// Prompt makes every `read` ask for the value of its variable.
	Prompt bool

	// FoldConstants makes literal-only expressions lower to a single literal.
	FoldConstants bool

	// WrapLiterals makes integer literals that don't fit in 64 bits wrap
	// instead of being reported as invalid tokens.
	WrapLiterals bool

	// MaxSteps is the maximum number of instructions a program may execute.
	// Zero means unlimited.
	MaxSteps int

	// Root is the directory containing the profile's file.  It is empty for
	// the default profile.
	Root string
}

// Default returns the profile used when no configuration file is found.
func Default() *Profile {
	return &Profile{
		Name:     "default",
		LogLevel: report.LogLevelVerbose,
	}
}
