// Package cmd implements the `yog` command line application.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/mattn/go-isatty"

	"yog/common"
	"yog/config"
	"yog/interp"
	"yog/report"
)

// Enumeration of the exit codes of the application.
const (
	ExitOK        = 0 // The command succeeded.
	ExitFatal     = 1 // Invalid usage, invalid configuration or another fatal error.
	ExitNoSource  = 2 // The source file could not be opened.
	ExitErrorsRun = 3 // Compile errors were recorded or the program failed at runtime.
)

// Execute runs the main `yog` application and exits with its exit code.
func Execute() {
	os.Exit(execute(os.Args))
}

// execute parses the command line and runs the selected subcommand.  It returns
// the exit code of the application.
func execute(args []string) int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("yog", "yog compiles and runs yog programs", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, report.LogLevelNames)

	runCmd := cli.AddSubcommand("run", "compile and run a program", true)
	runCmd.AddPrimaryArg("file", "the path to the source file", true)
	runCmd.AddFlag("prompt", "p", "prompt for the value of each variable read")
	runCmd.AddFlag("fold", "f", "fold constant expressions")

	checkCmd := cli.AddSubcommand("check", "compile a program and report its errors", true)
	checkCmd.AddPrimaryArg("file", "the path to the source file", true)
	checkCmd.AddFlag("fold", "f", "fold constant expressions")

	dumpCmd := cli.AddSubcommand("dump", "display the stages of compilation of a program", true)
	dumpCmd.AddPrimaryArg("file", "the path to the source file", true)
	dumpCmd.AddFlag("source", "src", "display the highlighted source text")
	dumpCmd.AddFlag("tokens", "tok", "display the tokens of the source")
	dumpCmd.AddFlag("ast", "a", "display the abstract syntax tree")
	dumpCmd.AddFlag("ir", "i", "display the three-address code (default)")
	dumpCmd.AddFlag("symbols", "sym", "display the symbol table")
	dumpCmd.AddFlag("fold", "f", "fold constant expressions")

	initCmd := cli.AddSubcommand("init", "create a yog.toml profile", true)
	initCmd.AddPrimaryArg("dir", "the directory to create the profile in", false)

	cli.AddSubcommand("version", "print the yog version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		return ExitFatal
	}

	logLevel := ""
	if lvl, ok := result.Arguments["loglevel"]; ok {
		logLevel = lvl.(string)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "run":
		return execRunCommand(subResult, logLevel)
	case "check":
		return execCheckCommand(subResult, logLevel)
	case "dump":
		return execDumpCommand(subResult, logLevel)
	case "init":
		return execInitCommand(subResult)
	case "version":
		report.PrintInfoMessage("Yog Version", common.YogVersion)
	}

	return ExitOK
}

// execRunCommand executes the run subcommand.
func execRunCommand(result *olive.ArgParseResult, logLevel string) int {
	c := loadCompiler(result, logLevel)

	if !c.Compile() {
		report.ReportCompilationFinished()
		return ExitErrorsRun
	}

	in, closeInput, err := openInput()
	if err != nil {
		report.ReportFatal("failed to open standard input: %s", err)
	}
	defer closeInput()

	if err := c.Run(in, os.Stdout); err != nil {
		return ExitErrorsRun
	}

	return ExitOK
}

// execCheckCommand executes the check subcommand.
func execCheckCommand(result *olive.ArgParseResult, logLevel string) int {
	c := loadCompiler(result, logLevel)

	ok := c.Compile()
	report.ReportCompilationFinished()

	if !ok {
		return ExitErrorsRun
	}

	return ExitOK
}

// execDumpCommand executes the dump subcommand.  The selected sections are
// displayed even if the source has errors.
func execDumpCommand(result *olive.ArgParseResult, logLevel string) int {
	c := loadCompiler(result, logLevel)

	ok := c.Compile()

	sections := 0
	for _, flag := range dumpFlagNames {
		if result.HasFlag(flag.name) {
			sections |= flag.section
		}
	}

	if sections == 0 {
		sections = DumpIR
	}

	if err := c.Dump(os.Stdout, sections, isatty.IsTerminal(os.Stdout.Fd())); err != nil {
		report.ReportStdError("Dump Error", err)
		return ExitFatal
	}

	if !ok {
		return ExitErrorsRun
	}

	return ExitOK
}

// execInitCommand executes the init subcommand.
func execInitCommand(result *olive.ArgParseResult) int {
	dir, ok := result.PrimaryArg()
	if !ok {
		dir = "."
	}

	path, err := config.Init(dir)
	if err != nil {
		report.PrintErrorMessage("Init Error", err)
		return ExitFatal
	}

	report.PrintInfoMessage("Created", path)
	return ExitOK
}

// -----------------------------------------------------------------------------

// loadCompiler loads the profile of the source file named on the command line,
// applies the command line overrides, initializes the reporter and creates the
// compiler.  An invalid profile or an unreadable source file is fatal.
func loadCompiler(result *olive.ArgParseResult, logLevel string) *Compiler {
	path, _ := result.PrimaryArg()

	profile, err := config.LoadFor(path)
	if err != nil {
		report.ReportFatal("failed to load profile: %s", err)
	}

	if logLevel != "" {
		profile.LogLevel = report.ParseLogLevel(logLevel)
	}

	if result.HasFlag("prompt") {
		profile.Prompt = true
	}

	if result.HasFlag("fold") {
		profile.FoldConstants = true
	}

	animate := isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
	report.InitReporter(profile.LogLevel, animate)

	if profile.Root != "" {
		report.ReportInfo("Profile", "using `%s` from %s", profile.Name, profile.Root)
	}

	if filepath.Ext(path) != common.SrcFileExtension {
		report.ReportWarning("File", "source file `%s` does not have the `%s` extension", path, common.SrcFileExtension)
	}

	c, err := NewCompiler(path, profile)
	if err != nil {
		report.ReportFatalWithCode(ExitNoSource, "%s", err)
	}

	return c
}

// openInput opens the source of the values read by the program: the terminal
// with line editing if standard in is one, standard in itself otherwise.
func openInput() (interp.Input, func() error, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		ti, err := interp.NewTerminalInput()
		if err != nil {
			return nil, nil, err
		}

		return ti, ti.Close, nil
	}

	return interp.NewLineInput(os.Stdin, os.Stdout), func() error { return nil }, nil
}

