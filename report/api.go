package report

import (
	"fmt"
	"os"
)

// ShouldProceed indicates whether or not there have been any errors that
// should cause compilation to stop at the current phase.
func ShouldProceed() bool {
	return rep.errorCount == 0
}

// -----------------------------------------------------------------------------
// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions will simply fail silently if below their
// appropriate log level.

// ReportCompileErrors reports every error in an error list.  The absPath is
// the absolute path to the erroneous source file and is used to display the
// erroneous source text.  The reprPath is the path displayed to the user.
func ReportCompileErrors(absPath, reprPath string, errs *ErrorList) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount += errs.Len()

	if rep.logLevel > LogLevelSilent && !errs.Empty() {
		rep.endPhase(false)
		displayCompileErrors(absPath, reprPath, errs)
	}
}

// ReportCompileWarning reports a compilation warning at the given position.
func ReportCompileWarning(absPath, reprPath string, pos *TextPosition, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel >= LogLevelWarn {
		displayCompileWarning(absPath, reprPath, pos, fmt.Sprintf(message, args...))
	}
}

// ReportWarning reports a warning that is not tied to a source position.
func ReportWarning(tag, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel >= LogLevelWarn {
		PrintWarningMessage(tag, fmt.Sprintf(message, args...))
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(tag string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		rep.endPhase(false)
		PrintErrorMessage(tag, err)
	}
}

// ReportRuntimeError reports an error that halted the interpreter.
func ReportRuntimeError(err error) {
	ReportStdError("Runtime Error", err)
}

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that result from an invalid invocation: missing files, broken
// configuration, etc.
func ReportFatal(message string, args ...interface{}) {
	ReportFatalWithCode(1, message, args...)
}

// ReportFatalWithCode reports a fatal error and exits with the given code.
func ReportFatalWithCode(code int, message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		rep.endPhase(false)
		displayFatal(fmt.Sprintf(message, args...))
		rep.m.Unlock()
	}

	os.Exit(code)
}

// -----------------------------------------------------------------------------
// Below are the "aesthetic" reporting functions that only run if the log level
// is verbose.

// ReportBeginPhase reports the beginning of a phase of compilation.  Any phase
// which is still running is ended successfully.
func ReportBeginPhase(phase string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		rep.endPhase(true)
		rep.beginPhase(phase)
	}
}

// ReportEndPhase reports the end of the current phase.  Whether it succeeded
// is determined by the number of errors reported so far.
func ReportEndPhase() {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.endPhase(ShouldProceed())
}

// ReportCompilationFinished reports the concluding message of a run.
func ReportCompilationFinished() {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.endPhase(ShouldProceed())

	if rep.logLevel == LogLevelVerbose {
		displayCompilationFinished(ShouldProceed(), rep.errorCount, rep.warningCount)
	}
}

// ReportInfo displays an informational message at the verbose log level.
func ReportInfo(tag, message string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		PrintInfoMessage(tag, fmt.Sprintf(message, args...))
	}
}
