package report

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during compilation and execution.  The reporter
// respects the set log level and is synchronized: its methods can be safely
// called from multiple goroutines.
type Reporter struct {
	// The mutex used to synchonize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The writer all messages are displayed to.
	out io.Writer

	// Whether the phase spinner should be animated.
	animate bool

	errorCount, warningCount int

	// The spinner of the phase currently being run, if any.
	phaseSpinner *pterm.SpinnerPrinter
	currentPhase string
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// LogLevelNames lists the accepted names of the log levels ordered by level.
var LogLevelNames = []string{"silent", "error", "warn", "verbose"}

// ParseLogLevel converts a log level name into its enumerated value.  Unknown
// names default to verbose.
func ParseLogLevel(name string) int {
	for i, lname := range LogLevelNames {
		if strings.EqualFold(name, lname) {
			return i
		}
	}

	return LogLevelVerbose
}

// rep is the global reporter instance.  Messages go to standard error so that
// standard out only carries the output of the program being run.
var rep = newReporter(LogLevelVerbose, os.Stderr)

func newReporter(logLevel int, out io.Writer) *Reporter {
	return &Reporter{
		m:        &sync.Mutex{},
		logLevel: logLevel,
		out:      out,
	}
}

// InitReporter initializes the global reporter to the given log level.  All
// messages are written to standard error.  Phase spinners are only animated if
// animate is set: it should only be set when the output is a terminal.
func InitReporter(logLevel int, animate bool) {
	rep = newReporter(logLevel, os.Stderr)
	rep.animate = animate
}

// InitReporterTo initializes the global reporter to write to the given writer.
// Spinners are never animated.
func InitReporterTo(logLevel int, out io.Writer) {
	rep = newReporter(logLevel, out)
}
