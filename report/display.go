package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	fmt.Fprint(rep.out, ErrorStyleBG.Sprint(tag))
	fmt.Fprintln(rep.out, ErrorColorFG.Sprint(" "+err.Error()))
}

// PrintWarningMessage prints a warning message to the console.
func PrintWarningMessage(tag, msg string) {
	fmt.Fprint(rep.out, WarnStyleBG.Sprint(tag))
	fmt.Fprintln(rep.out, WarnColorFG.Sprint(" "+msg))
}

// PrintInfoMessage prints an informational message to the console.
func PrintInfoMessage(tag, msg string) {
	fmt.Fprint(rep.out, InfoStyleBG.Sprint(tag))
	fmt.Fprintln(rep.out, InfoColorFG.Sprint(" "+msg))
}

// -----------------------------------------------------------------------------

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	PrintErrorMessage("Fatal Error", errors.New(message))
}

// displayCompileErrors displays the banner for a file's compile errors
// followed by each error.  At the verbose log level, the erroneous source text
// is displayed below each error.
func displayCompileErrors(absPath, reprPath string, errs *ErrorList) {
	displayBanner("Compile Error", reprPath, ErrorStyleBG)

	lines := loadSourceLines(absPath)
	for i, err := range errs.Errors() {
		fmt.Fprintln(rep.out, ErrorColorFG.Sprint(FormatError(i+1, err)))

		if rep.logLevel == LogLevelVerbose {
			displaySourceText(lines, err.Pos())
		}
	}
}

// displayCompileWarning displays a single compile warning.
func displayCompileWarning(absPath, reprPath string, pos *TextPosition, message string) {
	displayBanner("Warning", reprPath, WarnStyleBG)
	fmt.Fprintln(rep.out, WarnColorFG.Sprintf("%s - %s", pos, message))

	if rep.logLevel == LogLevelVerbose {
		displaySourceText(loadSourceLines(absPath), pos)
	}
}

// displayBanner displays the banner on top of a group of compile messages.
func displayBanner(label, reprPath string, style *pterm.Style) {
	fmt.Fprint(rep.out, "\n-- ")
	fmt.Fprint(rep.out, style.Sprint(label))
	fmt.Fprint(rep.out, " ")

	fileName := filepath.Base(reprPath)
	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - len(label) - 1
	if dashCount < 3 {
		dashCount = 3
	}

	fmt.Fprint(rep.out, strings.Repeat("-", dashCount)+" ")
	fmt.Fprintln(rep.out, InfoColorFG.Sprint(fileName))
}

// loadSourceLines reads the lines of the source file for display.  If the
// file can't be read, no source text will be displayed.
func loadSourceLines(absPath string) []string {
	if absPath == "" {
		return nil
	}

	buff, err := os.ReadFile(absPath)
	if err != nil {
		return nil
	}

	return strings.Split(strings.ReplaceAll(string(buff), "\r\n", "\n"), "\n")
}

// displaySourceText displays the source line containing pos with the token at
// pos underlined by carets.
func displaySourceText(lines []string, pos *TextPosition) {
	if pos == nil || pos.Line < 1 || pos.Line > len(lines) {
		return
	}

	line := strings.ReplaceAll(lines[pos.Line-1], "\t", " ")
	lineNumFmtStr := "%-" + strconv.Itoa(len(strconv.Itoa(pos.Line))) + "v | "

	fmt.Fprint(rep.out, InfoColorFG.Sprintf(lineNumFmtStr, pos.Line))
	fmt.Fprintln(rep.out, line)

	fmt.Fprint(rep.out, strings.Repeat(" ", len(strconv.Itoa(pos.Line))), " | ")
	if pos.Col-1 <= len(line) {
		fmt.Fprint(rep.out, strings.Repeat(" ", pos.Col-1))
	}
	fmt.Fprintln(rep.out, ErrorColorFG.Sprint(strings.Repeat("^", tokenWidth(line, pos.Col-1))))
}

// tokenWidth estimates the width of the token starting at column col of line:
// the length of an alphanumeric run, or one character otherwise.
func tokenWidth(line string, col int) int {
	if col < 0 || col >= len(line) {
		return 1
	}

	isWordChar := func(c byte) bool {
		return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
	}

	if !isWordChar(line[col]) {
		return 1
	}

	n := 0
	for col+n < len(line) && isWordChar(line[col+n]) {
		n++
	}

	return n
}

// -----------------------------------------------------------------------------

const maxPhaseLength = len("Interpreting")

var phaseStartTime time.Time

// beginPhase displays the beginning of a phase.  The reporter's mutex must be
// held.
func (r *Reporter) beginPhase(phase string) {
	r.currentPhase = phase
	phaseStartTime = time.Now()

	if !r.animate {
		return
	}

	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	spinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	spinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	// The spinner is started on a copy which is the one we need to stop.
	if started, err := spinner.Start(phaseText); err == nil {
		r.phaseSpinner = started
	}
}

// endPhase displays the end of the current phase if there is one.  The
// reporter's mutex must be held.
func (r *Reporter) endPhase(success bool) {
	if r.currentPhase == "" {
		return
	}

	if r.phaseSpinner != nil {
		padding := strings.Repeat(" ", maxPhaseLength-len(r.currentPhase)+2)
		if success {
			r.phaseSpinner.Success(
				r.currentPhase+padding,
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			r.phaseSpinner.Fail(r.currentPhase + padding)
		}

		r.phaseSpinner = nil
	}

	r.currentPhase = ""
}

// displayCompilationFinished displays the concluding message of a run.
func displayCompilationFinished(success bool, errorCount, warningCount int) {
	fmt.Fprint(rep.out, "\n")

	if success {
		fmt.Fprint(rep.out, SuccessColorFG.Sprint("All done! "))
	} else {
		fmt.Fprint(rep.out, ErrorColorFG.Sprint("Oh no! "))
	}

	fmt.Fprint(rep.out, "(")

	switch errorCount {
	case 0:
		fmt.Fprint(rep.out, SuccessColorFG.Sprint(0), " errors, ")
	case 1:
		fmt.Fprint(rep.out, ErrorColorFG.Sprint(1), " error, ")
	default:
		fmt.Fprint(rep.out, ErrorColorFG.Sprint(errorCount), " errors, ")
	}

	switch warningCount {
	case 0:
		fmt.Fprint(rep.out, SuccessColorFG.Sprint(0), " warnings)\n")
	case 1:
		fmt.Fprint(rep.out, WarnColorFG.Sprint(1), " warning)\n")
	default:
		fmt.Fprint(rep.out, WarnColorFG.Sprint(warningCount), " warnings)\n")
	}
}
