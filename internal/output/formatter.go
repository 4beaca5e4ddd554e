package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/envchk/envchk/internal/checker"
	"github.com/envchk/envchk/internal/config"
)

// Per-status styles. fatih/color drops the escape sequences on its own
// when color.NoColor is set.
var (
	styleOK       = color.New(color.FgGreen)
	styleMissing  = color.New(color.FgRed, color.Bold)
	styleEmpty    = color.New(color.FgYellow)
	styleOptional = color.New(color.FgCyan)
	styleDim      = color.New(color.FgHiBlack)
	styleBold     = color.New(color.Bold)
)

func init() {
	// On Windows the console first has to be switched to virtual
	// terminal processing (handled in formatter_windows.go) before the
	// styles above render; when that fails, or stdout is not a
	// terminal, drop colors entirely.
	if !term.IsTerminal(int(os.Stdout.Fd())) || !enableANSI() {
		color.NoColor = true
	}
}

// DisableColor turns colored output off for the rest of the process.
func DisableColor() {
	color.NoColor = true
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	OK          bool            `json:"ok"`
	EnvFile     string          `json:"env_file"`
	ExampleFile string          `json:"example_file"`
	Missing     []string        `json:"missing"`
	Empty       []string        `json:"empty"`
	Extra       []string        `json:"extra"`
	Summary     checker.Summary `json:"summary"`
	Variables   []checker.Row   `json:"variables"`
}

// Format renders the report to w in the requested format. In quiet mode
// nothing is written; the exit code alone carries the verdict.
func Format(w io.Writer, rep checker.Report, jsonOutput bool, quiet bool, warnEmpty bool, noHeader bool) error {
	if quiet {
		return nil
	}

	if jsonOutput {
		return formatJSON(w, rep)
	}

	return formatTable(w, rep, warnEmpty, noHeader)
}

// formatJSON outputs the report as an indented JSON document
func formatJSON(w io.Writer, rep checker.Report) error {
	doc := JSONOutput{
		OK:          rep.OK(),
		EnvFile:     rep.EnvPath,
		ExampleFile: rep.ExamplePath,
		Missing:     rep.Names(checker.StatusMissing),
		Empty:       rep.Names(checker.StatusEmpty),
		Extra:       rep.Names(checker.StatusExtra),
		Summary:     rep.Summary,
		Variables:   rep.Rows,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// formatTable outputs the report as an aligned three-column table
func formatTable(w io.Writer, rep checker.Report, warnEmpty bool, noHeader bool) error {
	nameW := len("VARIABLE")
	statusW := len("STATUS")
	for _, row := range rep.Rows {
		if n := len(row.Name); n > nameW {
			nameW = n
		}
		if n := len(statusLabel(row.Status)); n > statusW {
			statusW = n
		}
	}
	budget := defaultColumnBudget(nameW, statusW)

	if !noHeader {
		if rep.EnvPath != "" && rep.ExamplePath != "" {
			fmt.Fprintln(w, styleDim.Sprintf("Checking %s against %s", rep.EnvPath, rep.ExamplePath))
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, styleBold.Sprintf("%-*s  %-*s  %s", nameW, "VARIABLE", statusW, "STATUS", "DEFAULT"))
	}

	for _, row := range rep.Rows {
		label := statusLabel(row.Status)
		pad := strings.Repeat(" ", statusW-len(label))

		cell := ""
		if row.Default != "" {
			cell = styleDim.Sprint(truncate(row.Default, budget))
		}

		line := fmt.Sprintf("%-*s  %s%s  %s", nameW, row.Name,
			statusStyle(row.Status, warnEmpty).Sprint(label), pad, cell)
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	fmt.Fprintln(w)

	if rep.Summary.IgnoredMissing > 0 {
		fmt.Fprintln(w, styleDim.Sprintf("Note: %d missing variable(s) were ignored (configured in %s)",
			rep.Summary.IgnoredMissing, config.FileName))
	}
	if rep.Summary.IgnoredExtra > 0 {
		fmt.Fprintln(w, styleDim.Sprintf("Note: %d extra variable(s) were ignored (configured in %s)",
			rep.Summary.IgnoredExtra, config.FileName))
	}

	switch {
	case rep.Summary.Missing > 0:
		fmt.Fprintln(w, styleMissing.Sprintf("✗ %d missing variable(s) out of %d required",
			rep.Summary.Missing, rep.Summary.Required))
	case warnEmpty && rep.Summary.Empty > 0:
		fmt.Fprintln(w, styleEmpty.Sprintf("%d empty variable(s) (set but blank) out of %d required",
			rep.Summary.Empty, rep.Summary.Required))
	default:
		fmt.Fprintln(w, styleOK.Sprintf("✓ All %d variables present.", rep.Summary.Required))
	}

	return nil
}

// statusLabel returns the display form of a status. Missing shouts.
func statusLabel(s checker.Status) string {
	if s == checker.StatusMissing {
		return "MISSING"
	}
	return string(s)
}

// statusStyle picks the style for a status cell. Empty drops to dim
// when empty warnings are off.
func statusStyle(s checker.Status, warnEmpty bool) *color.Color {
	switch s {
	case checker.StatusOK:
		return styleOK
	case checker.StatusMissing:
		return styleMissing
	case checker.StatusEmpty:
		if warnEmpty {
			return styleEmpty
		}
		return styleDim
	case checker.StatusOptional:
		return styleOptional
	default:
		return styleDim
	}
}

// defaultColumnBudget returns how many characters the DEFAULT column
// may use. On a terminal the table fits the window; elsewhere a fixed
// 80-column layout applies.
func defaultColumnBudget(nameW, statusW int) int {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	budget := width - nameW - statusW - 4
	if budget < 16 {
		budget = 16
	}
	return budget
}

// truncate shortens long default values
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// HasIssues returns true if the report warrants a nonzero exit.
// Empty and extra variables are warnings; ignored names never count.
func HasIssues(rep checker.Report) bool {
	return rep.Summary.Missing > 0
}
