// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and styling.
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/widebit/ui512/internal/orchestration"
)

const (
	// TruncationLimit is the digit threshold from which a result is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the
	// beginning and end of a truncated number.
	DisplayEdges = 25
)

// Result is a computed operation ready for display. The value strings are
// already rendered in the requested output base.
type Result struct {
	// Op is the operation that was performed.
	Op string
	// Primary is the main result: product, quotient, sum or difference.
	Primary string
	// PrimaryLabel names the primary value for styled output.
	PrimaryLabel string
	// Secondary is the companion value: overflow, remainder, carry or
	// borrow. Empty when the operation has none to report.
	Secondary string
	// SecondaryLabel names the secondary value.
	SecondaryLabel string
	// Duration is the computation time.
	Duration time.Duration
}

// FormatExecutionDuration formats a duration for display. It shows
// microseconds for durations under a millisecond and milliseconds for
// durations under a second, which reads better for the short timings these
// operations produce.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatTruncated shortens a long digit string for terminal display,
// keeping DisplayEdges characters from each end. Strings at or below
// TruncationLimit are returned unchanged.
func FormatTruncated(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
}

// DisplayQuietResult outputs the bare result values on a single line,
// suitable for scripting.
func DisplayQuietResult(out io.Writer, r Result) {
	if r.Secondary != "" {
		fmt.Fprintln(out, r.Primary, r.Secondary)
		return
	}
	fmt.Fprintln(out, r.Primary)
}

// DisplayResult outputs a styled result with labels and timing.
func DisplayResult(out io.Writer, r Result, styles Styles) {
	fmt.Fprintf(out, "%s\n", styles.Title.Render(r.Op))
	fmt.Fprintf(out, "  %s %s\n", styles.Label.Render(r.PrimaryLabel+":"), styles.Value.Render(FormatTruncated(r.Primary)))
	if r.Secondary != "" {
		fmt.Fprintf(out, "  %s %s\n", styles.Label.Render(r.SecondaryLabel+":"), styles.Value.Render(FormatTruncated(r.Secondary)))
	}
	fmt.Fprintf(out, "  %s %s\n", styles.Label.Render("time:"), styles.Muted.Render(FormatExecutionDuration(r.Duration)))
}

// DisplayStatsTable outputs the per-backend timing summary of a
// cross-check run. Columns are padded manually so styled cells stay
// aligned.
func DisplayStatsTable(out io.Writer, stats []orchestration.BackendStats, styles Styles) {
	fmt.Fprintf(out, "\n%s\n", styles.Title.Render("--- Cross-Check Summary ---"))

	nameW, totalW := len("Backend"), len("Total")
	totals := make([]string, len(stats))
	for i, s := range stats {
		if len(s.Name) > nameW {
			nameW = len(s.Name)
		}
		totals[i] = FormatExecutionDuration(s.Total)
		if len(totals[i]) > totalW {
			totalW = len(totals[i])
		}
	}

	fmt.Fprintf(out, "%-*s   %-*s   %s\n", nameW, "Backend", totalW, "Total", "Rounds")
	for i, s := range stats {
		fmt.Fprintf(out, "%s%s   %s%s   %d\n",
			styles.Value.Render(s.Name), pad(nameW-len(s.Name)),
			styles.Muted.Render(totals[i]), pad(totalW-len(totals[i])),
			s.Rounds)
	}
}

// DisplaySelfTestOutcome reports the overall verdict of a cross-check run.
func DisplaySelfTestOutcome(out io.Writer, rounds int, err error, styles Styles) {
	if err != nil {
		fmt.Fprintf(out, "\n%s %v\n", styles.Error.Render("FAILED:"), err)
		return
	}
	fmt.Fprintf(out, "\n%s all backends agreed over %d rounds\n", styles.Success.Render("OK:"), rounds)
}

// pad returns n spaces.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}
