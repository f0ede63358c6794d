package reporting

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rust-lang/infra-smoke-tests/runner"
)

// Format selects how a run is reported.
type Format string

const (
	// FormatText prints the nested report only.
	FormatText Format = "text"
	// FormatTable prints the nested report followed by a summary table.
	FormatTable Format = "table"
)

// ParseFormat validates a user-supplied format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("invalid report format '%s'. Must be one of: %s, %s", s, FormatText, FormatTable)
	}
}

// Reporter writes run results to an output.
type Reporter struct {
	out    io.Writer
	format Format
}

func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Report writes the result in the configured format.
func (r *Reporter) Report(result *runner.RunnerResult) error {
	if _, err := io.WriteString(r.out, result.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if r.format == FormatTable {
		r.printResultsTable(result)
	}
	return nil
}

// printResultsTable prints one row per group with the test counts of the run.
func (r *Reporter) printResultsTable(result *runner.RunnerResult) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle(fmt.Sprintf("Smoke Test Results: %s (%s)", result.Environment, formatDuration(result.Duration)))

	t.AppendHeader(table.Row{
		"Suite", "Group", "Tests", "Passed", "Failed", "Status",
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Suite", AutoMerge: true},
		{Name: "Group", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Tests", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
	})

	for _, suite := range result.Suites {
		for i, group := range suite.Results {
			prefix := "├──"
			if i == len(suite.Results)-1 {
				prefix = "└──"
			}
			passed, failed := 0, 0
			for _, test := range group.Results {
				if test.Success {
					passed++
				} else {
					failed++
				}
			}
			t.AppendRow(table.Row{
				suite.Name,
				fmt.Sprintf("%s %s", prefix, group.Name),
				len(group.Results),
				passed,
				failed,
				getResultString(group.Success()),
			})
		}
		t.AppendSeparator()
	}

	t.AppendFooter(table.Row{
		"TOTAL",
		result.RunID,
		result.Stats.Total,
		result.Stats.Passed,
		result.Stats.Failed,
		getResultString(result.Success()),
	})

	t.Render()
}

func getResultString(success bool) string {
	if success {
		return "✓ pass"
	}
	return "✗ fail"
}

// Helper function to format duration to seconds with 1 decimal place
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
