package smoke

import (
	"fmt"
	"strings"

	"github.com/acarl005/stripansi"
)

const (
	MarkerPass = "✅"
	MarkerFail = "❌"

	// indent is prepended to every line of a nested result.
	indent = "  "
)

// TestResult is the outcome of a single check.
type TestResult struct {
	Name    string
	Success bool
	// Message is empty when the check passed cleanly.
	Message string
}

// NewTestResult creates a result. An empty message means no message.
func NewTestResult(name string, success bool, message string) TestResult {
	return TestResult{
		Name:    name,
		Success: success,
		Message: stripansi.Strip(message),
	}
}

// Pass creates a successful result without a message.
func Pass(name string) TestResult {
	return TestResult{Name: name, Success: true}
}

// Fail creates a failed result carrying the given diagnostic message.
func Fail(name string, message string) TestResult {
	return NewTestResult(name, false, message)
}

// HasMessage reports whether the result carries a diagnostic message.
func (r TestResult) HasMessage() bool {
	return r.Message != ""
}

// String renders the result as a single line without a trailing newline.
func (r TestResult) String() string {
	line := fmt.Sprintf("%s %s", marker(r.Success), r.Name)
	if r.HasMessage() {
		line += " " + r.Message
	}
	return line
}

// TestGroupResult is the outcome of a group of tests.
type TestGroupResult struct {
	Name    string
	Results []TestResult
}

// Success is true if every test in the group succeeded. An empty group is successful.
func (g TestGroupResult) Success() bool {
	for _, result := range g.Results {
		if !result.Success {
			return false
		}
	}
	return true
}

// Sorted returns a copy of the group with its results in deterministic order.
func (g TestGroupResult) Sorted() TestGroupResult {
	results := make([]TestResult, len(g.Results))
	copy(results, g.Results)
	SortTestResults(results)
	return TestGroupResult{Name: g.Name, Results: results}
}

// String renders the group and its sorted results, one newline-terminated line each.
func (g TestGroupResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", marker(g.Success()), g.Name)
	for _, result := range g.Sorted().Results {
		sb.WriteString(indent)
		sb.WriteString(result.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// TestSuiteResult is the outcome of a suite of test groups.
type TestSuiteResult struct {
	Name    string
	Results []TestGroupResult
}

// Success is true if every group in the suite succeeded. An empty suite is successful.
func (s TestSuiteResult) Success() bool {
	for _, result := range s.Results {
		if !result.Success() {
			return false
		}
	}
	return true
}

// Sorted returns a copy of the suite with its groups, and the tests within them, in
// deterministic order.
func (s TestSuiteResult) Sorted() TestSuiteResult {
	results := make([]TestGroupResult, len(s.Results))
	for i, group := range s.Results {
		results[i] = group.Sorted()
	}
	SortGroupResults(results)
	return TestSuiteResult{Name: s.Name, Results: results}
}

// Stats counts the tests in the suite.
func (s TestSuiteResult) Stats() Stats {
	var stats Stats
	for _, group := range s.Results {
		for _, result := range group.Results {
			stats.Add(result)
		}
	}
	return stats
}

// String renders the suite with every nested level indented by two more spaces.
func (s TestSuiteResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", marker(s.Success()), s.Name)
	for _, group := range s.Sorted().Results {
		sb.WriteString(indentLines(group.String()))
	}
	return sb.String()
}

// Stats holds test counts.
type Stats struct {
	Total  int
	Passed int
	Failed int
}

// Add counts a single test result.
func (s *Stats) Add(result TestResult) {
	s.Total++
	if result.Success {
		s.Passed++
	} else {
		s.Failed++
	}
}

// Merge adds the counts of other to s.
func (s *Stats) Merge(other Stats) {
	s.Total += other.Total
	s.Passed += other.Passed
	s.Failed += other.Failed
}

func marker(success bool) string {
	if success {
		return MarkerPass
	}
	return MarkerFail
}

// indentLines indents every non-empty line of s, keeping the newlines.
func indentLines(s string) string {
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if line == "" || line == "\n" {
			sb.WriteString(line)
			continue
		}
		sb.WriteString(indent)
		sb.WriteString(line)
	}
	return sb.String()
}
