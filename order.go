package smoke

import (
	"cmp"
	"slices"
	"strings"
)

// Results are ordered by name, then by success with failures first, then by their content.
// The order only depends on the results themselves, never on when they completed, so that
// two runs over the same outcomes render identical reports.

// CompareTestResult returns -1, 0 or +1 depending on whether a sorts before, equal to or after b.
func CompareTestResult(a, b TestResult) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := compareSuccess(a.Success, b.Success); c != 0 {
		return c
	}
	return strings.Compare(a.Message, b.Message)
}

// CompareGroupResult orders groups by name, success and then by their sorted test results.
func CompareGroupResult(a, b TestGroupResult) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := compareSuccess(a.Success(), b.Success()); c != 0 {
		return c
	}
	return compareSorted(a.Sorted().Results, b.Sorted().Results, CompareTestResult)
}

// CompareSuiteResult orders suites by name, success and then by their sorted group results.
func CompareSuiteResult(a, b TestSuiteResult) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := compareSuccess(a.Success(), b.Success()); c != 0 {
		return c
	}
	return compareSorted(a.Sorted().Results, b.Sorted().Results, CompareGroupResult)
}

// SortTestResults sorts results in place.
func SortTestResults(results []TestResult) {
	slices.SortStableFunc(results, CompareTestResult)
}

// SortGroupResults sorts results in place.
func SortGroupResults(results []TestGroupResult) {
	slices.SortStableFunc(results, CompareGroupResult)
}

// SortSuiteResults sorts results in place.
func SortSuiteResults(results []TestSuiteResult) {
	slices.SortStableFunc(results, CompareSuiteResult)
}

// compareSuccess puts failures before successes.
func compareSuccess(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// compareSorted compares two already sorted slices element by element, then by length.
func compareSorted[T any](a, b []T, compare func(T, T) int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
