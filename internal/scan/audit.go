package scan

import (
	"strconv"
)

// AuditReport lists numbering irregularities. It is diagnostic only and never
// feeds back into the span sequence.
type AuditReport struct {
	// Missing holds integers in the audited range absent from the numbers.
	Missing []int
	// Duplicates holds numbers seen more than once, in first-repeat order.
	Duplicates []string
	// NonNumeric holds numbers that are not plain decimal integers.
	NonNumeric []string
}

// Clean reports whether the audit found nothing.
func (r AuditReport) Clean() bool {
	return len(r.Missing) == 0 && len(r.Duplicates) == 0 && len(r.NonNumeric) == 0
}

// Audit checks numbers against the inclusive range [from, to].
func Audit(numbers []string, from, to int) AuditReport {
	var report AuditReport
	seen := make(map[string]int, len(numbers))
	present := make(map[int]bool, len(numbers))

	for _, n := range numbers {
		seen[n]++
		if seen[n] == 2 {
			report.Duplicates = append(report.Duplicates, n)
		}
		v, err := strconv.Atoi(n)
		if err != nil {
			if seen[n] == 1 {
				report.NonNumeric = append(report.NonNumeric, n)
			}
			continue
		}
		present[v] = true
	}

	for i := from; i <= to; i++ {
		if !present[i] {
			report.Missing = append(report.Missing, i)
		}
	}
	return report
}
