package entities

import (
	"fmt"
	"strings"
)

// Severity is the importance level of a drift issue, ordered
// low < medium < critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityCritical Severity = "critical"
)

// severityRank holds the position of each severity in the ordering.
// Unknown severities rank below every valid one.
var severityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityCritical: 3,
}

// ParseSeverity normalizes and validates a severity string.
func ParseSeverity(value string) (Severity, error) {
	normalized := Severity(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := severityRank[normalized]; !ok {
		return "", fmt.Errorf("unknown severity: %q", value)
	}
	return normalized, nil
}

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	_, ok := severityRank[s]
	return ok
}

// AtLeast returns true when the severity is at or above the given threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return severityRank[s] >= severityRank[threshold]
}
