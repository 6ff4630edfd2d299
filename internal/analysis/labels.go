package analysis

import (
	"fmt"
	"strings"
)

// HealthLabel is the qualitative reading of a health score.
type HealthLabel int

const (
	NeedsAttention HealthLabel = iota
	Good
	Excellent
)

// HealthLabelFor maps a 0-100 score onto its label.
// Scores >= 80 are Excellent, 60-79 Good, anything lower NeedsAttention.
func HealthLabelFor(score int) HealthLabel {
	switch {
	case score >= 80:
		return Excellent
	case score >= 60:
		return Good
	default:
		return NeedsAttention
	}
}

// MessageKey is the locale key used to display the label.
func (l HealthLabel) MessageKey() string {
	switch l {
	case Excellent:
		return "analysis.excellent"
	case Good:
		return "analysis.good"
	case NeedsAttention:
		return "analysis.needsAttention"
	}
	panic(fmt.Sprintf("analysis: unknown health label %d", int(l)))
}

// Tag is the presentation tag for the score colour.
func (l HealthLabel) Tag() string {
	switch l {
	case Excellent:
		return "success"
	case Good:
		return "warning"
	case NeedsAttention:
		return "destructive"
	}
	panic(fmt.Sprintf("analysis: unknown health label %d", int(l)))
}

func (l HealthLabel) String() string {
	switch l {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case NeedsAttention:
		return "needs attention"
	}
	return fmt.Sprintf("HealthLabel(%d)", int(l))
}

// RiskCategory is the badge bucket for a risk level string.
type RiskCategory int

const (
	Unclassified RiskCategory = iota
	Mild
	Moderate
	Severe
)

// Classify buckets a server-reported risk level, ignoring case and
// surrounding space. Unknown levels are Unclassified.
func Classify(riskLevel string) RiskCategory {
	switch strings.ToLower(strings.TrimSpace(riskLevel)) {
	case "high", "critical":
		return Severe
	case "medium", "moderate":
		return Moderate
	case "low", "minimal":
		return Mild
	default:
		return Unclassified
	}
}

// Tag is the presentation tag for the risk badge.
func (c RiskCategory) Tag() string {
	switch c {
	case Severe:
		return "destructive"
	case Moderate:
		return "warning"
	case Mild:
		return "success"
	case Unclassified:
		return "secondary"
	}
	panic(fmt.Sprintf("analysis: unknown risk category %d", int(c)))
}

func (c RiskCategory) String() string {
	switch c {
	case Severe:
		return "severe"
	case Moderate:
		return "moderate"
	case Mild:
		return "mild"
	case Unclassified:
		return "unclassified"
	}
	return fmt.Sprintf("RiskCategory(%d)", int(c))
}
