package entities

// AnalysisPolicy holds the flags that steer candidate generation and
// report filtering for one run.
type AnalysisPolicy struct {
	IgnorePrivateSymbols bool
	CheckExamples        bool
	CheckInlineComments  bool
	SeverityThreshold    Severity
}
