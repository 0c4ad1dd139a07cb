package wh40k

// Severity ranks a validation finding
type Severity string

// Severities, most severe first
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank orders severities; lower ranks sort first
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// ValidationResult is one finding about an army list. UnitInstanceID is set
// when the finding is about a single unit.
type ValidationResult struct {
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	UnitInstanceID string   `json:"unitInstanceId,omitempty"`
}
