package diag

// Severity defines the importance of a diagnostic. Порядок значим: больше значит важнее.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// AtLeast reports whether s is as important as floor or more.
func (s Severity) AtLeast(floor Severity) bool { return s >= floor }
