package lint

// Severity defines the importance of a lint issue.
type Severity uint8

const (
	// SevInfo is for informational issues.
	SevInfo Severity = iota
	// SevWarning is for issues that render fine but should be cleaned up.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseSeverity maps a config string to a severity. The second result is
// false for unknown values.
func ParseSeverity(value string) (Severity, bool) {
	switch value {
	case "info":
		return SevInfo, true
	case "warning", "warn":
		return SevWarning, true
	case "error":
		return SevError, true
	}
	return SevInfo, false
}
