package loc

// Severity mirrors the LSP DiagnosticSeverity values.
type Severity int

const (
	ErrorType       Severity = 1
	WarningType     Severity = 2
	InformationType Severity = 3
	HintType        Severity = 4
)

func (s Severity) String() string {
	switch s {
	case ErrorType:
		return "error"
	case WarningType:
		return "warning"
	case InformationType:
		return "information"
	case HintType:
		return "hint"
	}
	return "error"
}

// ErrorWithIndex is an error attached to one entry of a diagnostic batch.
type ErrorWithIndex struct {
	Index int
	Text  string
}

func (e *ErrorWithIndex) Error() string {
	return e.Text
}

func (e *ErrorWithIndex) ToMessage(location *MessageLocation) Message {
	return Message{
		Text:     e.Error(),
		Location: location,
	}
}
