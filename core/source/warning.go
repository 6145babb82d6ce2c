package source

import "fmt"

// Warning describes a single malformed record that was skipped during
// parsing. Line is zero when the record has no meaningful line number
// (e.g. an XML element).
type Warning struct {
	// File is the source file the record came from.
	File string `json:"file"`

	// Line is the 1-based line number within File, or 0 if not applicable.
	Line int `json:"line,omitempty"`

	// Message describes what was wrong with the record.
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.File, w.Message)
}

// Warnf builds a Warning with a formatted message.
func Warnf(file string, line int, format string, args ...any) Warning {
	return Warning{File: file, Line: line, Message: fmt.Sprintf(format, args...)}
}
