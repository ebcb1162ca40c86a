package handler

import (
	"errors"

	"github.com/diagfmt/compiler/internal/loc"
)

type Handler struct {
	filename string
	errors   []error
	warnings []error
}

func NewHandler(filename string) *Handler {
	return &Handler{
		filename: filename,
		errors:   make([]error, 0),
		warnings: make([]error, 0),
	}
}

func (h *Handler) HasErrors() bool {
	return len(h.errors) > 0
}

func (h *Handler) HasWarnings() bool {
	return len(h.warnings) > 0
}

func (h *Handler) AppendError(err error) {
	h.errors = append(h.errors, err)
}

func (h *Handler) AppendWarning(err error) {
	h.warnings = append(h.warnings, err)
}

func (h *Handler) Errors() []loc.Message {
	msgs := make([]loc.Message, 0)
	for _, err := range h.errors {
		if err != nil {
			msgs = append(msgs, ErrorToMessage(h, loc.ErrorType, err))
		}
	}
	return msgs
}

func (h *Handler) Warnings() []loc.Message {
	msgs := make([]loc.Message, 0)
	for _, err := range h.warnings {
		if err != nil {
			msgs = append(msgs, ErrorToMessage(h, loc.WarningType, err))
		}
	}
	return msgs
}

// Diagnostics returns errors first, then warnings.
func (h *Handler) Diagnostics() []loc.Message {
	return append(h.Errors(), h.Warnings()...)
}

func ErrorToMessage(h *Handler, severity loc.Severity, err error) loc.Message {
	var indexedError *loc.ErrorWithIndex
	switch {
	case errors.As(err, &indexedError):
		location := &loc.MessageLocation{
			File:  h.filename,
			Index: indexedError.Index,
		}
		message := indexedError.ToMessage(location)
		message.Severity = int(severity)
		return message
	default:
		return loc.Message{Text: err.Error(), Severity: int(severity)}
	}
}
