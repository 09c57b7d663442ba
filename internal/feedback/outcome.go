package feedback

import (
	"github.com/muurk/profileform/internal/validation"
)

// Outcome is the result of one Submit call
type Outcome struct {
	Accepted bool                          // Both fields passed validation
	Ignored  bool                          // Submit arrived while another was running
	Name     string                        // Trimmed name
	AgeText  string                        // Trimmed age text
	Age      int                           // Parsed age (accepted only)
	Category validation.AgeCategory        // Age category (accepted only)
	Summary  string                        // Rendered result text (accepted only)
	Errors   []*validation.ValidationError // Failures in field order (rejected only)
}

// Err returns the first failure, or nil if the submission was accepted
func (o Outcome) Err() error {
	if len(o.Errors) == 0 {
		return nil
	}
	return o.Errors[0]
}

// FirstReason returns the user-facing message of the first failure
func (o Outcome) FirstReason() string {
	if len(o.Errors) == 0 {
		return ""
	}
	return o.Errors[0].Message
}

// CategoryLabel returns the category name for accepted outcomes and "" otherwise
func (o Outcome) CategoryLabel() string {
	if !o.Accepted {
		return ""
	}
	return o.Category.String()
}

// FailedFields lists the fields that were rejected, without duplicates
func (o Outcome) FailedFields() []validation.FieldKind {
	var fields []validation.FieldKind
	seen := make(map[validation.FieldKind]bool)
	for _, err := range o.Errors {
		if !seen[err.Field] {
			seen[err.Field] = true
			fields = append(fields, err.Field)
		}
	}
	return fields
}

// Report is the JSON-friendly form of an Outcome
type Report struct {
	Accepted bool          `json:"accepted"`
	Name     string        `json:"name"`
	Age      *int          `json:"age,omitempty"`
	Category string        `json:"category,omitempty"`
	Summary  string        `json:"summary,omitempty"`
	Errors   []ReportError `json:"errors,omitempty"`
}

// ReportError is one failure in a Report
type ReportError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Report converts the outcome for machine-readable output
func (o Outcome) Report() Report {
	r := Report{
		Accepted: o.Accepted,
		Name:     o.Name,
		Category: o.CategoryLabel(),
		Summary:  o.Summary,
	}
	if o.Accepted {
		age := o.Age
		r.Age = &age
	}
	for _, err := range o.Errors {
		r.Errors = append(r.Errors, ReportError{
			Field:   err.Field.String(),
			Kind:    err.Kind.String(),
			Message: err.Message,
		})
	}
	return r
}
