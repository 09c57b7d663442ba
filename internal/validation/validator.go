package validation

import (
	"fmt"
	"regexp"
	"strconv"
)

// FieldKind identifies one of the two form inputs
type FieldKind int

const (
	FieldName FieldKind = iota
	FieldAge
)

// String returns the field's display name
func (f FieldKind) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldAge:
		return "age"
	default:
		return fmt.Sprintf("FieldKind(%d)", f)
	}
}

// Fields lists every form field in display order
var Fields = []FieldKind{FieldName, FieldAge}

// Limits
const (
	MinNameLength = 2
	MinAge        = 0
	MaxAge        = 120
)

var namePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// Status is the outcome of validating a single field
type Status int

const (
	StatusEmpty Status = iota
	StatusValid
	StatusInvalid
)

// String returns a human-readable name for the status
func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "Empty"
	case StatusValid:
		return "Valid"
	case StatusInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// Result is the validation outcome for one field. Err is set only when Status
// is StatusInvalid.
type Result struct {
	Status Status
	Err    *ValidationError
}

// IsEmpty reports whether the field had no text
func (r Result) IsEmpty() bool { return r.Status == StatusEmpty }

// IsValid reports whether the field passed every rule
func (r Result) IsValid() bool { return r.Status == StatusValid }

// IsInvalid reports whether the field failed a rule
func (r Result) IsInvalid() bool { return r.Status == StatusInvalid }

// Reason returns the user-facing message for an invalid result, or "".
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Message
}

var (
	emptyResult = Result{Status: StatusEmpty}
	validResult = Result{Status: StatusValid}
)

func invalid(err *ValidationError) Result {
	return Result{Status: StatusInvalid, Err: err}
}

// Validate checks raw field text against the rules for kind.
// The text is not trimmed.
func Validate(kind FieldKind, raw string) Result {
	switch kind {
	case FieldName:
		return ValidateName(raw)
	case FieldAge:
		return ValidateAge(raw)
	default:
		panic(fmt.Sprintf("validation: unknown field %v", kind))
	}
}

// ValidateName applies the name rules. Format is checked before length.
func ValidateName(raw string) Result {
	if raw == "" {
		return emptyResult
	}
	if !namePattern.MatchString(raw) {
		return invalid(newValidationError(FieldName, ErrKindInvalidNameFormat, MsgInvalidNameFormat, nil))
	}
	// Pattern only admits ASCII so len counts characters
	if len(raw) < MinNameLength {
		return invalid(newValidationError(FieldName, ErrKindNameTooShort, MsgNameTooShort, nil))
	}
	return validResult
}

// ValidateAge applies the age rules.
func ValidateAge(raw string) Result {
	if raw == "" {
		return emptyResult
	}
	age, err := parseInt32(raw)
	if err != nil {
		return invalid(newValidationError(FieldAge, ErrKindNonNumericAge, MsgNonNumericAge, err))
	}
	if age < MinAge {
		return invalid(newValidationError(FieldAge, ErrKindNegativeAge, MsgNegativeAge, nil))
	}
	if age > MaxAge {
		return invalid(newValidationError(FieldAge, ErrKindAgeOutOfRange, MsgAgeOutOfRange, nil))
	}
	return validResult
}

// ParseAge validates raw and returns the age as an int.
// Empty input is reported as an EmptyField error.
func ParseAge(raw string) (int, error) {
	res := ValidateAge(raw)
	switch res.Status {
	case StatusEmpty:
		return 0, NewEmptyFieldError(FieldAge)
	case StatusInvalid:
		return 0, res.Err
	}
	age, _ := parseInt32(raw)
	return age, nil
}

// parseInt32 parses a base 10 integer in the int32 range. Anything wider is
// a parse error, not an out of range age.
func parseInt32(raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
