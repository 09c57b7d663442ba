package validation

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

// TestValidateName tests name validation rules
func TestValidateName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStatus Status
		wantKind   ErrorKind
	}{
		{"Empty", "", StatusEmpty, 0},
		{"Valid: simple", "Alice", StatusValid, 0},
		{"Valid: two letters", "Al", StatusValid, 0},
		{"Valid: with space", "Mary Jane", StatusValid, 0},
		{"Valid: surrounding spaces", " Bo ", StatusValid, 0},
		{"Valid: tab inside", "Ann\tLee", StatusValid, 0},
		{"Invalid: digits", "Bob123", StatusInvalid, ErrKindInvalidNameFormat},
		{"Invalid: hyphen", "Anne-Marie", StatusInvalid, ErrKindInvalidNameFormat},
		{"Invalid: accented letter", "José", StatusInvalid, ErrKindInvalidNameFormat},
		{"Invalid: single letter", "A", StatusInvalid, ErrKindNameTooShort},
		{"Invalid: single space", " ", StatusInvalid, ErrKindNameTooShort},
		{"Invalid: format beats length", "1", StatusInvalid, ErrKindInvalidNameFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateName(tt.input)
			if res.Status != tt.wantStatus {
				t.Fatalf("ValidateName(%q) status = %v, want %v", tt.input, res.Status, tt.wantStatus)
			}
			if tt.wantStatus != StatusInvalid {
				if res.Err != nil {
					t.Errorf("ValidateName(%q) unexpected error: %v", tt.input, res.Err)
				}
				return
			}
			if res.Err == nil {
				t.Fatalf("ValidateName(%q) expected error", tt.input)
			}
			if res.Err.Kind != tt.wantKind {
				t.Errorf("ValidateName(%q) kind = %v, want %v", tt.input, res.Err.Kind, tt.wantKind)
			}
			if res.Err.Field != FieldName {
				t.Errorf("ValidateName(%q) field = %v, want name", tt.input, res.Err.Field)
			}
		})
	}
}

// TestValidateName_LettersAlwaysValid checks every letters-and-spaces name of length >= 2
func TestValidateName_LettersAlwaysValid(t *testing.T) {
	alphabet := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ "
	for i := 0; i < len(alphabet); i++ {
		for j := 0; j < len(alphabet); j++ {
			name := string([]byte{alphabet[i], alphabet[j]})
			if res := ValidateName(name); !res.IsValid() {
				t.Fatalf("ValidateName(%q) = %v (%s), want Valid", name, res.Status, res.Reason())
			}
		}
	}
	long := strings.Repeat("ab ", 50)
	if res := ValidateName(long); !res.IsValid() {
		t.Errorf("ValidateName(long) = %v, want Valid", res.Status)
	}
}

// TestValidateAge tests age validation rules
func TestValidateAge(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStatus Status
		wantKind   ErrorKind
	}{
		{"Empty", "", StatusEmpty, 0},
		{"Valid: zero", "0", StatusValid, 0},
		{"Valid: thirty", "30", StatusValid, 0},
		{"Valid: upper bound", "120", StatusValid, 0},
		{"Valid: explicit plus", "+7", StatusValid, 0},
		{"Valid: leading zeros", "007", StatusValid, 0},
		{"Invalid: letters", "abc", StatusInvalid, ErrKindNonNumericAge},
		{"Invalid: decimal", "30.5", StatusInvalid, ErrKindNonNumericAge},
		{"Invalid: untrimmed", " 30", StatusInvalid, ErrKindNonNumericAge},
		{"Invalid: overflow", "99999999999999999999", StatusInvalid, ErrKindNonNumericAge},
		{"Invalid: above int32", "3000000000", StatusInvalid, ErrKindNonNumericAge},
		{"Invalid: below int32", "-3000000000", StatusInvalid, ErrKindNonNumericAge},
		{"Invalid: int32 max", "2147483647", StatusInvalid, ErrKindAgeOutOfRange},
		{"Invalid: negative", "-1", StatusInvalid, ErrKindNegativeAge},
		{"Invalid: very negative", "-500", StatusInvalid, ErrKindNegativeAge},
		{"Invalid: above range", "121", StatusInvalid, ErrKindAgeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateAge(tt.input)
			if res.Status != tt.wantStatus {
				t.Fatalf("ValidateAge(%q) status = %v, want %v", tt.input, res.Status, tt.wantStatus)
			}
			if tt.wantStatus == StatusInvalid && res.Err.Kind != tt.wantKind {
				t.Errorf("ValidateAge(%q) kind = %v, want %v", tt.input, res.Err.Kind, tt.wantKind)
			}
		})
	}
}

// TestValidateAge_Range sweeps the accepted range and its neighbours
func TestValidateAge_Range(t *testing.T) {
	for age := -50; age <= 200; age++ {
		res := ValidateAge(strconv.Itoa(age))
		switch {
		case age < MinAge:
			if !IsNegativeAge(res.Err) {
				t.Errorf("age %d: want NegativeAge, got %v", age, res.Status)
			}
		case age > MaxAge:
			if !IsAgeOutOfRange(res.Err) {
				t.Errorf("age %d: want AgeOutOfRange, got %v", age, res.Status)
			}
		default:
			if !res.IsValid() {
				t.Errorf("age %d: want Valid, got %v (%s)", age, res.Status, res.Reason())
			}
		}
	}
}

func TestValidate_Dispatch(t *testing.T) {
	if !Validate(FieldName, "").IsEmpty() {
		t.Error("Validate(name, \"\") should be Empty")
	}
	if !Validate(FieldAge, "").IsEmpty() {
		t.Error("Validate(age, \"\") should be Empty")
	}
	if !Validate(FieldName, "Alice").IsValid() {
		t.Error("Validate(name, Alice) should be Valid")
	}
	if !Validate(FieldAge, "abc").IsInvalid() {
		t.Error("Validate(age, abc) should be Invalid")
	}
}

func TestValidateAge_NonNumericWrapsParseError(t *testing.T) {
	res := ValidateAge("abc")
	if !errors.Is(res.Err, strconv.ErrSyntax) {
		t.Errorf("expected wrapped strconv.ErrSyntax, got %v", res.Err)
	}
	if res.Reason() != MsgNonNumericAge {
		t.Errorf("Reason() = %q, want %q", res.Reason(), MsgNonNumericAge)
	}
}

func TestParseAge(t *testing.T) {
	age, err := ParseAge("42")
	if err != nil {
		t.Fatalf("ParseAge(42) error = %v", err)
	}
	if age != 42 {
		t.Errorf("ParseAge(42) = %d", age)
	}

	if _, err := ParseAge(""); !IsEmptyField(err) {
		t.Errorf("ParseAge(\"\") error = %v, want EmptyField", err)
	}
	if _, err := ParseAge("121"); !IsAgeOutOfRange(err) {
		t.Errorf("ParseAge(121) error = %v, want AgeOutOfRange", err)
	}
}
