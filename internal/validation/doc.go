// Package validation implements the field rules for the profile form.
//
// Validation is pure: it inspects raw field text and returns a Result. It never
// touches presentation state. The feedback package decides what the user sees.
//
// # Field Rules
//
// Name:
//   - empty: Empty
//   - anything other than ASCII letters and whitespace: InvalidNameFormat
//   - shorter than 2 characters: NameTooShort
//
// Age:
//   - empty: Empty
//   - not an integer (or does not fit in an int): NonNumericAge
//   - below 0: NegativeAge
//   - above 120: AgeOutOfRange
//
// # Usage Example
//
//	res := validation.Validate(validation.FieldAge, "42")
//	if res.IsValid() {
//	    age, _ := validation.ParseAge("42")
//	    fmt.Println(validation.Categorize(age)) // Adult
//	}
//
// # Error Handling
//
// Invalid results carry a *ValidationError. Use the IsXxx helpers or Kind to
// classify it:
//
//	if validation.IsNonNumericAge(res.Err) {
//	    // show "Please enter a valid number"
//	}
package validation
