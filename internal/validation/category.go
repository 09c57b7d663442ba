package validation

// AgeCategory is the bucket a valid age falls into
type AgeCategory int

const (
	CategoryChild AgeCategory = iota
	CategoryTeenager
	CategoryYoungAdult
	CategoryAdult
	CategoryMiddleAged
	CategorySenior
)

// Lower bounds (inclusive) for each category after Child
const (
	teenagerFrom   = 13
	youngAdultFrom = 20
	adultFrom      = 30
	middleAgedFrom = 50
	seniorFrom     = 65
)

// String returns the label shown in the result summary
func (c AgeCategory) String() string {
	switch c {
	case CategoryChild:
		return "Child"
	case CategoryTeenager:
		return "Teenager"
	case CategoryYoungAdult:
		return "Young Adult"
	case CategoryAdult:
		return "Adult"
	case CategoryMiddleAged:
		return "Middle-aged"
	case CategorySenior:
		return "Senior"
	default:
		return "Unknown"
	}
}

// Categorize classifies an age. Callers validate the age first; values below
// zero land in Child and values above MaxAge in Senior.
func Categorize(age int) AgeCategory {
	switch {
	case age < teenagerFrom:
		return CategoryChild
	case age < youngAdultFrom:
		return CategoryTeenager
	case age < adultFrom:
		return CategoryYoungAdult
	case age < middleAgedFrom:
		return CategoryAdult
	case age < seniorFrom:
		return CategoryMiddleAged
	default:
		return CategorySenior
	}
}
