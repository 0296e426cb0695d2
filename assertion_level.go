package sifplan

// AssertionLevel controls which assertions are planned into a flow
type AssertionLevel int

const (
	// AssertionLevelStrict plans all assertions
	AssertionLevelStrict AssertionLevel = iota
	// AssertionLevelValid plans only assertions which validate data
	AssertionLevelValid
	// AssertionLevelNone plans no assertions
	AssertionLevelNone
)

// String returns a textual representation of this AssertionLevel
func (l AssertionLevel) String() string {
	switch l {
	case AssertionLevelValid:
		return "VALID"
	case AssertionLevelNone:
		return "NONE"
	default:
		return "STRICT"
	}
}
