// Package problemgen generates randomized arithmetic problems for math
// drill tasks. Generation is pure and stateless: every problem carries
// enough information to recompute its own answer.
package problemgen

// Kind identifies an arithmetic operation.
type Kind string

const (
	KindAddition       Kind = "addition"
	KindSubtraction    Kind = "subtraction"
	KindMultiplication Kind = "multiplication"
	KindDivision       Kind = "division"
)

// Symbol returns the display operator for the kind.
func (k Kind) Symbol() string {
	switch k {
	case KindAddition:
		return "+"
	case KindSubtraction:
		return "-"
	case KindMultiplication:
		return "×"
	case KindDivision:
		return "÷"
	}
	return "?"
}

// Problem is a single arithmetic problem with its expected answer.
// The answer is always a non-negative integer derivable from A, B and Kind.
type Problem struct {
	Kind   Kind
	A      int
	B      int
	Answer int
}

// Counts configures how many problems of each kind a set contains.
// Zero values mean "none of this kind".
type Counts struct {
	Addition       int `json:"addition"`
	Subtraction    int `json:"subtraction"`
	Multiplication int `json:"multiplication"`
	Division       int `json:"division"`
}

// Total returns the total number of problems the config requests.
func (c Counts) Total() int {
	return c.Addition + c.Subtraction + c.Multiplication + c.Division
}
