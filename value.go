package chef

// Measure tags a Value with how it should be emitted on output. Liquid is
// the only measure that causes a value to be written as a Unicode code
// point; Dry and Unspecified are both written as a decimal amount.
type Measure int

const (
	Unspecified Measure = iota
	Dry
	Liquid
)

func (m Measure) String() string {
	switch m {
	case Dry:
		return "dry"
	case Liquid:
		return "liquid"
	default:
		return "unspecified"
	}
}

// Value is a signed amount tagged with a Measure. Arithmetic operates on
// Amount only; Measure is carried, not computed, except where an
// instruction's semantics say otherwise (Divide and Remove preserve the
// mixing bowl top's measure, since they mutate the top value in place).
type Value struct {
	Amount  int64
	Measure Measure
}
