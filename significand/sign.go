package significand

// Sign is the sign of a decimal literal. The zero value is Positive.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}

	return "+"
}
