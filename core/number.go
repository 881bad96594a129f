package core

// ToFloat reads a numeric operand. Int and Real are the only numeric
// variants; everything else reports false.
func ToFloat(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case Int:
		return float64(v), true
	case Real:
		return float64(v), true
	default:
		return 0, false
	}
}

// ToInt reads an integer operand. Reals with an integral value are accepted,
// since some producers write "0.0 Tr".
func ToInt(obj Object) (int, bool) {
	switch v := obj.(type) {
	case Int:
		return int(v), true
	case Real:
		if float64(v) == float64(int64(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// IsNumber reports whether obj is an Int or a Real
func IsNumber(obj Object) bool {
	_, ok := ToFloat(obj)
	return ok
}
