package value

import (
	"bytes"
	"math"
)

// Equal reports whether a and b are structurally equal.
//
// Both values must hold the same kind at every level, with one exception:
// Integer and Real compare numerically. Lists compare element-wise in order.
// Maps compare by key set and per-key value, independent of how they were
// built. NaN equals NaN. Opaque values are never equal to anything.
func Equal(a, b Value) bool {
	if a.isNumber() && b.isNumber() {
		return numbersEqual(a, b)
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case Null:
		return true
	case String:
		return a.str == b.str
	case Bool:
		return a.boolVal == b.boolVal
	case Data:
		return bytes.Equal(a.data, b.data)
	case Date:
		return a.date.Equal(b.date)
	case List:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case Map:
		if len(a.dict) != len(b.dict) {
			return false
		}
		for k, av := range a.dict {
			bv, ok := b.dict[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case Opaque:
		return false
	default:
		return false
	}
}

func numbersEqual(a, b Value) bool {
	if a.kind == Integer && b.kind == Integer {
		if a.unsigned || b.unsigned {
			return a.unsigned == b.unsigned && a.uintVal == b.uintVal
		}
		return a.intVal == b.intVal
	}
	x, y := a.float(), b.float()
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	return x == y
}

func (v Value) float() float64 {
	switch {
	case v.kind == Real:
		return v.realVal
	case v.unsigned:
		return float64(v.uintVal)
	default:
		return float64(v.intVal)
	}
}
