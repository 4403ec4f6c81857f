package value

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// Canonical returns a deterministic, type-tagged encoding of v suitable for
// hashing. Equal values encode identically, except integers above the int64
// range compared against reals.
func (v Value) Canonical() []byte {
	return v.appendCanonical(nil)
}

func (v Value) appendCanonical(buf []byte) []byte {
	switch v.kind {
	case Null:
		return append(buf, 'n')
	case String:
		buf = append(buf, 's')
		return appendBytes(buf, []byte(v.str))
	case Integer, Real:
		return appendNumber(buf, v)
	case Bool:
		if v.boolVal {
			return append(buf, 't')
		}
		return append(buf, 'f')
	case Data:
		buf = append(buf, 'x')
		return appendBytes(buf, v.data)
	case Date:
		buf = append(buf, 'd')
		return appendBytes(buf, []byte(strconv.FormatInt(v.date.UnixNano(), 10)))
	case List:
		buf = append(buf, 'l')
		buf = binary.BigEndian.AppendUint64(buf, uint64(len(v.list)))
		for _, item := range v.list {
			buf = item.appendCanonical(buf)
		}
		return buf
	case Map:
		buf = append(buf, 'm')
		buf = binary.BigEndian.AppendUint64(buf, uint64(len(v.dict)))
		for _, k := range v.Keys() {
			buf = appendBytes(buf, []byte(k))
			buf = v.dict[k].appendCanonical(buf)
		}
		return buf
	default:
		buf = append(buf, 'o')
		return appendBytes(buf, []byte(fmtOpaque(v.opaque)))
	}
}

func appendNumber(buf []byte, v Value) []byte {
	if v.kind == Integer && v.unsigned {
		buf = append(buf, 'u')
		return binary.BigEndian.AppendUint64(buf, v.uintVal)
	}
	if v.kind == Integer {
		buf = append(buf, 'i')
		return binary.BigEndian.AppendUint64(buf, uint64(v.intVal))
	}
	// Integral reals share the integer encoding since they compare equal.
	f := v.realVal
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		buf = append(buf, 'i')
		return binary.BigEndian.AppendUint64(buf, uint64(int64(f)))
	}
	if math.IsNaN(f) {
		f = math.NaN()
	}
	buf = append(buf, 'r')
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(f))
}

func appendBytes(buf, b []byte) []byte {
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(b)))
	return append(buf, b...)
}

func fmtOpaque(x any) string {
	return fmt.Sprintf("%v", x)
}
