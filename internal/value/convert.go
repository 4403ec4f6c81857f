package value

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// FromNative converts the generic tree produced by a property-list or JSON
// decoder into a Value. Types without a Value variant become Opaque.
func FromNative(x any) Value {
	switch t := x.(type) {
	case nil:
		return NewNull()
	case Value:
		return t
	case string:
		return NewString(t)
	case bool:
		return NewBool(t)
	case int:
		return NewInt(int64(t))
	case int8:
		return NewInt(int64(t))
	case int16:
		return NewInt(int64(t))
	case int32:
		return NewInt(int64(t))
	case int64:
		return NewInt(t)
	case uint:
		return NewUint(uint64(t))
	case uint8:
		return NewUint(uint64(t))
	case uint16:
		return NewUint(uint64(t))
	case uint32:
		return NewUint(uint64(t))
	case uint64:
		return NewUint(t)
	case float32:
		return NewReal(float64(t))
	case float64:
		return NewReal(t)
	case []byte:
		return NewData(t)
	case time.Time:
		return NewDate(t)
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromNative(item)
		}
		return Value{kind: List, list: items}
	case map[string]any:
		dict := make(map[string]Value, len(t))
		for k, item := range t {
			dict[k] = FromNative(item)
		}
		return Value{kind: Map, dict: dict}
	default:
		return NewOpaque(x)
	}
}

// Native returns v as plain Go data suitable for encoders: strings, numbers,
// booleans, []byte, time.Time, []any and map[string]any. Non-finite reals
// become the strings "NaN", "+Inf" and "-Inf".
func (v Value) Native() any {
	switch v.kind {
	case Null:
		return nil
	case String:
		return v.str
	case Integer:
		if v.unsigned {
			return v.uintVal
		}
		return v.intVal
	case Real:
		if math.IsNaN(v.realVal) || math.IsInf(v.realVal, 0) {
			return strconv.FormatFloat(v.realVal, 'g', -1, 64)
		}
		return v.realVal
	case Bool:
		return v.boolVal
	case Data:
		return v.data
	case Date:
		return v.date
	case List:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Native()
		}
		return out
	case Map:
		out := make(map[string]any, len(v.dict))
		for k, item := range v.dict {
			out[k] = item.Native()
		}
		return out
	default:
		return v.String()
	}
}

// MarshalJSON encodes v in its natural JSON form. Data is base64 and dates
// are RFC 3339, following encoding/json conventions.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}

// MarshalYAML encodes v in its natural YAML form.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.kind == Data {
		return "<" + hex.EncodeToString(v.data) + ">", nil
	}
	return v.Native(), nil
}

// String renders v for people. Top-level strings are printed raw; strings
// nested in containers are quoted so list and map boundaries stay readable.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b, true)
	return b.String()
}

func (v Value) write(b *strings.Builder, top bool) {
	switch v.kind {
	case Null:
		b.WriteString("<null>")
	case String:
		if top {
			b.WriteString(v.str)
		} else {
			b.WriteString(strconv.Quote(v.str))
		}
	case Integer:
		if v.unsigned {
			b.WriteString(strconv.FormatUint(v.uintVal, 10))
		} else {
			b.WriteString(strconv.FormatInt(v.intVal, 10))
		}
	case Real:
		b.WriteString(strconv.FormatFloat(v.realVal, 'g', -1, 64))
	case Bool:
		b.WriteString(strconv.FormatBool(v.boolVal))
	case Data:
		b.WriteByte('<')
		b.WriteString(hex.EncodeToString(v.data))
		b.WriteByte('>')
	case Date:
		b.WriteString(v.date.UTC().Format(time.RFC3339))
	case List:
		b.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				b.WriteString(", ")
			}
			item.write(b, false)
		}
		b.WriteByte(']')
	case Map:
		b.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(k)
			b.WriteString(" = ")
			v.dict[k].write(b, false)
		}
		b.WriteByte('}')
	case Opaque:
		b.WriteString("<opaque ")
		b.WriteString(strconv.Quote(fmtOpaque(v.opaque)))
		b.WriteByte('>')
	}
}
