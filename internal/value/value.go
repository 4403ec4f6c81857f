// Package value models the recursively-typed data carried by configuration
// profile payloads.
//
// Decoded property lists are untyped trees of strings, numbers, booleans,
// raw data, dates, arrays and dictionaries. Value turns that tree into an
// explicit tagged union so equality and rendering are exhaustive switches
// over Kind instead of runtime type probing.
package value

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// Null is an absent value.
	Null Kind = iota
	String
	Integer
	Real
	Bool
	Data
	Date
	List
	Map
	// Opaque holds anything the decoder produced that has no defined
	// equality. Opaque values are never comparable.
	Opaque
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Real:
		return "real"
	case Bool:
		return "bool"
	case Data:
		return "data"
	case Date:
		return "date"
	case List:
		return "list"
	case Map:
		return "map"
	case Opaque:
		return "opaque"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is an immutable tagged union. The zero Value is Null.
type Value struct {
	kind Kind

	str    string
	intVal int64
	// unsigned is set for integers that do not fit in an int64.
	unsigned bool
	uintVal  uint64
	realVal  float64
	boolVal  bool
	data     []byte
	date     time.Time
	list     []Value
	dict     map[string]Value
	opaque   any
}

// NewNull returns the absent value.
func NewNull() Value { return Value{} }

// NewString returns a String value.
func NewString(s string) Value { return Value{kind: String, str: s} }

// NewInt returns an Integer value.
func NewInt(i int64) Value { return Value{kind: Integer, intVal: i} }

// NewUint returns an Integer value, keeping values above math.MaxInt64 exact.
func NewUint(u uint64) Value {
	if u <= math.MaxInt64 {
		return Value{kind: Integer, intVal: int64(u)}
	}
	return Value{kind: Integer, unsigned: true, uintVal: u}
}

// NewReal returns a Real value.
func NewReal(f float64) Value { return Value{kind: Real, realVal: f} }

// NewBool returns a Bool value.
func NewBool(b bool) Value { return Value{kind: Bool, boolVal: b} }

// NewData returns a Data value holding a copy of b.
func NewData(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: Data, data: cp}
}

// NewDate returns a Date value.
func NewDate(t time.Time) Value { return Value{kind: Date, date: t} }

// NewList returns a List value holding a copy of items.
func NewList(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: List, list: cp}
}

// NewMap returns a Map value holding a copy of m.
func NewMap(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: Map, dict: cp}
}

// NewOpaque wraps a decoder value that has no structural equality.
func NewOpaque(v any) Value { return Value{kind: Opaque, opaque: v} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is absent.
func (v Value) IsNull() bool { return v.kind == Null }

// Str returns the string payload and whether v is a String.
func (v Value) Str() (string, bool) { return v.str, v.kind == String }

// BoolValue returns the boolean payload and whether v is a Bool.
func (v Value) BoolValue() (bool, bool) { return v.boolVal, v.kind == Bool }

// Items returns the elements of a List, or nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != List {
		return nil
	}
	return v.list
}

// Len returns the number of elements of a List or entries of a Map.
func (v Value) Len() int {
	switch v.kind {
	case List:
		return len(v.list)
	case Map:
		return len(v.dict)
	default:
		return 0
	}
}

// Get looks up key in a Map.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Map {
		return Value{}, false
	}
	item, ok := v.dict[key]
	return item, ok
}

// Keys returns the keys of a Map in sorted order.
func (v Value) Keys() []string {
	if v.kind != Map {
		return nil
	}
	keys := make([]string, 0, len(v.dict))
	for k := range v.dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Comparable reports whether v supports equality testing. Opaque values and
// containers that hold one anywhere are not comparable.
func (v Value) Comparable() bool {
	switch v.kind {
	case Opaque:
		return false
	case List:
		for _, item := range v.list {
			if !item.Comparable() {
				return false
			}
		}
		return true
	case Map:
		for _, item := range v.dict {
			if !item.Comparable() {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// isNumber reports whether v is an Integer or a Real.
func (v Value) isNumber() bool {
	return v.kind == Integer || v.kind == Real
}
