package value

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestEqual(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same strings", NewString("a"), NewString("a"), true},
		{"different strings", NewString("a"), NewString("b"), false},
		{"integers", NewInt(5), NewInt(5), true},
		{"integer vs real", NewInt(5), NewReal(5.0), true},
		{"integer vs fractional real", NewInt(5), NewReal(5.5), false},
		{"bool vs integer", NewBool(true), NewInt(1), false},
		{"string vs integer", NewString("5"), NewInt(5), false},
		{"bools", NewBool(false), NewBool(false), true},
		{"nulls", NewNull(), NewNull(), true},
		{"null vs empty string", NewNull(), NewString(""), false},
		{"data", NewData([]byte{1, 2}), NewData([]byte{1, 2}), true},
		{"different data", NewData([]byte{1, 2}), NewData([]byte{2, 1}), false},
		{"same instant in different zones", NewDate(when), NewDate(when.In(time.FixedZone("x", 3600))), true},
		{"lists", NewList(NewInt(1), NewInt(2)), NewList(NewInt(1), NewInt(2)), true},
		{"list order matters", NewList(NewInt(1), NewInt(2)), NewList(NewInt(2), NewInt(1)), false},
		{"list length", NewList(NewInt(1)), NewList(NewInt(1), NewInt(1)), false},
		{"maps with different values", NewMap(map[string]Value{"a": NewInt(1)}), NewMap(map[string]Value{"a": NewInt(2)}), false},
		{"maps with different keys", NewMap(map[string]Value{"a": NewInt(1)}), NewMap(map[string]Value{"b": NewInt(1)}), false},
		{"opaque", NewOpaque(struct{}{}), NewOpaque(struct{}{}), false},
		{"nan", NewReal(math.NaN()), NewReal(math.NaN()), true},
		{"nan vs number", NewReal(math.NaN()), NewReal(0), false},
		{"nan vs integer", NewReal(math.NaN()), NewInt(0), false},
		{"infinities", NewReal(math.Inf(1)), NewReal(math.Inf(1)), true},
		{"opposite infinities", NewReal(math.Inf(1)), NewReal(math.Inf(-1)), false},
		{"lists holding nan", NewList(NewReal(math.NaN())), NewList(NewReal(math.NaN())), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal is not symmetric for %v and %v", tt.a, tt.b)
			}
		})
	}
}

func TestEqual_NestedMapConstructionOrder(t *testing.T) {
	first := FromNative(map[string]any{
		"a": 1,
		"b": []any{1, 2},
	})

	second := NewMap(map[string]Value{})
	second.dict["b"] = NewList(NewInt(1), NewInt(2))
	second.dict["a"] = NewInt(1)

	if !Equal(first, second) {
		t.Errorf("expected %v to equal %v", first, second)
	}
	if !Equal(first, first) {
		t.Error("Equal is not reflexive")
	}
}

func TestComparable(t *testing.T) {
	if !NewList(NewString("a"), NewMap(map[string]Value{"k": NewInt(1)})).Comparable() {
		t.Error("nested scalars should be comparable")
	}
	if NewOpaque(1).Comparable() {
		t.Error("opaque should not be comparable")
	}
	if NewList(NewInt(1), NewOpaque(1)).Comparable() {
		t.Error("list holding an opaque value should not be comparable")
	}
	if NewMap(map[string]Value{"k": NewOpaque(1)}).Comparable() {
		t.Error("map holding an opaque value should not be comparable")
	}
}

func TestFromNative(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{"nil", nil, Null},
		{"string", "x", String},
		{"uint64", uint64(3), Integer},
		{"int64", int64(-3), Integer},
		{"float64", 1.5, Real},
		{"bool", true, Bool},
		{"bytes", []byte("x"), Data},
		{"time", time.Now(), Date},
		{"slice", []any{"a"}, List},
		{"map", map[string]any{"a": 1}, Map},
		{"unknown", struct{ X int }{1}, Opaque},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromNative(tt.in).Kind(); got != tt.kind {
				t.Errorf("FromNative(%v).Kind() = %s, want %s", tt.in, got, tt.kind)
			}
		})
	}
}

func TestNewUint_LargeValues(t *testing.T) {
	big := NewUint(1 << 63)
	if !Equal(big, NewUint(1<<63)) {
		t.Error("large unsigned integers should equal themselves")
	}
	if Equal(big, NewInt(-1)) {
		t.Error("large unsigned integer should not equal -1")
	}
	if got := big.String(); got != "9223372036854775808" {
		t.Errorf("String() = %q", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"string", NewString("hello world"), "hello world"},
		{"integer", NewInt(5), "5"},
		{"real", NewReal(2.5), "2.5"},
		{"bool", NewBool(true), "true"},
		{"null", NewNull(), "<null>"},
		{"data", NewData([]byte{0xde, 0xad}), "<dead>"},
		{"date", NewDate(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)), "2024-01-02T03:04:05Z"},
		{"list", NewList(NewString("a"), NewInt(1)), `["a", 1]`},
		{
			"map sorted by key",
			NewMap(map[string]Value{"b": NewBool(false), "a": NewList(NewInt(1), NewInt(2))}),
			`{a = [1, 2]; b = false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	a := FromNative(map[string]any{"x": []any{1, "two"}, "y": true})
	b := FromNative(map[string]any{"y": true, "x": []any{uint64(1), "two"}})
	if !bytes.Equal(a.Canonical(), b.Canonical()) {
		t.Error("equal values should have identical canonical encodings")
	}

	if bytes.Equal(NewInt(5).Canonical(), NewInt(6).Canonical()) {
		t.Error("different integers should encode differently")
	}
	if !bytes.Equal(NewInt(5).Canonical(), NewReal(5).Canonical()) {
		t.Error("integral real should encode like the integer")
	}
	if bytes.Equal(NewString("1").Canonical(), NewInt(1).Canonical()) {
		t.Error("string and integer should encode differently")
	}

	quiet := NewReal(math.NaN())
	other := NewReal(math.Float64frombits(0x7ff8000000000001))
	if !bytes.Equal(quiet.Canonical(), other.Canonical()) {
		t.Error("every NaN should share one encoding")
	}
	if bytes.Equal(NewReal(math.Inf(1)).Canonical(), NewReal(math.Inf(-1)).Canonical()) {
		t.Error("opposite infinities should encode differently")
	}
}

func TestMarshalJSON(t *testing.T) {
	v := FromNative(map[string]any{"enabled": true, "delay": uint64(5), "hosts": []any{"a", "b"}})

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON %s: %v", data, err)
	}
	if decoded["enabled"] != true {
		t.Errorf("enabled = %v, want true", decoded["enabled"])
	}
	if decoded["delay"] != float64(5) {
		t.Errorf("delay = %v, want 5", decoded["delay"])
	}
}

func TestMarshalJSON_NonFiniteReals(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"nan", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "+Inf"},
		{"negative infinity", math.Inf(-1), "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(map[string]Value{
				"v":    NewReal(tt.in),
				"list": NewList(NewReal(tt.in)),
			})
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}

			var decoded struct {
				V    string   `json:"v"`
				List []string `json:"list"`
			}
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("invalid JSON %s: %v", data, err)
			}
			if decoded.V != tt.want {
				t.Errorf("v = %q, want %q", decoded.V, tt.want)
			}
			if len(decoded.List) != 1 || decoded.List[0] != tt.want {
				t.Errorf("list = %v, want [%q]", decoded.List, tt.want)
			}
		})
	}
}

func TestMarshalYAML_NonFiniteReals(t *testing.T) {
	got, err := NewReal(math.NaN()).MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	if got != "NaN" {
		t.Errorf("MarshalYAML() = %v, want NaN", got)
	}
}
