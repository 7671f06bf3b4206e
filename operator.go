package gojsonpath

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/modopayments/go-modo/v8"
	"github.com/modopayments/go-modo/v8/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Operator is a filter comparison operator.
type Operator int

// Operators ...
const (
	OpEq Operator = iota
	OpNe
	OpGt
	OpLt
	OpGe
	OpLe
)

var operatorMap = map[string]Operator{
	"==": OpEq,
	"!=": OpNe,
	">":  OpGt,
	"<":  OpLt,
	">=": OpGe,
	"<=": OpLe,
}

// Capture implements participle.Capture.
func (op *Operator) Capture(s []string) error {
	var ok bool
	*op, ok = operatorMap[s[0]]
	if !ok {
		panic("operator: " + s[0])
	}
	return nil
}

// String implements Stringer.
func (op Operator) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpGe:
		return ">="
	case OpLe:
		return "<="
	}
	panic(op)
}

// GoString implements GoStringer.
func (op Operator) GoString() string {
	switch op {
	case OpEq:
		return "OpEq"
	case OpNe:
		return "OpNe"
	case OpGt:
		return "OpGt"
	case OpLt:
		return "OpLt"
	case OpGe:
		return "OpGe"
	case OpLe:
		return "OpLe"
	}
	panic(op)
}

// test reports whether a comparison value satisfies the operator.
func (op Operator) test(cmp int) bool {
	switch op {
	case OpEq:
		return cmp == 0
	case OpNe:
		return cmp != 0
	case OpGt:
		return cmp > 0
	case OpLt:
		return cmp < 0
	case OpGe:
		return cmp >= 0
	case OpLe:
		return cmp <= 0
	}
	panic(op)
}

func binopTypeSwitch(
	l, r any,
	callbackInts func(_, _ int) int,
	callbackFloats func(_, _ float64) int,
	callbackBigInts func(_, _ *big.Int) int,
	callbackStrings func(_, _ string) int,
	callbackArrays func(_, _ []any) int,
	callbackMaps func(_, _ map[string]any) int,
	fallback func(_, _ any) int) int {
	l, r = binopTypeSwitchNormalize(l), binopTypeSwitchNormalize(r)
	switch l := l.(type) {
	case int:
		switch r := r.(type) {
		case int:
			return callbackInts(l, r)
		case float64:
			return callbackFloats(float64(l), r)
		case *big.Int:
			return callbackBigInts(big.NewInt(int64(l)), r)
		default:
			return fallback(l, r)
		}
	case float64:
		switch r := r.(type) {
		case int:
			return callbackFloats(l, float64(r))
		case float64:
			return callbackFloats(l, r)
		case *big.Int:
			return callbackFloats(l, bigToFloat(r))
		default:
			return fallback(l, r)
		}
	case *big.Int:
		switch r := r.(type) {
		case int:
			return callbackBigInts(l, big.NewInt(int64(r)))
		case float64:
			return callbackFloats(bigToFloat(l), r)
		case *big.Int:
			return callbackBigInts(l, r)
		default:
			return fallback(l, r)
		}
	case string:
		switch r := r.(type) {
		case string:
			return callbackStrings(l, r)
		default:
			return fallback(l, r)
		}
	case []any:
		switch r := r.(type) {
		case []any:
			return callbackArrays(l, r)
		default:
			return fallback(l, r)
		}
	case map[string]any:
		switch r := r.(type) {
		case map[string]any:
			return callbackMaps(l, r)
		default:
			return fallback(l, r)
		}
	default:
		return fallback(l, r)
	}
}

func bigToFloat(x *big.Int) float64 {
	if x.IsInt64() {
		return float64(x.Int64())
	}
	if f, err := strconv.ParseFloat(x.String(), 64); err == nil {
		return f
	}
	return math.Inf(x.Sign())
}

// binopTypeSwitchNormalize folds values to the forms the type switch
// dispatches on. Numbers fold to int, float64, or *big.Int, identifiers to
// strings, timestamps to seconds, and pointers, typed slices, and structs
// to the values they hold.
func binopTypeSwitchNormalize(v any) any {
	switch v := v.(type) {
	case nil, bool, int, float64, string, []any, map[string]any, *big.Int:
		return v
	case json.Number, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32:
		return normalizeNumbers(v)
	case uuid.UUID:
		return v.String()
	case uuid.NullUUID:
		if v.Valid {
			return v.UUID.String()
		}
		return nil
	case time.Time:
		return normalizeNumbers(v.Unix())
	case modo.Timestamp:
		return normalizeNumbers(v.Unix())
	case *orderedmap.OrderedMap[string, any]:
		m := make(map[string]any, v.Len())
		for p := v.Oldest(); p != nil; p = p.Next() {
			m[p.Key] = p.Value
		}
		return m
	default:
		return normalizeReflectValue(reflect.ValueOf(v))
	}
}

func normalizeReflectValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return binopTypeSwitchNormalize(v.Elem().Interface())
	case reflect.Slice, reflect.Array:
		xs := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			xs[i] = binopTypeSwitchNormalize(v.Index(i).Interface())
		}
		return xs
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return v.Interface()
		}
		m := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = binopTypeSwitchNormalize(iter.Value().Interface())
		}
		return m
	case reflect.Struct:
		t := v.Type()
		m := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				m[f.Name] = binopTypeSwitchNormalize(v.Field(i).Interface())
			}
		}
		return m
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return normalizeNumbers(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return normalizeNumbers(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	default:
		return v.Interface()
	}
}
