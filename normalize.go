package gojsonpath

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	maxInt     = 1<<(strconv.IntSize-1) - 1
	minInt     = -maxInt - 1
	maxHalfInt = 1<<(strconv.IntSize/2-1) - 1
)

// normalizeNumber folds a decimal literal to int, float64, or *big.Int.
func normalizeNumber(s string) any {
	return normalizeNumbers(json.Number(s))
}

// normalizeNumbers folds numeric values to int, float64, or *big.Int. Maps
// and slices are rewritten in place; scalars yield fresh values.
func normalizeNumbers(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil && minInt <= i && i <= maxInt {
			return int(i)
		}
		if strings.ContainsAny(string(v), ".eE") {
			if f, err := v.Float64(); err == nil {
				return f
			}
		}
		if bi, ok := new(big.Int).SetString(string(v), 10); ok {
			return bi
		}
		if strings.HasPrefix(string(v), "-") {
			return -math.MaxFloat64
		}
		return math.MaxFloat64
	case *big.Int:
		if v.IsInt64() {
			if i := v.Int64(); minInt <= i && i <= maxInt {
				return int(i)
			}
		}
		return v
	case int64:
		if v > int64(maxInt) || v < int64(minInt) {
			return new(big.Int).SetInt64(v)
		}
		return int(v)
	case int32:
		return int(v)
	case int16:
		return int(v)
	case int8:
		return int(v)
	case uint:
		if v > uint(maxInt) {
			return new(big.Int).SetUint64(uint64(v))
		}
		return int(v)
	case uint64:
		if v > uint64(maxInt) {
			return new(big.Int).SetUint64(v)
		}
		return int(v)
	case uint32:
		if v > uint32(maxHalfInt) {
			return new(big.Int).SetUint64(uint64(v))
		}
		return int(v)
	case uint16:
		return int(v)
	case uint8:
		return int(v)
	case float32:
		return float64(v)
	case map[string]any:
		for k, x := range v {
			v[k] = normalizeNumbers(x)
		}
		return v
	case *orderedmap.OrderedMap[string, any]:
		for p := v.Oldest(); p != nil; p = p.Next() {
			v.Set(p.Key, normalizeNumbers(p.Value))
		}
		return v
	case []any:
		for i, x := range v {
			v[i] = normalizeNumbers(x)
		}
		return v
	default:
		return v
	}
}
