package gojsonpath

import (
	"cmp"
	"encoding/json"
	"math"
	"math/big"
	"slices"
	"time"

	"github.com/itchyny/timefmt-go"
	"github.com/modopayments/go-modo/v8"
)

const defaultTimeLayout = "%Y-%m-%dT%H:%M:%SZ"

// Compare l and r, and returns the comparison value used by filter
// operators. The result will be 0 if l == r, -1 if l < r, and +1 if l > r.
// Values of different types are ordered by type: null, booleans, numbers,
// strings, arrays, then objects. Timestamps compare against strings in the
// default time layout.
func Compare(l, r any) int {
	return compareValues(l, r, defaultTimeLayout)
}

func compareValues(l, r any, layout string) int {
	if cmp, ok := compareTime(l, r, layout); ok {
		return cmp
	}
	return binopTypeSwitch(l, r,
		cmp.Compare,
		func(l, r float64) int {
			switch {
			case l < r || math.IsNaN(l):
				return -1
			case l == r:
				return 0
			default:
				return 1
			}
		},
		(*big.Int).Cmp,
		cmp.Compare,
		func(l, r []any) int {
			for i := range min(len(l), len(r)) {
				if cmp := compareValues(l[i], r[i], layout); cmp != 0 {
					return cmp
				}
			}
			return cmp.Compare(len(l), len(r))
		},
		func(l, r map[string]any) int {
			lk, rk := objectKeys(l), objectKeys(r)
			if cmp := slices.Compare(lk, rk); cmp != 0 {
				return cmp
			}
			for _, k := range lk {
				if cmp := compareValues(l[k], r[k], layout); cmp != 0 {
					return cmp
				}
			}
			return 0
		},
		func(l, r any) int {
			return cmp.Compare(typeIndex(l), typeIndex(r))
		},
	)
}

// compareTime compares a timestamp against a string parsed with the layout.
func compareTime(l, r any, layout string) (int, bool) {
	if lt, ok := timeValue(l); ok {
		if s, ok := r.(string); ok {
			if rt, err := timefmt.Parse(s, layout); err == nil {
				return cmp.Compare(lt.Unix(), rt.Unix()), true
			}
		}
	}
	if rt, ok := timeValue(r); ok {
		if s, ok := l.(string); ok {
			if lt, err := timefmt.Parse(s, layout); err == nil {
				return cmp.Compare(lt.Unix(), rt.Unix()), true
			}
		}
	}
	return 0, false
}

func timeValue(v any) (time.Time, bool) {
	switch v := v.(type) {
	case time.Time:
		return v, true
	case modo.Timestamp:
		return v.Time, true
	default:
		return time.Time{}, false
	}
}

func typeIndex(v any) int {
	switch v := v.(type) {
	default:
		return 0
	case bool:
		if !v {
			return 1
		}
		return 2
	case int, float64, *big.Int, json.Number:
		return 3
	case string:
		return 4
	case []any:
		return 5
	case map[string]any:
		return 6
	}
}
