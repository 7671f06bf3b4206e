package gojsonpath_test

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/modopayments/go-modo/v8"
	"github.com/modopayments/go-modo/v8/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/itchyny/gojsonpath"
)

func TestCompare(t *testing.T) {
	big2e70 := new(big.Int).Lsh(big.NewInt(1), 70)
	ordered := orderedmap.New[string, any]()
	ordered.Set("a", 0)
	testCases := []struct {
		l, r     any
		expected int
	}{
		{nil, nil, 0},
		{nil, false, -1},
		{false, nil, 1},
		{false, false, 0},
		{false, true, -1},
		{true, false, 1},
		{true, true, 0},
		{true, 0, -1},
		{0, true, 1},
		{0, 0, 0},
		{0, 1, -1},
		{1, 0, 1},
		{1, 1, 0},
		{0, math.NaN(), 1},
		{math.NaN(), 0, -1},
		{math.NaN(), math.NaN(), -1},
		{1, 1.00, 0},
		{1.00, 1, 0},
		{1.00, 1.01, -1},
		{1.01, 1.00, 1},
		{1.01, 1.01, 0},
		{1, big.NewInt(0), 1},
		{big.NewInt(0), 1, -1},
		{0, big.NewInt(0), 0},
		{big2e70, 1, 1},
		{1, big2e70, -1},
		{big2e70, 1e30, -1},
		{big2e70, big2e70, 0},
		{json.Number("10"), 10, 0},
		{json.Number("2"), 10.5, -1},
		{1.5, json.Number("1.5"), 0},
		{1, "", -1},
		{"", 1, 1},
		{"", "", 0},
		{"", "abc", -1},
		{"abc", "", 1},
		{"abc", "abc", 0},
		{"", []any{}, -1},
		{[]any{}, "", 1},
		{[]any{}, []any{}, 0},
		{[]any{}, []any{nil}, -1},
		{[]any{nil}, []any{}, 1},
		{[]any{nil}, []any{nil}, 0},
		{[]any{0, 1, 2}, []any{0, 1, nil}, 1},
		{[]any{0, 1, 2}, []any{0, 1, 2, nil}, -1},
		{[]any{0, 1, 2, false, nil}, []any{0, 1, 2, nil, false}, 1},
		{[]any{}, map[string]any{}, -1},
		{map[string]any{}, []any{}, 1},
		{map[string]any{}, map[string]any{}, 0},
		{map[string]any{"a": nil}, map[string]any{"a": nil}, 0},
		{map[string]any{"a": nil}, map[string]any{"a": nil, "b": nil}, -1},
		{map[string]any{"a": nil, "b": nil}, map[string]any{"a": nil, "c": nil}, -1},
		{map[string]any{"a": 0, "b": 0, "c": 0}, map[string]any{"a": 0, "b": 0, "c": 0}, 0},
		{map[string]any{"a": 0, "b": 0, "d": 0}, map[string]any{"a": 0, "b": 1, "c": 0}, 1},
		{map[string]any{"a": 0, "b": 1, "c": 2}, map[string]any{"a": 0, "b": 2, "c": 1}, -1},
		{ordered, map[string]any{"a": 0}, 0},
		{struct{ A int }{A: 1}, map[string]any{"A": 1}, 0},
		{
			uuid.FromStringOrNil("41008FEC-6E03-41D0-BA8D-5F3FA07C7BFA"),
			"41008fec-6e03-41d0-ba8d-5f3fa07c7bfa",
			0,
		},
		{uuid.NullUUID{Valid: false}, nil, 0},
		{
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			"2024-01-01T00:00:00Z",
			0,
		},
		{
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			"2024-01-01T00:00:00Z",
			1,
		},
		{
			"2024-01-01T00:00:00Z",
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			-1,
		},
		{time.Unix(100, 0), time.Unix(200, 0), -1},
		{time.Unix(100, 0), 100, 0},
		{modo.Timestamp{Time: time.Unix(100, 0)}, 100, 0},
		{
			modo.Timestamp{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			"2024-01-01T00:00:00Z",
			0,
		},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "not a time", -1},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v,%v", tc.l, tc.r), func(t *testing.T) {
			got := gojsonpath.Compare(tc.l, tc.r)
			if got != tc.expected {
				t.Errorf("Compare(%v, %v): got %d, expected %d", tc.l, tc.r, got, tc.expected)
			}
		})
	}
}
