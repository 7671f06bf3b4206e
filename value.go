package gojsonpath

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// objectPair is one object entry in enumeration order.
type objectPair struct {
	key   string
	value any
}

// objectPairs returns the entries of an object in enumeration order: plain
// maps in ascending key order, ordered maps in insertion order. ok is false
// when v is not an object.
func objectPairs(v any) ([]objectPair, bool) {
	switch v := v.(type) {
	case map[string]any:
		ps := make([]objectPair, 0, len(v))
		for k, x := range v {
			ps = append(ps, objectPair{k, x})
		}
		sort.Slice(ps, func(i, j int) bool {
			return ps[i].key < ps[j].key
		})
		return ps, true
	case *orderedmap.OrderedMap[string, any]:
		ps := make([]objectPair, 0, v.Len())
		for p := v.Oldest(); p != nil; p = p.Next() {
			ps = append(ps, objectPair{p.Key, p.Value})
		}
		return ps, true
	default:
		return nil, false
	}
}

// objectLookup fetches a key from either object representation.
func objectLookup(v any, key string) (any, bool) {
	switch v := v.(type) {
	case map[string]any:
		x, ok := v[key]
		return x, ok
	case *orderedmap.OrderedMap[string, any]:
		return v.Get(key)
	default:
		return nil, false
	}
}

// childValues returns the children of a collection in enumeration order:
// array elements positionally, object values per objectPairs. ok is false
// for scalars.
func childValues(v any) ([]any, bool) {
	if xs, ok := v.([]any); ok {
		return xs, true
	}
	ps, ok := objectPairs(v)
	if !ok {
		return nil, false
	}
	xs := make([]any, len(ps))
	for i, p := range ps {
		xs[i] = p.value
	}
	return xs, true
}

// arrayIndex resolves an index against an array, counting negative indices
// from the end.
func arrayIndex(xs []any, i int) (any, bool) {
	if i < 0 {
		i += len(xs)
	}
	if i < 0 || i >= len(xs) {
		return nil, false
	}
	return xs[i], true
}

// objectKeys returns the keys of a plain map in ascending order.
func objectKeys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
