// Package gojsonpath provides the parser and the evaluator of JSONPath
// queries.
//
// Documents are decoded JSON values: nil, bool, int, float64, *big.Int,
// string, []any, and map[string]any. Objects decoded by UnmarshalOrdered
// and UnmarshalOrderedYAML preserve key order; wildcards, filters, and
// recursive descent enumerate them in insertion order, and plain maps in
// ascending key order.
//
// Evaluation never fails. Accessing a missing key or index yields a null
// result, while slices, wildcards, filters, and recursive descent over
// values of the wrong shape yield nothing. Each alternative of a union
// contributes at most one result; when an alternative selects multiple
// values, they are grouped into a single nested array.
package gojsonpath

// Select runs a query against a document. The document binds both "$" and
// "@". It is a shorthand for Parse, Compile, and Run.
func Select(v any, src string) ([]any, error) {
	return SelectFrom(v, v, src)
}

// SelectFrom runs a query with an explicit current item. The root binds
// "$" and the item binds "@".
func SelectFrom(root, item any, src string) ([]any, error) {
	query, err := Parse(src)
	if err != nil {
		return nil, err
	}
	path, err := Compile(query)
	if err != nil {
		return nil, err
	}
	return path.RunFrom(root, item), nil
}
