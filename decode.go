package gojsonpath

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// UnmarshalOrdered parses JSON keeping object key order. Objects decode to
// *orderedmap.OrderedMap[string, any], arrays to []any, and numbers to
// int, float64, or *big.Int. Duplicate object keys keep the position of
// the first occurrence and the value of the last.
func UnmarshalOrdered(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v,
		jsontext.AllowDuplicateNames(true),
		json.WithUnmarshalers(orderedUnmarshaler()),
	); err != nil {
		return nil, err
	}
	return v, nil
}

func orderedUnmarshaler() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{':
			m, err := decodeObject(dec)
			if err != nil {
				return err
			}
			*v = m
		case '[':
			xs, err := decodeArray(dec)
			if err != nil {
				return err
			}
			*v = xs
		case '0':
			raw, err := dec.ReadValue()
			if err != nil {
				return err
			}
			*v = normalizeNumber(string(raw))
		default:
			return json.SkipFunc
		}
		return nil
	})
}

func decodeObject(dec *jsontext.Decoder) (*orderedmap.OrderedMap[string, any], error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	m := orderedmap.New[string, any]()
	for dec.PeekKind() != '}' {
		var k string
		if err := json.UnmarshalDecode(dec, &k); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		var v any
		if err := json.UnmarshalDecode(dec, &v); err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", k, err)
		}
		m.Set(k, v)
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return m, nil
}

func decodeArray(dec *jsontext.Decoder) ([]any, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	xs := []any{}
	for dec.PeekKind() != ']' {
		var v any
		if err := json.UnmarshalDecode(dec, &v); err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		xs = append(xs, v)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return xs, nil
}

// UnmarshalOrderedYAML parses YAML into the same value shapes as
// UnmarshalOrdered. Mapping key order is kept.
func UnmarshalOrderedYAML(data []byte) (any, error) {
	var v orderedValue
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v.unwrap(), nil
}

type orderedValue struct {
	m *orderedmap.OrderedMap[string, orderedValue]
	l []orderedValue
	v any
}

func (v *orderedValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		v.m = orderedmap.New[string, orderedValue]()
		return node.Decode(&v.m)
	case yaml.SequenceNode:
		v.l = []orderedValue{}
		return node.Decode(&v.l)
	}
	return node.Decode(&v.v)
}

func (v orderedValue) unwrap() any {
	switch {
	case v.m != nil:
		m := orderedmap.New[string, any]()
		for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
			m.Set(pair.Key, pair.Value.unwrap())
		}
		return m
	case v.l != nil:
		l := make([]any, len(v.l))
		for i, x := range v.l {
			l[i] = x.unwrap()
		}
		return l
	default:
		return normalizeNumbers(v.v)
	}
}
