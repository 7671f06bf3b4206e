package gojsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }

func intp(i int) *int { return &i }

func keyp(s string) *String {
	v := String(s)
	return &v
}

func TestParse(t *testing.T) {
	testCases := []struct {
		src      string
		expected *Query
		err      string
	}{
		{
			src: "",
			err: "invalid query",
		},
		{
			src:      "$",
			expected: &Query{Root: "$"},
		},
		{
			src:      "@",
			expected: &Query{Root: "@"},
		},
		{
			src: "$.store",
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Key: strp("store")}},
			},
		},
		{
			src: "$.store.bicycle",
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Key: strp("store")}, {Key: strp("bicycle")}},
			},
		},
		{
			src: "$..price",
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Recurse: strp("price")}},
			},
		},
		{
			src: "$.*",
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Wildcard: true}},
			},
		},
		{
			src: "$[*]",
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Union: []*Element{{Wildcard: true}}}},
			},
		},
		{
			src: "$[0]",
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Union: []*Element{{Index: intp(0)}}}},
			},
		},
		{
			src: "$[-1]",
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Union: []*Element{{Index: intp(-1)}}}},
			},
		},
		{
			src: "$[1:3]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{
					{Slice: &Slice{First: intp(1), Last: intp(3)}},
				}}},
			},
		},
		{
			src: "$[1:]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{
					{Slice: &Slice{First: intp(1)}},
				}}},
			},
		},
		{
			src: "$[:3]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{
					{Slice: &Slice{Last: intp(3)}},
				}}},
			},
		},
		{
			src: "$[:]",
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Union: []*Element{{Slice: &Slice{}}}}},
			},
		},
		{
			src: "$[::2]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{
					{Slice: &Slice{Step: intp(2)}},
				}}},
			},
		},
		{
			src: "$[1:5:2]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{
					{Slice: &Slice{First: intp(1), Last: intp(5), Step: intp(2)}},
				}}},
			},
		},
		{
			src: `$["foo"]`,
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Union: []*Element{{Str: keyp("foo")}}}},
			},
		},
		{
			src: "$['foo']",
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Union: []*Element{{Str: keyp("foo")}}}},
			},
		},
		{
			src: `$["a\"b"]`,
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Union: []*Element{{Str: keyp(`a"b`)}}}},
			},
		},
		{
			src: `$['a\'b']`,
			expected: &Query{
				Root:  "$",
				Parts: []*Part{{Union: []*Element{{Str: keyp("a'b")}}}},
			},
		},
		{
			src: "$[0,1]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{
					{Index: intp(0)}, {Index: intp(1)},
				}}},
			},
		},
		{
			src: "$[0,2:4]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{
					{Index: intp(0)},
					{Slice: &Slice{First: intp(2), Last: intp(4)}},
				}}},
			},
		},
		{
			src: "$[?(@.a == 1)]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{{Filter: &Filter{
					Query: &Query{Root: "@", Parts: []*Part{{Key: strp("a")}}},
					Op:    OpEq,
					Value: &Literal{Num: strp("1")},
				}}}}},
			},
		},
		{
			src: "$[?(@.a != null)]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{{Filter: &Filter{
					Query: &Query{Root: "@", Parts: []*Part{{Key: strp("a")}}},
					Op:    OpNe,
					Value: &Literal{Null: true},
				}}}}},
			},
		},
		{
			src: "$[?(@.a == true)]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{{Filter: &Filter{
					Query: &Query{Root: "@", Parts: []*Part{{Key: strp("a")}}},
					Op:    OpEq,
					Value: &Literal{True: true},
				}}}}},
			},
		},
		{
			src: "$[?(@.a == false)]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{{Filter: &Filter{
					Query: &Query{Root: "@", Parts: []*Part{{Key: strp("a")}}},
					Op:    OpEq,
					Value: &Literal{False: true},
				}}}}},
			},
		},
		{
			src: `$[?(@.a >= 1.5)]`,
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{{Filter: &Filter{
					Query: &Query{Root: "@", Parts: []*Part{{Key: strp("a")}}},
					Op:    OpGe,
					Value: &Literal{Num: strp("1.5")},
				}}}}},
			},
		},
		{
			src: `$[?(@.name == "red")]`,
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{{Filter: &Filter{
					Query: &Query{Root: "@", Parts: []*Part{{Key: strp("name")}}},
					Op:    OpEq,
					Value: &Literal{Str: keyp("red")},
				}}}}},
			},
		},
		{
			src: `$[?($.limit < 10)]`,
			expected: &Query{
				Root: "$",
				Parts: []*Part{{Union: []*Element{{Filter: &Filter{
					Query: &Query{Root: "$", Parts: []*Part{{Key: strp("limit")}}},
					Op:    OpLt,
					Value: &Literal{Num: strp("10")},
				}}}}},
			},
		},
		{
			src: "$..book[0]",
			expected: &Query{
				Root: "$",
				Parts: []*Part{
					{Recurse: strp("book")},
					{Union: []*Element{{Index: intp(0)}}},
				},
			},
		},
		{
			src: "abc",
			err: "invalid query",
		},
		{
			src: ".foo",
			err: "invalid query",
		},
		{
			src: "$.",
			err: "invalid query",
		},
		{
			src: "$..",
			err: "invalid query",
		},
		{
			src: "$.1",
			err: "invalid query",
		},
		{
			src: "$[",
			err: "invalid query",
		},
		{
			src: "$[]",
			err: "invalid query",
		},
		{
			src: "$foo",
			err: "invalid query",
		},
		{
			src: "$[?(@.a = 1)]",
			err: "invalid query",
		},
		{
			src: "$[?(@.a == 1]",
			err: "invalid query",
		},
		{
			src: `$["foo]`,
			err: "invalid query",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			q, err := Parse(tc.src)
			assert.Equal(t, tc.expected, q)
			if err == nil {
				assert.Equal(t, "", tc.err)
			} else {
				assert.NotEqual(t, "", tc.err, err.Error())
				assert.Contains(t, err.Error(), tc.err)
			}
		})
	}
}
