package gojsonpath

type code struct {
	op opcode
	v  any
}

type opcode int

const (
	oproot opcode = iota
	opcurrent
	opkey
	opindex
	opslice
	opwildcard
	opdescend
	opfilter
	opunion
)

func (op opcode) String() string {
	switch op {
	case oproot:
		return "root"
	case opcurrent:
		return "current"
	case opkey:
		return "key"
	case opindex:
		return "index"
	case opslice:
		return "slice"
	case opwildcard:
		return "wildcard"
	case opdescend:
		return "descend"
	case opfilter:
		return "filter"
	case opunion:
		return "union"
	default:
		panic(op)
	}
}

// sliceBounds is the operand of opslice.
type sliceBounds struct {
	first, last, step int
	openEnd           bool
}

// indexes resolves the bounds against an array length. Negative offsets
// count back from the end, then both bounds clamp to the array.
func (s sliceBounds) indexes(length int) (first, last int) {
	first, last = s.first, s.last
	if first < 0 {
		first += length
	}
	first = max(first, 0)
	if s.openEnd || last > length {
		last = length
	} else if last < 0 {
		last += length
	}
	return first, last
}

// filterCond is the operand of opfilter. The subpath codes run against
// each candidate child, and the first result is compared to the literal.
type filterCond struct {
	codes []*code
	op    Operator
	value any
}
