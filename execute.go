package gojsonpath

// Path is a compiled query.
type Path struct {
	codes      []*code
	timeLayout string
}

// Run the path against a document. The document binds both "$" and "@".
// Evaluation is total: it never fails, and selectors that match nothing
// contribute nothing.
func (p *Path) Run(v any) []any {
	return p.RunFrom(v, v)
}

// RunFrom runs the path with an explicit current item. The root binds "$"
// and the item binds "@".
func (p *Path) RunFrom(root, item any) []any {
	env := &env{root: root, timeLayout: p.timeLayout}
	env.debugCodes(p.codes)
	env.execute(item, p.codes)
	if env.buf == nil {
		return []any{}
	}
	return env.buf
}

type env struct {
	buf        []any
	root       any
	timeLayout string
}

func (env *env) execute(v any, codes []*code) {
	if len(codes) == 0 {
		env.buf = append(env.buf, v)
		return
	}
	c := codes[0]
	env.debugState(c, v)
	switch c.op {
	case oproot:
		env.execute(env.root, codes[1:])
	case opcurrent:
		env.execute(v, codes[1:])
	case opkey:
		if x, ok := objectLookup(v, c.v.(string)); ok {
			env.execute(x, codes[1:])
		} else {
			env.buf = append(env.buf, nil)
		}
	case opindex:
		if xs, ok := v.([]any); ok {
			if x, ok := arrayIndex(xs, c.v.(int)); ok {
				env.execute(x, codes[1:])
				break
			}
		}
		env.buf = append(env.buf, nil)
	case opslice:
		xs, ok := v.([]any)
		if !ok {
			break
		}
		s := c.v.(sliceBounds)
		if s.step < 1 {
			break
		}
		first, last := s.indexes(len(xs))
		for i := first; i < last; i += s.step {
			env.execute(xs[i], codes[1:])
		}
	case opwildcard:
		if xs, ok := childValues(v); ok {
			for _, x := range xs {
				env.execute(x, codes[1:])
			}
		}
	case opdescend:
		key := c.v.(string)
		s := new(stack)
		s.push(v)
		for !s.empty() {
			x := s.pop()
			if y, ok := objectLookup(x, key); ok {
				env.execute(y, codes[1:])
			}
			s.pushChildren(x)
		}
	case opfilter:
		f := c.v.(*filterCond)
		if xs, ok := childValues(v); ok {
			for _, x := range xs {
				if env.filterMatches(f, x) {
					env.execute(x, codes[1:])
				}
			}
		}
	case opunion:
		alts := c.v.([]*code)
		cont := make([]*code, len(codes))
		copy(cont[1:], codes[1:])
		for _, alt := range alts {
			cont[0] = alt
			n := len(env.buf)
			env.execute(v, cont)
			if len(env.buf) > n+1 {
				xs := make([]any, len(env.buf)-n)
				copy(xs, env.buf[n:])
				env.buf = append(env.buf[:n], xs)
			}
		}
	default:
		panic(c.op)
	}
}

// filterMatches runs the filter subpath against a candidate child and
// compares the first result to the literal. A subpath that selects
// nothing matches nothing.
func (e *env) filterMatches(f *filterCond, v any) bool {
	sub := &env{root: e.root, timeLayout: e.timeLayout}
	sub.execute(v, f.codes)
	if len(sub.buf) == 0 {
		return false
	}
	return f.op.test(compareValues(sub.buf[0], f.value, e.timeLayout))
}
