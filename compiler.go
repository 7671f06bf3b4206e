package gojsonpath

type compiler struct {
	codes      []*code
	timeLayout string
}

// Compile compiles a query into a Path. The returned Path is immutable
// and can be run against any number of documents, concurrently.
func Compile(q *Query, options ...CompilerOption) (*Path, error) {
	c := &compiler{timeLayout: defaultTimeLayout}
	for _, opt := range options {
		opt(c)
	}
	return c.compile(q)
}

func (c *compiler) compile(q *Query) (*Path, error) {
	if err := c.compileQuery(q); err != nil {
		return nil, err
	}
	return &Path{codes: c.codes, timeLayout: c.timeLayout}, nil
}

func (c *compiler) compileQuery(e *Query) error {
	if e.Root == "@" {
		c.append(&code{op: opcurrent})
	} else {
		c.append(&code{op: oproot})
	}
	for _, p := range e.Parts {
		if err := c.compilePart(p); err != nil {
			return err
		}
	}
	return nil
}

func (c *compiler) compilePart(e *Part) error {
	switch {
	case e.Recurse != nil:
		c.append(&code{op: opdescend, v: *e.Recurse})
	case e.Wildcard:
		c.append(&code{op: opwildcard})
	case e.Key != nil:
		c.append(&code{op: opkey, v: *e.Key})
	default:
		return c.compileUnion(e.Union)
	}
	return nil
}

func (c *compiler) compileUnion(xs []*Element) error {
	if len(xs) == 1 {
		el, err := c.compileElement(xs[0])
		if err != nil {
			return err
		}
		c.append(el)
		return nil
	}
	alts := make([]*code, len(xs))
	for i, e := range xs {
		el, err := c.compileElement(e)
		if err != nil {
			return err
		}
		alts[i] = el
	}
	c.append(&code{op: opunion, v: alts})
	return nil
}

func (c *compiler) compileElement(e *Element) (*code, error) {
	switch {
	case e.Wildcard:
		return &code{op: opwildcard}, nil
	case e.Filter != nil:
		return c.compileFilter(e.Filter)
	case e.Slice != nil:
		return c.compileSlice(e.Slice), nil
	case e.Str != nil:
		return &code{op: opkey, v: string(*e.Str)}, nil
	default:
		return &code{op: opindex, v: *e.Index}, nil
	}
}

func (c *compiler) compileSlice(e *Slice) *code {
	s := sliceBounds{step: 1}
	if e.First != nil {
		s.first = *e.First
	}
	if e.Last != nil {
		s.last = *e.Last
	} else {
		s.openEnd = true
	}
	if e.Step != nil {
		s.step = *e.Step
	}
	return &code{op: opslice, v: s}
}

func (c *compiler) compileFilter(e *Filter) (*code, error) {
	cc := &compiler{timeLayout: c.timeLayout}
	if err := cc.compileQuery(e.Query); err != nil {
		return nil, err
	}
	return &code{op: opfilter, v: &filterCond{
		codes: cc.codes,
		op:    e.Op,
		value: c.compileLiteral(e.Value),
	}}, nil
}

func (c *compiler) compileLiteral(e *Literal) any {
	switch {
	case e.True:
		return true
	case e.False:
		return false
	case e.Str != nil:
		return string(*e.Str)
	case e.Num != nil:
		return normalizeNumber(*e.Num)
	default:
		return nil
	}
}

func (c *compiler) append(code *code) {
	c.codes = append(c.codes, code)
}
