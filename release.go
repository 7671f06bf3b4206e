//go:build !debug

package gojsonpath

func (env *env) debugCodes(codes []*code) {}

func (env *env) debugState(c *code, v any) {}
