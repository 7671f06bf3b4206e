package gojsonpath

// CompilerOption ...
type CompilerOption func(*compiler)

// WithTimeLayout is a compiler option for comparing timestamp values
// against string literals in filter expressions. The layout follows the
// strftime format. The default is "%Y-%m-%dT%H:%M:%SZ".
func WithTimeLayout(layout string) CompilerOption {
	return func(c *compiler) {
		c.timeLayout = layout
	}
}
