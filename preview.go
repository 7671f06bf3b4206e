package gojsonpath

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Preview returns the preview string of v. The preview string is basically
// the same as the JSON encoding returned by Marshal, but is truncated by
// 30 bytes, and more efficient than truncating the result of Marshal.
func Preview(v any) string {
	bs := jsonLimitedMarshal(v, 32)
	if l := 30; len(bs) > l {
		var trailing string
		switch v.(type) {
		case string:
			trailing = ` ..."`
		case []any:
			trailing = " ...]"
		case map[string]any, *orderedmap.OrderedMap[string, any]:
			trailing = " ...}"
		default:
			trailing = " ..."
		}
		if l -= len(trailing); len(bs) > l {
			bs = bs[:l]
		}
		bs = append(bs, trailing...)
	}
	return string(bs)
}

func jsonLimitedMarshal(v any, n int) (bs []byte) {
	w := &limitedWriter{buf: make([]byte, n)}
	defer func() {
		_ = recover()
		bs = w.Bytes()
	}()
	(&encoder{w: w}).encode(v)
	return
}

type limitedWriter struct {
	buf []byte
	off int
}

func (w *limitedWriter) Write(bs []byte) (int, error) {
	n := copy(w.buf[w.off:], bs)
	if n < len(bs) {
		panic(nil)
	}
	w.off += n
	return n, nil
}

func (w *limitedWriter) WriteByte(b byte) error {
	if w.off == len(w.buf) {
		panic(nil)
	}
	w.buf[w.off] = b
	w.off++
	return nil
}

func (w *limitedWriter) WriteString(s string) (int, error) {
	n := copy(w.buf[w.off:], s)
	if n < len(s) {
		panic(nil)
	}
	w.off += n
	return n, nil
}

func (w *limitedWriter) Bytes() []byte {
	return w.buf[:w.off]
}
