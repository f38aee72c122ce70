package glsl

// Writer accumulates generated source. It is the only mutable state of a
// regeneration pass and is threaded by reference through the whole call tree,
// so independent passes never share anything.
type Writer struct {
	buf []byte
}

// NewWriter creates an output writer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 1<<10)}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteString appends a string to the output.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// WriteByte appends a single byte to the output.
func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

func (w *Writer) Len() int {
	return len(w.buf)
}
