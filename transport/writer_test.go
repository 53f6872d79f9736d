package transport

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

func TestWriterTransport_WriteFlush(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	tr := NewWriterTransport(WriterConfig{Writer: bw})
	defer tr.Close()

	if _, err := tr.Write([]byte("line\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected output to stay buffered before Flush, got %q", buf.String())
	}

	if err := tr.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if buf.String() != "line\n" {
		t.Errorf("Expected 'line\\n' after Flush, got %q", buf.String())
	}

	s := tr.Stats()
	if s.Writes != 1 || s.Bytes != 5 || s.Flushes != 1 || s.Errors != 0 {
		t.Errorf("Stats() = %+v", s)
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("line down") }

func TestWriterTransport_CountsErrors(t *testing.T) {
	tr := NewWriterTransport(WriterConfig{Writer: errWriter{}})

	if _, err := tr.Write([]byte("x")); err == nil {
		t.Fatal("Expected write error")
	}
	if got := tr.Stats().Errors; got != 1 {
		t.Errorf("Errors = %d, want 1", got)
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestWriterTransport_Close(t *testing.T) {
	w := &closeRecorder{}
	tr := NewWriterTransport(WriterConfig{Writer: w})
	if err := tr.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if w.closed {
		t.Error("Writer closed without CloseWriter")
	}
	if _, err := tr.Write([]byte("x")); !errors.Is(err, ErrClosed) {
		t.Errorf("Write after Close error = %v, want ErrClosed", err)
	}
	if err := tr.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	w2 := &closeRecorder{}
	tr2 := NewWriterTransport(WriterConfig{Writer: w2, CloseWriter: true})
	tr2.Close()
	if !w2.closed {
		t.Error("Writer not closed with CloseWriter")
	}
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()
	s.RecordWrite(3, nil)
	s.RecordFlush(errors.New("x"))
	s.Reset()
	if s.GetSnapshot() != (Snapshot{}) {
		t.Errorf("Snapshot after Reset = %+v", s.GetSnapshot())
	}
}
