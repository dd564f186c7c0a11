package diag

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestReporter_DedupsByKey(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(zerolog.New(&buf))

	for i := 0; i < 5; i++ {
		r.Report("appointment:abc", "appointment excluded", errors.New("start after end"))
	}
	r.Report("appointment:def", "appointment excluded", nil)

	out := buf.String()
	if n := strings.Count(out, "appointment:abc"); n != 1 {
		t.Errorf("expected key abc once, got %d", n)
	}
	if n := strings.Count(out, "appointment:def"); n != 1 {
		t.Errorf("expected key def once, got %d", n)
	}
}

func TestReporter_Reset(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(zerolog.New(&buf))

	r.Report("k", "msg", nil)
	r.Reset()
	r.Report("k", "msg", nil)

	if n := strings.Count(buf.String(), "msg"); n != 2 {
		t.Errorf("expected 2 events after reset, got %d", n)
	}
}

func TestReporter_NilSafe(t *testing.T) {
	var r *Reporter
	r.Report("k", "msg", nil) // must not panic
	r.Reset()
}
