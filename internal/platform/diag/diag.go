// Package diag is the engine's diagnostic channel: recoverable input
// problems (malformed rules, bad timestamps, dangling references) are
// reported here once per offending input instead of propagating as errors.
package diag

import (
	"sync"

	"github.com/rs/zerolog"
)

// Reporter deduplicates diagnostics by key so that re-running a projection
// over the same snapshot does not repeat the same warning per call.
type Reporter struct {
	log  zerolog.Logger
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewReporter creates a Reporter writing to the given logger.
func NewReporter(log zerolog.Logger) *Reporter {
	return &Reporter{log: log, seen: make(map[string]struct{})}
}

// Report logs a warning for key once. Subsequent calls with the same key are
// dropped. A nil Reporter drops everything, so components can be constructed
// without a diagnostic sink in tests.
func (r *Reporter) Report(key, msg string, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if _, dup := r.seen[key]; dup {
		r.mu.Unlock()
		return
	}
	r.seen[key] = struct{}{}
	r.mu.Unlock()

	evt := r.log.Warn().Str("key", key)
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Msg(msg)
}

// Reset clears the dedup set, e.g. when a new snapshot is loaded and the
// same inputs should be reported again.
func (r *Reporter) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.seen = make(map[string]struct{})
	r.mu.Unlock()
}
