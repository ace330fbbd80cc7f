// Package mapflog defines the log sink every solver layer writes tagged,
// level-less lines to: goal-assignment attempts, group-combine events, and
// periodic frontier-size reports. Passing a nil Logger anywhere one is
// accepted is always safe — every call site goes through the
// package-level Log helper, which no-ops on nil.
package mapflog

import (
	"fmt"
	"io"
	"sync"
)

// Logger receives one tagged, leveled-less line per event. tag identifies
// the call site ("idsolve.merge", "od.frontier", "matching.candidate", ...);
// kv is an even-length list of alternating key, value pairs.
type Logger interface {
	Log(tag, msg string, kv ...any)
}

// Log calls l.Log if l is non-nil, so every caller can hold a possibly-nil
// Logger without branching.
func Log(l Logger, tag, msg string, kv ...any) {
	if l == nil {
		return
	}
	l.Log(tag, msg, kv...)
}

// writer is the default structured implementation: one line per event,
// "tag: msg key=value key=value...", guarded by a mutex since solves may
// log concurrently across independently-running groups.
type writer struct {
	mu  sync.Mutex
	out io.Writer
}

// New returns a Logger that writes structured lines to out.
func New(out io.Writer) Logger {
	return &writer{out: out}
}

func (w *writer) Log(tag, msg string, kv ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, "%s: %s", tag, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(w.out, " %v=%v", kv[i], kv[i+1])
	}
	fmt.Fprintln(w.out)
}
