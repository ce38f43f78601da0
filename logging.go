package glide

import (
	"fmt"
	"os"
)

// Logger is a minimal structured-logging hook: a function that formats a
// message plus a flat set of key/value pairs. The zero value is a no-op,
// so a Reactor built without one behaves exactly as if logging didn't
// exist.
type Logger func(level, msg string, kv ...any)

// log calls r.Log if one is set, doing nothing otherwise.
func (r *Reactor) log(level, msg string, kv ...any) {
	if r.Log != nil {
		r.Log(level, msg, kv...)
	}
}

// StderrLogger writes lines of the form "[glide] level: msg k=v k=v..."
// to os.Stderr.
func StderrLogger(level, msg string, kv ...any) {
	fmt.Fprintf(os.Stderr, "[glide] %s: %s", level, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(os.Stderr, " %v=%v", kv[i], kv[i+1])
	}
	fmt.Fprintln(os.Stderr)
}
