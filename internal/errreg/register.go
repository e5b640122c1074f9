// Package errreg implements the error register and feature-flag summary
// described in spec §4.7/§7: a map from diagnostic message to repetition
// count, plus a small set of "special feature" flags surfaced in the
// dump's closing summary.
//
// Grounded on the invalidSince/unsupported error-constructor pattern used
// throughout seehuhn.de/go/sfnt/cff and seehuhn.de/go/sfnt/type1, adapted
// from "construct and return an error that aborts the parse" to
// "register a message, keep going".
package errreg

import (
	"fmt"
	"sort"
)

// Register collects diagnostic messages with repetition counts. The
// zero value is ready to use.
type Register struct {
	counts map[string]int
	order  []string

	flags  map[string]bool
	order2 []string
}

// New returns an empty Register.
func New() *Register {
	return &Register{
		counts: make(map[string]int),
		flags:  make(map[string]bool),
	}
}

// Add records one occurrence of msg.
func (r *Register) Add(msg string) {
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	if r.counts[msg] == 0 {
		r.order = append(r.order, msg)
	}
	r.counts[msg]++
}

// Addf records one occurrence of a formatted message.
func (r *Register) Addf(format string, args ...interface{}) {
	r.Add(fmt.Sprintf(format, args...))
}

// Flag records a boolean info-message flag (e.g. "Font contains flex
// segments"); repeated Flag calls with the same name are idempotent.
func (r *Register) Flag(name string) {
	if r.flags == nil {
		r.flags = make(map[string]bool)
	}
	if !r.flags[name] {
		r.order2 = append(r.order2, name)
	}
	r.flags[name] = true
}

// HasFlag reports whether the named flag was ever set.
func (r *Register) HasFlag(name string) bool {
	return r.flags[name]
}

// Messages returns every distinct recorded error message once, with its
// repetition count, in first-seen order.
func (r *Register) Messages() []Message {
	out := make([]Message, 0, len(r.order))
	for _, msg := range r.order {
		out = append(out, Message{Text: msg, Count: r.counts[msg]})
	}
	return out
}

// Flags returns every distinct recorded info-message flag, in first-seen
// order.
func (r *Register) Flags() []string {
	out := make([]string, len(r.order2))
	copy(out, r.order2)
	return out
}

// SortedFlags returns the flags sorted alphabetically; used when a
// deterministic order independent of discovery order is wanted.
func (r *Register) SortedFlags() []string {
	out := r.Flags()
	sort.Strings(out)
	return out
}

// Message is one distinct diagnostic with its repetition count.
type Message struct {
	Text  string
	Count int
}

// Reset clears the register for reuse on the next font.
func (r *Register) Reset() {
	r.counts = make(map[string]int)
	r.order = nil
	r.flags = make(map[string]bool)
	r.order2 = nil
}
