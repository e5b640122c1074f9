package dump

import (
	"fmt"
	"sort"
	"strings"

	"github.com/janpe2/CFFDump/internal/errreg"
)

// Emitter accumulates the textual dump described in spec §4.6. Sections
// that depend on a subroutine's first-use dump cache (Global Subr
// INDEX, each FD's Private DICT, each FD's Local Subr INDEX) are
// written into separate buffers and only stitched into the final
// output by Finalize, once every charstring has been interpreted.
type Emitter struct {
	Opts Options
	Reg  *errreg.Register

	main strings.Builder

	globalSubrs strings.Builder

	// One entry per font dict (non-CID fonts have exactly one).
	private    []*strings.Builder
	localSubrs []*strings.Builder
}

// NewEmitter returns an Emitter ready to receive nFD font dicts' worth
// of deferred Private DICT / Local Subr INDEX content (nFD is 1 for a
// non-CID font).
func NewEmitter(opts Options, reg *errreg.Register, nFD int) *Emitter {
	e := &Emitter{Opts: opts, Reg: reg}
	e.private = make([]*strings.Builder, nFD)
	e.localSubrs = make([]*strings.Builder, nFD)
	for i := range e.private {
		e.private[i] = &strings.Builder{}
		e.localSubrs[i] = &strings.Builder{}
	}
	return e
}

// Printf writes directly to the immediate (non-deferred) output.
func (e *Emitter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&e.main, format, args...)
}

// Heading writes a section heading of the form used throughout the
// spec's worked examples: "Name (0xOFFSET):" followed by a newline.
func (e *Emitter) Heading(name string, offset int) {
	if offset >= 0 {
		fmt.Fprintf(&e.main, "%s (0x%08x):\n", name, offset)
	} else {
		fmt.Fprintf(&e.main, "%s:\n", name)
	}
}

// GlobalSubrsBuffer returns the deferred buffer that Global Subr INDEX
// dump text is written into.
func (e *Emitter) GlobalSubrsBuffer() *strings.Builder { return &e.globalSubrs }

// PrivateBuffer returns the deferred buffer for FD fd's Private DICT
// section.
func (e *Emitter) PrivateBuffer(fd int) *strings.Builder { return e.private[fd] }

// LocalSubrsBuffer returns the deferred buffer for FD fd's Local Subr
// INDEX section.
func (e *Emitter) LocalSubrsBuffer(fd int) *strings.Builder { return e.localSubrs[fd] }

// FormatArray column-wraps a slice of pre-formatted strings, padding
// every entry to the width of the widest element in values, perRow
// entries to a line unless Opts.Long is set (one entry per line).
func (e *Emitter) FormatArray(indent string, values []string, perRow int) string {
	if len(values) == 0 {
		return ""
	}
	if e.Opts.Long {
		perRow = 1
	}
	width := 0
	for _, v := range values {
		if len(v) > width {
			width = len(v)
		}
	}
	var b strings.Builder
	for i, v := range values {
		if i%perRow == 0 {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(indent)
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%-*s", width, v)
	}
	b.WriteByte('\n')
	return b.String()
}

// Finalize stitches together the immediate output and every deferred
// section, in this fixed order: main content
// (header/Name INDEX/Top DICT/String INDEX/charset/encoding/FDSelect/
// FDArray/charstrings, written progressively as they're parsed), then
// the Global Subr INDEX, then each FD's Private DICT and Local Subr
// INDEX, then the closing error/feature-flag summary.
func (e *Emitter) Finalize() string {
	var b strings.Builder
	b.WriteString(e.main.String())
	if e.globalSubrs.Len() > 0 {
		b.WriteString(e.globalSubrs.String())
	}
	for i := range e.private {
		if e.private[i].Len() > 0 {
			b.WriteString(e.private[i].String())
		}
		if e.localSubrs[i].Len() > 0 {
			b.WriteString(e.localSubrs[i].String())
		}
	}
	e.writeSummary(&b)
	return b.String()
}

func (e *Emitter) writeSummary(b *strings.Builder) {
	if e.Reg == nil {
		return
	}
	msgs := e.Reg.Messages()
	flags := e.Reg.SortedFlags()
	if len(msgs) == 0 && len(flags) == 0 {
		return
	}
	b.WriteString("Messages:\n")
	sort.SliceStable(msgs, func(i, j int) bool { return false }) // preserve first-seen order
	for _, m := range msgs {
		if m.Count > 1 {
			fmt.Fprintf(b, "    %s (x%d)\n", m.Text, m.Count)
		} else {
			fmt.Fprintf(b, "    %s\n", m.Text)
		}
	}
	for _, f := range flags {
		fmt.Fprintf(b, "    [%s]\n", f)
	}
}
