// Package dump implements the textual dump emitter described in spec
// §4.6: section headings, column-wrapped array formatting, and the
// deferred-section mechanism that lets the Global Subr INDEX, Private
// DICT, and Local Subr INDEX sections wait until every charstring has
// been interpreted (and their subroutine dump caches populated) before
// being written out.
//
// No teacher file does this — seehuhn.de/go/sfnt only ever builds or
// writes binary fonts, never a textual dump — so this package is
// written from the spec's own worked examples (§8), using the
// accumulate-into-a-buffer-then-flush idiom seen throughout
// seehuhn.de/go/sfnt/cff/write.go and seehuhn.de/go/sfnt/type1/write.go.
package dump

// GlyphSelector names a single glyph to restrict the dump to, via the
// CLI's -g flag.
type GlyphSelector struct {
	// Kind is one of "", "gid", "name", "cid".
	Kind string
	GID  int
	Name string
	CID  int
}

// Options bundles the CLI flags that affect the shape of the dump
// (spec §6). Flags that affect filtering/decoding (e.g. -deflate, -hex,
// -start) are not fields of Options.
type Options struct {
	Charstrings bool // -c: dump all charstrings and subroutines
	Offsets     bool // -offsets: include INDEX offset arrays
	Long        bool // -long: one entry per line in tabular sections
	HintMask    bool // -hm: explain hintmask/cntrmask bits
	Unsub       bool // -unsub: attempt to dump unused subroutines
	Glyph       GlyphSelector
}

// WantsGlyph reports whether the dump should include the given glyph,
// given the -g glyph selector (no selector means "dump everything", but
// see Options.Charstrings — without -c or -g nothing glyph-level is
// dumped at all).
func (o Options) WantsGlyph(gid int, name string, cid int, isCID bool) bool {
	switch o.Glyph.Kind {
	case "":
		return o.Charstrings
	case "gid":
		return gid == o.Glyph.GID
	case "name":
		return !isCID && name == o.Glyph.Name
	case "cid":
		return isCID && cid == o.Glyph.CID
	default:
		return false
	}
}
