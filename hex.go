package dcbor

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// hexString is the only place this package turns bytes into a hex string;
// the cosmetics of hex-dump formatting beyond that (column alignment,
// grouping) are spec.md's "hex-dump formatting cosmetics" external
// collaborator, so encoding/hex is used directly rather than reaching for
// a dedicated formatting library — nothing in the corpus provides richer
// hex-dump cosmetics than the stdlib already does.
func hexString(b []byte) string { return hex.EncodeToString(b) }

// Hex returns the plain hexadecimal encoding of v's canonical bytes.
func Hex(v Value) string { return hexString(Encode(v)) }

// hexFragment is one semantically meaningful piece of an annotated hex
// dump: a run of bytes at a given nesting level, with an optional
// right-aligned comment describing what it means.
type hexFragment struct {
	level   int
	chunk   []byte
	note    string
	hasNote bool
}

// HexAnnotated returns an annotated hex dump of v: one line per semantic
// fragment (header, length prefix, payload), indented by nesting level,
// with right-aligned comments giving the decoded meaning of each
// fragment, per spec.md §4.10.
func HexAnnotated(v Value) string {
	frags := dumpFragments(v, 0)

	noteColumn := 0
	lines1 := make([]string, len(frags))
	for i, f := range frags {
		lines1[i] = f.firstColumn()
		if len(lines1[i]) > noteColumn {
			noteColumn = len(lines1[i])
		}
	}

	lines := make([]string, len(frags))
	for i, f := range frags {
		lines[i] = f.format(lines1[i], noteColumn)
	}
	return strings.Join(lines, "\n")
}

func (f hexFragment) firstColumn() string {
	return strings.Repeat(diagIndent, f.level) + hexString(f.chunk)
}

func (f hexFragment) format(column1 string, noteColumn int) string {
	if !f.hasNote {
		return column1
	}
	padTo := 1
	if p := noteColumn - len(column1) + 1; p > padTo {
		padTo = p
	}
	if padTo > 41 {
		padTo = 41
	}
	return column1 + strings.Repeat(" ", padTo) + "# " + f.note
}

func dumpFragments(v Value, level int) []hexFragment {
	switch v.Kind() {
	case KindUnsigned:
		u, _ := v.Unsigned()
		return []hexFragment{{level: level, chunk: Encode(v), note: fmt.Sprintf("unsigned(%d)", u), hasNote: true}}

	case KindNegative:
		n, _ := v.NegativeRaw()
		var b strings.Builder
		writeNegative(&b, n)
		return []hexFragment{{level: level, chunk: Encode(v), note: fmt.Sprintf("negative(%s)", b.String()), hasNote: true}}

	case KindBytes:
		data, _ := v.Bytes()
		head := appendVarint(nil, majorBytes, uint64(len(data)))
		items := []hexFragment{{level: level, chunk: head, note: fmt.Sprintf("bytes(%d)", len(data)), hasNote: true}}
		if len(data) > 0 {
			note, has := "", false
			if utf8.Valid(data) {
				note, has = strconv.Quote(string(data)), true
			}
			items = append(items, hexFragment{level: level + 1, chunk: data, note: note, hasNote: has})
		}
		return items

	case KindText:
		s, _ := v.Text()
		head := appendVarint(nil, majorText, uint64(len(s)))
		return []hexFragment{
			{level: level, chunk: head, note: fmt.Sprintf("text(%d)", len(s)), hasNote: true},
			{level: level + 1, chunk: []byte(s), note: strconv.Quote(s), hasNote: true},
		}

	case KindArray:
		elems, _ := v.Array()
		head := appendVarint(nil, majorArray, uint64(len(elems)))
		items := []hexFragment{{level: level, chunk: head, note: fmt.Sprintf("array(%d)", len(elems)), hasNote: true}}
		for _, e := range elems {
			items = append(items, dumpFragments(e, level+1)...)
		}
		return items

	case KindMap:
		m, _ := v.Map()
		entries := m.Iter()
		head := appendVarint(nil, majorMap, uint64(len(entries)))
		items := []hexFragment{{level: level, chunk: head, note: fmt.Sprintf("map(%d)", len(entries)), hasNote: true}}
		for _, e := range entries {
			items = append(items, dumpFragments(e.Key, level+1)...)
			items = append(items, dumpFragments(e.Value, level+1)...)
		}
		return items

	case KindTagged:
		tagNum, content, _ := v.Tagged()
		head := appendVarint(nil, majorTag, tagNum)
		note := fmt.Sprintf("tag(%d)", tagNum)
		if name, ok := tagName(tagNum); ok {
			note += "  ; " + name
		}
		items := []hexFragment{{level: level, chunk: head, note: note, hasNote: true}}
		items = append(items, dumpFragments(content, level+1)...)
		return items

	case KindSimple:
		var b strings.Builder
		writeSimpleDiag(&b, v)
		return []hexFragment{{level: level, chunk: Encode(v), note: b.String(), hasNote: true}}

	default:
		return nil
	}
}
