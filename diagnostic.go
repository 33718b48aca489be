package dcbor

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Diagnostic renders v using RFC 8949 §8 diagnostic notation, pretty
// printed across multiple lines for non-empty arrays and maps (spec.md
// §4.10/§6).
func Diagnostic(v Value) string {
	var b strings.Builder
	writeDiag(&b, v, 0, false)
	return b.String()
}

// DiagnosticFlat renders v as a single line of diagnostic notation, with
// no tag-name or summarizer annotation.
func DiagnosticFlat(v Value) string {
	var b strings.Builder
	writeDiagFlat(&b, v, false)
	return b.String()
}

// DiagnosticAnnotated renders v as Diagnostic does, but with the
// extensions of spec.md §4.10: a bracketed `/ name /` comment after any
// tag with a registered name, and `name(summary)` in place of a bare tag
// number wherever a summarizer is registered for it and succeeds. When the
// summarizer returns an error, the tag is rendered as if it had none.
func DiagnosticAnnotated(v Value) string {
	var b strings.Builder
	writeDiag(&b, v, 0, true)
	return b.String()
}

const diagIndent = "   " // three spaces per level, matching the annotated hex dump's indent

func writeDiag(b *strings.Builder, v Value, level int, annotate bool) {
	switch v.Kind() {
	case KindArray:
		elems, _ := v.Array()
		if len(elems) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, e := range elems {
			b.WriteString(strings.Repeat(diagIndent, level+1))
			writeDiag(b, e, level+1, annotate)
			if i < len(elems)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(diagIndent, level))
		b.WriteByte(']')

	case KindMap:
		m, _ := v.Map()
		entries := m.Iter()
		if len(entries) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, e := range entries {
			b.WriteString(strings.Repeat(diagIndent, level+1))
			writeDiagFlat(b, e.Key, annotate)
			b.WriteString(": ")
			writeDiag(b, e.Value, level+1, annotate)
			if i < len(entries)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(diagIndent, level))
		b.WriteByte('}')

	default:
		writeDiagFlat(b, v, annotate)
	}
}

func writeDiagFlat(b *strings.Builder, v Value, annotate bool) {
	switch v.Kind() {
	case KindUnsigned:
		fmt.Fprintf(b, "%d", v.u)

	case KindNegative:
		writeNegative(b, v.u)

	case KindBytes:
		bs, _ := v.Bytes()
		b.WriteString("h'")
		b.WriteString(hexString(bs))
		b.WriteByte('\'')

	case KindText:
		s, _ := v.Text()
		b.WriteString(strconv.Quote(s))

	case KindArray:
		elems, _ := v.Array()
		b.WriteByte('[')
		for i, e := range elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDiagFlat(b, e, annotate)
		}
		b.WriteByte(']')

	case KindMap:
		m, _ := v.Map()
		entries := m.Iter()
		b.WriteByte('{')
		for i, e := range entries {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDiagFlat(b, e.Key, annotate)
			b.WriteString(": ")
			writeDiagFlat(b, e.Value, annotate)
		}
		b.WriteByte('}')

	case KindTagged:
		writeTagged(b, v, annotate)

	case KindSimple:
		writeSimpleDiag(b, v)
	}
}

func writeNegative(b *strings.Builder, n uint64) {
	if n <= math.MaxInt64-1 {
		fmt.Fprintf(b, "%d", -1-int64(n))
		return
	}
	// n is large enough that -1-n overflows int64; fall back to big.Int.
	result := new(big.Int).SetUint64(n)
	result.Add(result, big.NewInt(1))
	result.Neg(result)
	b.WriteString(result.String())
}

func writeTagged(b *strings.Builder, v Value, annotate bool) {
	tagNum, content, _ := v.Tagged()

	if annotate {
		if summary, ok, err := summarizeTag(tagNum, content); ok && err == nil {
			name := tagNameOrNumber(tagNum)
			fmt.Fprintf(b, "%s(%s)", name, summary)
			return
		}
	}

	fmt.Fprintf(b, "%d(", tagNum)
	writeDiagFlat(b, content, annotate)
	b.WriteByte(')')

	if annotate {
		if name, ok := tagName(tagNum); ok {
			fmt.Fprintf(b, " / %s /", name)
		}
	}
}

func tagName(tagNum uint64) (name string, ok bool) {
	var t Tag
	WithTags(func(tags Tags) {
		t, ok = tags.LookupByNumber(tagNum)
	})
	return t.Name, ok && t.Name != ""
}

func tagNameOrNumber(tagNum uint64) string {
	if name, ok := tagName(tagNum); ok {
		return name
	}
	return strconv.FormatUint(tagNum, 10)
}

func summarizeTag(tagNum uint64, content Value) (summary string, ok bool, err error) {
	WithTags(func(tags Tags) {
		summary, ok, err = tags.Summarize(tagNum, content)
	})
	return summary, ok, err
}

func writeSimpleDiag(b *strings.Builder, v Value) {
	switch {
	case v.IsNull():
		b.WriteString("null")
	case v.IsBool():
		bb, _ := v.Bool()
		if bb {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case v.IsFloat():
		f, _ := v.Float()
		b.WriteString(formatDiagFloat(f))
	}
}

func formatDiagFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
