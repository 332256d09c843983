package format

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes a strict EDN representation.
//
// Only the subset our payloads need is covered: maps, vectors, strings,
// numbers, booleans and nil. Structs are converted through JSON first so json
// tags decide key names; camelCase tags become kebab-case keywords
// (daysInMonth -> :days-in-month).
func WriteEDN(w io.Writer, v any, pretty bool) error {
	x, err := jsonRoundTrip(v)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := ednEncoder{pretty: pretty, indent: 2}
	enc.writeAny(&buf, x, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

type ednEncoder struct {
	pretty bool
	indent int
}

func (e ednEncoder) writeAny(buf *bytes.Buffer, v any, level int) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case float64:
		// Day numbers and years arrive as float64; print them as ints.
		if float64(int64(t)) == t {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		buf.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		e.writeVec(buf, t, level)
	case map[string]any:
		e.writeMap(buf, t, level)
	default:
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

func (e ednEncoder) sep(buf *bytes.Buffer, last bool) {
	if last {
		return
	}
	if e.pretty {
		buf.WriteByte('\n')
	} else {
		buf.WriteByte(' ')
	}
}

func (e ednEncoder) pad(buf *bytes.Buffer, level int) {
	if e.pretty {
		buf.WriteString(strings.Repeat(" ", level*e.indent))
	}
}

func (e ednEncoder) writeVec(buf *bytes.Buffer, xs []any, level int) {
	buf.WriteByte('[')
	if len(xs) == 0 {
		buf.WriteByte(']')
		return
	}
	if e.pretty {
		buf.WriteByte('\n')
	}
	for i, it := range xs {
		e.pad(buf, level+1)
		e.writeAny(buf, it, level+1)
		e.sep(buf, i == len(xs)-1)
	}
	if e.pretty {
		buf.WriteByte('\n')
		e.pad(buf, level)
	}
	buf.WriteByte(']')
}

func (e ednEncoder) writeMap(buf *bytes.Buffer, m map[string]any, level int) {
	buf.WriteByte('{')
	if len(m) == 0 {
		buf.WriteByte('}')
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if e.pretty {
		buf.WriteByte('\n')
	}
	for i, k := range keys {
		e.pad(buf, level+1)
		buf.WriteByte(':')
		buf.WriteString(ednKeyword(k))
		buf.WriteByte(' ')
		e.writeAny(buf, m[k], level+1)
		e.sep(buf, i == len(keys)-1)
	}
	if e.pretty {
		buf.WriteByte('\n')
		e.pad(buf, level)
	}
	buf.WriteByte('}')
}

// ednKeyword turns a JSON field name into a kebab-case keyword name:
// monthName -> month-name, days_in_month -> days-in-month.
func ednKeyword(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '_':
			b.WriteByte('-')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}
