// Package metadata lowers a template configuration (plus optional
// manuscript metadata) into the metadata block consumed by the downstream
// document compiler. Key order, quoting, and indentation are part of the
// contract: the downstream compiler is sensitive to both, so emission is
// hand-rolled over an ordered document rather than delegated to a
// marshaler.
package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inkpress/typeset/internal/format"
)

// document is an insertion-ordered set of key/value entries. Values are a
// closed variant set: nil, bool, int, float64, string, []any, *document.
// The merge fragment lands here before anything is serialized, so
// last-write-wins merging never has to reach back into typed records.
type document struct {
	entries []entry
}

type entry struct {
	key   string
	value any
}

// set appends the key or, if already present, replaces its value in place
// so merged keys keep their original position.
func (d *document) set(key string, value any) {
	for i := range d.entries {
		if d.entries[i].key == key {
			d.entries[i].value = value
			return
		}
	}
	d.entries = append(d.entries, entry{key: key, value: value})
}

// get returns the value for key and whether it exists.
func (d *document) get(key string) (any, bool) {
	for i := range d.entries {
		if d.entries[i].key == key {
			return d.entries[i].value, true
		}
	}
	return nil, false
}

// render serializes the document at the given nesting level. Two spaces
// per level.
func (d *document) render(sb *strings.Builder, level int) {
	for _, e := range d.entries {
		writeEntry(sb, level, e.key, e.value)
	}
}

func indent(sb *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		sb.WriteString("  ")
	}
}

func writeEntry(sb *strings.Builder, level int, key string, value any) {
	indent(sb, level)
	sb.WriteString(key)
	sb.WriteString(":")

	switch v := value.(type) {
	case nil:
		// Bare key: no value at all.
		sb.WriteString("\n")
	case bool:
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatBool(v))
		sb.WriteString("\n")
	case int:
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString("\n")
	case int64:
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatInt(v, 10))
		sb.WriteString("\n")
	case float64:
		sb.WriteString(" ")
		sb.WriteString(format.Number(v))
		sb.WriteString("\n")
	case string:
		sb.WriteString(" ")
		sb.WriteString(format.YAMLString(v))
		sb.WriteString("\n")
	case []any:
		writeArray(sb, level, v)
	case []string:
		arr := make([]any, len(v))
		for i, s := range v {
			arr[i] = s
		}
		writeArray(sb, level, arr)
	case *document:
		sb.WriteString("\n")
		v.render(sb, level+1)
	default:
		// Closed variant set; anything else is a programming defect and
		// renders as its string form rather than crashing a generation.
		sb.WriteString(" ")
		sb.WriteString(format.YAMLString(stringify(v)))
		sb.WriteString("\n")
	}
}

func writeArray(sb *strings.Builder, level int, items []any) {
	if len(items) == 0 {
		sb.WriteString(" []\n")
		return
	}
	sb.WriteString("\n")
	for _, item := range items {
		if nested, ok := item.(*document); ok {
			indent(sb, level+1)
			sb.WriteString("-\n")
			nested.render(sb, level+2)
			continue
		}
		indent(sb, level+1)
		sb.WriteString("- ")
		sb.WriteString(scalar(item))
		sb.WriteString("\n")
	}
}

func scalar(v any) string {
	switch s := v.(type) {
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return format.Number(s)
	case string:
		return format.YAMLString(s)
	default:
		return format.YAMLString(stringify(v))
	}
}

func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}
