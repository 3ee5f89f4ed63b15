package metadata

import (
	"regexp"
	"strconv"
	"strings"
)

// fragmentLine matches one `key: value` line of a merge fragment. The
// fragment parser is deliberately simplified: line-oriented, flat keys,
// scalar values. Anything it cannot read is skipped, never fatal.
var fragmentLine = regexp.MustCompile(`^([A-Za-z0-9_][A-Za-z0-9_.-]*)\s*:\s?(.*)$`)

// parseFragment reads a merge fragment into ordered entries. Blank lines,
// comment lines, and bare document delimiters are skipped silently;
// unmatched lines are logged and skipped so the well-formed remainder
// still merges.
func (g *Generator) parseFragment(fragment string) []entry {
	var entries []entry

	for _, raw := range strings.Split(fragment, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || line == "---" || line == "..." {
			continue
		}

		m := fragmentLine.FindStringSubmatch(line)
		if m == nil {
			g.log.Warn("skipping unparseable fragment line", "line", line)
			continue
		}

		entries = append(entries, entry{key: m[1], value: coerce(m[2])})
	}

	return entries
}

// coerce maps a raw scalar onto the fragment value domain: booleans,
// null/empty, numbers, quoted strings, and everything else as a string.
func coerce(raw string) any {
	value := strings.TrimSpace(raw)

	switch value {
	case "":
		return nil
	case "null", "~":
		return nil
	case "true":
		return true
	case "false":
		return false
	}

	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		inner := value[1 : len(value)-1]
		inner = strings.ReplaceAll(inner, `\"`, `"`)
		return inner
	}

	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}

	return value
}
