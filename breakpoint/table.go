package breakpoint

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one named width threshold of a breakpoint table.
type Entry struct {
	Name      string
	Threshold float64
}

// Table is an ordered sequence of breakpoint entries, sorted ascending by
// threshold. Entries with equal thresholds keep their relative input order.
// Names are unique within a table.
type Table []Entry

// Parse builds a breakpoint table from a configuration string of
// comma-separated `name:number` pairs. Whitespace around names is trimmed
// and numbers are parsed leniently: the longest valid floating-point
// prefix counts, trailing garbage (units, typos) is ignored.
//
// A blank configuration yields an empty table. A pair without a colon,
// without a name, or without any numeric prefix makes the whole
// configuration unusable: Parse then returns a nil table together with an
// error describing the offending pair. Duplicate names keep their first
// position but take the last value.
func Parse(config string) (Table, error) {
	fields := strings.Split(config, ",")
	table := make(Table, 0, len(fields))
	position := make(map[string]int, len(fields))
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			continue
		}
		name, value, found := strings.Cut(field, ":")
		if !found {
			return nil, fmt.Errorf("breakpoint pair %q: missing ':'", strings.TrimSpace(field))
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("breakpoint pair %q: empty name", strings.TrimSpace(field))
		}
		threshold, ok := parseFloatPrefix(value)
		if !ok {
			return nil, fmt.Errorf("breakpoint %q: no numeric threshold in %q", name, strings.TrimSpace(value))
		}
		if at, dup := position[name]; dup {
			table[at].Threshold = threshold
			continue
		}
		position[name] = len(table)
		table = append(table, Entry{Name: name, Threshold: threshold})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Threshold < table[j].Threshold
	})
	return table, nil
}

// String returns the table in configuration-string form.
func (t Table) String() string {
	var b strings.Builder
	for i, entry := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %g", entry.Name, entry.Threshold)
	}
	return b.String()
}
