// Package aggregate builds sorted frequency tables over violation
// records.
package aggregate

import (
	"sort"

	"github.com/csmtools/stylelens/internal/violation"
)

// Entry is one row of a frequency table.
type Entry struct {
	Key   string
	Count int
}

// KeyFunc extracts the grouping key from a record.
type KeyFunc func(violation.Record) string

// By groups records by the key function, counts occurrences, and
// returns entries sorted by descending count. Ties are broken by
// ascending key so the result never depends on map iteration order.
// Empty input yields an empty table.
func By(records []violation.Record, key KeyFunc) []Entry {
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}

	entries := make([]Entry, 0, len(counts))
	for k, n := range counts {
		entries = append(entries, Entry{Key: k, Count: n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}

		return entries[i].Key < entries[j].Key
	})

	return entries
}

// ByFile groups by source file display name.
func ByFile(r violation.Record) string { return r.FileName }

// ByPrinciple groups by resolved CSM principle label.
func ByPrinciple(r violation.Record) string { return r.Principle }

// ByRule groups by Checkstyle rule identifier.
func ByRule(r violation.Record) string { return r.Rule }
