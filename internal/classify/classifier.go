// Package classify owns the mutable mapping from Checkstyle rule
// identifiers to CSM principles.
package classify

import (
	"github.com/csmtools/stylelens/internal/principle"
)

// Classifier maps rule identifiers to exactly one principle each.
// Keys are matched verbatim and case-sensitively; empty and whitespace
// keys are accepted as literal identifiers. A Classifier is not safe
// for concurrent mutation; configure it before analysis starts.
type Classifier struct {
	rules map[string]principle.Principle
}

// New returns an empty classifier with no associations.
func New() *Classifier {
	return &Classifier{rules: make(map[string]principle.Principle)}
}

// NewDefault returns a classifier populated with the default seed table.
func NewDefault() *Classifier {
	return NewFromSeed(DefaultSeed())
}

// NewFromSeed returns a classifier populated from the given entries,
// applied in order with last-write-wins semantics.
func NewFromSeed(seed []SeedEntry) *Classifier {
	c := New()
	for _, entry := range seed {
		c.Add(entry.Rule, entry.Principle)
	}

	return c
}

// Add inserts or overwrites the association for ruleID.
// Re-adding an existing rule silently replaces the prior principle.
func (c *Classifier) Add(ruleID string, p principle.Principle) {
	c.rules[ruleID] = p
}

// Remove deletes any association for ruleID. Removing an absent rule
// is a no-op.
func (c *Classifier) Remove(ruleID string) {
	delete(c.rules, ruleID)
}

// Classify returns the display label of the principle associated with
// ruleID, or principle.UnmappedLabel when no association exists.
func (c *Classifier) Classify(ruleID string) string {
	p, ok := c.rules[ruleID]
	if !ok {
		return principle.UnmappedLabel
	}

	return principle.Label(p)
}

// Principle returns the principle associated with ruleID.
// The second result is false when no association exists.
func (c *Classifier) Principle(ruleID string) (principle.Principle, bool) {
	p, ok := c.rules[ruleID]

	return p, ok
}

// Has reports whether an association exists for ruleID.
func (c *Classifier) Has(ruleID string) bool {
	_, ok := c.rules[ruleID]

	return ok
}

// RuleIDs returns the current key set. Order is unspecified; callers
// needing determinism must sort the result themselves.
func (c *Classifier) RuleIDs() []string {
	ids := make([]string, 0, len(c.rules))
	for id := range c.rules {
		ids = append(ids, id)
	}

	return ids
}

// Count returns the number of current associations.
func (c *Classifier) Count() int {
	return len(c.rules)
}

// Clear removes all associations.
func (c *Classifier) Clear() {
	clear(c.rules)
}
