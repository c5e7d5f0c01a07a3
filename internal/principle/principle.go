// Package principle defines the closed catalog of CSM (Clean Software
// Methodology) principles that Checkstyle rules are classified under.
package principle

// Principle identifies one CSM principle. The set is closed: new rule
// associations may be added at runtime, new principle kinds may not.
type Principle int

// The eight CSM principles, in catalog order.
const (
	ExplanatoryLanguage Principle = iota
	ClearLayout
	SimpleConstructs
	BeConsistent
	NoUnusedContent
	AvoidDuplication
	CongruentImplementation
	ModularStructure
)

// UnmappedLabel is the sentinel label reported for rules that have no
// principle association.
const UnmappedLabel = "Unmapped"

// labels is the side table of display labels, indexed by Principle.
var labels = [...]string{
	ExplanatoryLanguage:     "Explanatory Language",
	ClearLayout:             "Clear Layout",
	SimpleConstructs:        "Simple Constructs",
	BeConsistent:            "Be Consistent",
	NoUnusedContent:         "No Unused Content",
	AvoidDuplication:        "Avoid Duplication",
	CongruentImplementation: "Congruent Implementation",
	ModularStructure:        "Modular Structure",
}

// Label returns the human-readable display label for p.
// Unknown values map to UnmappedLabel rather than panicking.
func Label(p Principle) string {
	if p < 0 || int(p) >= len(labels) {
		return UnmappedLabel
	}

	return labels[p]
}

// All returns every principle in catalog order.
func All() []Principle {
	all := make([]Principle, len(labels))
	for i := range all {
		all[i] = Principle(i)
	}

	return all
}

// Parse resolves a display label to its principle.
// The second result is false when no principle carries that label.
func Parse(label string) (Principle, bool) {
	for i, l := range labels {
		if l == label {
			return Principle(i), true
		}
	}

	return 0, false
}
