package violation

import (
	"path/filepath"
	"strings"

	"github.com/csmtools/stylelens/internal/checkstyle"
	"github.com/csmtools/stylelens/internal/classify"
)

// checkSuffix is the conventional trailing suffix of Checkstyle rule
// source class names, stripped before classifier lookup.
const checkSuffix = "Check"

// Normalizer converts raw findings into records using a classifier for
// the principle lookup. Normalization never fails: malformed rule
// sources degrade to "Unmapped".
type Normalizer struct {
	classifier *classify.Classifier
	snippets   *SnippetLoader
}

// NewNormalizer returns a normalizer backed by the given classifier.
// Snippet loading is enabled; findings whose files cannot be read get
// empty snippets.
func NewNormalizer(classifier *classify.Classifier) *Normalizer {
	return &Normalizer{
		classifier: classifier,
		snippets:   NewSnippetLoader(),
	}
}

// Normalize converts one finding. The second result is false when the
// finding carries no file reference: such findings are deliberately
// skipped, not normalized.
func (n *Normalizer) Normalize(f checkstyle.Finding) (Record, bool) {
	if f.File == "" {
		return Record{}, false
	}

	rule := RuleID(f.Source)

	return Record{
		FileName:   filepath.Base(f.File),
		FilePrefix: filepath.Base(filepath.Dir(f.File)),
		Rule:       rule,
		Principle:  n.classifier.Classify(rule),
		Line:       f.Line,
		Severity:   f.Severity,
		Message:    f.Message,
		Snippet:    n.snippets.Line(f.File, f.Line),
	}, true
}

// NormalizeAll converts a batch in emission order, skipping findings
// without a file reference. It never reorders or deduplicates.
func (n *Normalizer) NormalizeAll(findings []checkstyle.Finding) []Record {
	records := make([]Record, 0, len(findings))

	for _, f := range findings {
		record, ok := n.Normalize(f)
		if ok {
			records = append(records, record)
		}
	}

	return records
}

// RuleID derives the rule identifier from a fully qualified rule-source
// name: the substring after the last dot, minus a trailing "Check".
func RuleID(source string) string {
	id := source

	dot := strings.LastIndex(source, ".")
	if dot >= 0 && dot < len(source)-1 {
		id = source[dot+1:]
	}

	return strings.TrimSuffix(id, checkSuffix)
}
