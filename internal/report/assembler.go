// Package report orchestrates the analysis pipeline and emits the
// resulting tables to the workbook sink and the console.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/csmtools/stylelens/internal/aggregate"
	"github.com/csmtools/stylelens/internal/checkstyle"
	"github.com/csmtools/stylelens/internal/principle"
	"github.com/csmtools/stylelens/internal/violation"
)

// Report holds the ordered record sequence and the three frequency
// tables for one analysis run. It is read-only once produced.
type Report struct {
	Records     []violation.Record
	ByFile      []aggregate.Entry
	ByPrinciple []aggregate.Entry
	ByRule      []aggregate.Entry
	GeneratedAt time.Time
}

// Total returns the number of violation records in the report.
func (r *Report) Total() int {
	return len(r.Records)
}

// UnmappedRules returns the rule table restricted to rules whose
// records resolved to the unmapped sentinel, in descending count order.
func (r *Report) UnmappedRules() []aggregate.Entry {
	var unmapped []violation.Record

	for _, record := range r.Records {
		if record.Principle == principle.UnmappedLabel {
			unmapped = append(unmapped, record)
		}
	}

	return aggregate.By(unmapped, aggregate.ByRule)
}

// Assembler drives one analysis run: analyze, normalize, aggregate.
// An instance may be reused for sequential runs; its finding buffer is
// cleared at the start of each run. Concurrent runs on one instance
// are unsupported.
type Assembler struct {
	engine     checkstyle.Engine
	normalizer *violation.Normalizer
	records    []violation.Record
}

// NewAssembler wires an engine to a normalizer.
func NewAssembler(engine checkstyle.Engine, normalizer *violation.Normalizer) *Assembler {
	return &Assembler{engine: engine, normalizer: normalizer}
}

// Run analyzes the file set and assembles the report. An empty file
// set yields an empty report. An engine failure is fatal: no partial
// report is returned.
func (a *Assembler) Run(ctx context.Context, files []string) (*Report, error) {
	a.records = nil

	findings, err := a.engine.Analyze(ctx, files)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	a.records = a.normalizer.NormalizeAll(findings)

	return &Report{
		Records:     a.records,
		ByFile:      aggregate.By(a.records, aggregate.ByFile),
		ByPrinciple: aggregate.By(a.records, aggregate.ByPrinciple),
		ByRule:      aggregate.By(a.records, aggregate.ByRule),
		GeneratedAt: time.Now(),
	}, nil
}
