// Package checkstyle is the boundary to the external Checkstyle
// analysis engine. It discovers analyzable files, drives an engine run,
// and decodes the engine's XML audit output into raw findings.
package checkstyle

import "context"

// Finding is one raw audit event as emitted by the engine, before any
// classification. File may be empty for findings the engine could not
// anchor to a file; such findings are skipped downstream.
type Finding struct {
	// File is the originating file path as reported by the engine.
	File string
	// Source is the fully qualified rule-source name, e.g.
	// "com.puppycrawl.tools.checkstyle.checks.sizes.LineLengthCheck".
	Source string
	// Line is the 1-based line number. Zero or negative means the
	// finding is unanchored within the file.
	Line int
	// Message is the free-text audit message.
	Message string
	// Severity is the engine's severity label (error, warning, info, ignore).
	Severity string
}

// Engine produces findings for a batch of files. Implementations are
// one-shot synchronous producers: findings are returned in the order
// the engine emitted them, and a failed batch is fatal to the run.
type Engine interface {
	Analyze(ctx context.Context, files []string) ([]Finding, error)
}
