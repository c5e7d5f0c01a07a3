// Package violation turns raw Checkstyle findings into normalized,
// principle-classified violation records.
package violation

// Record is one finding after classification. Records are values and
// are never mutated after construction.
type Record struct {
	// FileName is the display name of the source file (base name only).
	FileName string
	// FilePrefix is the parent directory name, when derivable.
	FilePrefix string
	// Rule is the Checkstyle rule identifier with any "Check" suffix stripped.
	Rule string
	// Principle is the resolved CSM principle display label, or "Unmapped".
	Principle string
	// Line is the 1-based line number. Zero or negative marks an
	// unanchored finding; such records are still representable.
	Line int
	// Severity is the engine's severity label, copied verbatim.
	Severity string
	// Message is the audit message, copied verbatim.
	Message string
	// Snippet is the trimmed source line at Line, when readable.
	Snippet string
}
