package violation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmtools/stylelens/internal/checkstyle"
	"github.com/csmtools/stylelens/internal/classify"
	"github.com/csmtools/stylelens/internal/principle"
)

func TestRuleID_StripsPackageAndCheckSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LineLength", RuleID("com.example.checks.LineLengthCheck"))
	assert.Equal(t, "LeftCurly", RuleID("com.puppycrawl.tools.checkstyle.checks.blocks.LeftCurlyCheck"))
}

func TestRuleID_NoPackage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LineLength", RuleID("LineLengthCheck"))
	assert.Equal(t, "Foo", RuleID("Foo"))
}

func TestRuleID_SuffixStrippedExactlyOnce(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DoubleCheck", RuleID("a.b.DoubleCheckCheck"))
}

func TestRuleID_EmptySource(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", RuleID(""))
}

func TestNormalize_MapsKnownRule(t *testing.T) {
	t.Parallel()

	c := classify.New()
	c.Add("LineLength", principle.ClearLayout)
	n := NewNormalizer(c)

	record, ok := n.Normalize(checkstyle.Finding{
		File:     "/src/main/java/uoa/Main.java",
		Source:   "com.puppycrawl.tools.checkstyle.checks.sizes.LineLengthCheck",
		Line:     42,
		Message:  "Line is longer than 100 characters.",
		Severity: "warning",
	})

	require.True(t, ok)
	assert.Equal(t, "Main.java", record.FileName)
	assert.Equal(t, "uoa", record.FilePrefix)
	assert.Equal(t, "LineLength", record.Rule)
	assert.Equal(t, "Clear Layout", record.Principle)
	assert.Equal(t, 42, record.Line)
	assert.Equal(t, "warning", record.Severity)
	assert.Equal(t, "Line is longer than 100 characters.", record.Message)
}

func TestNormalize_UnknownRuleDegradesToUnmapped(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(classify.New())

	record, ok := n.Normalize(checkstyle.Finding{
		File:   "/tmp/Foo.java",
		Source: "com.example.FooCheck",
		Line:   1,
	})

	require.True(t, ok)
	assert.Equal(t, principle.UnmappedLabel, record.Principle)
}

func TestNormalize_AbsentFileIsSkipped(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(classify.NewDefault())

	_, ok := n.Normalize(checkstyle.Finding{Source: "a.b.LineLengthCheck", Line: 1})

	assert.False(t, ok)
}

func TestNormalize_UnanchoredLineIsRepresentable(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(classify.NewDefault())

	record, ok := n.Normalize(checkstyle.Finding{File: "/tmp/Foo.java", Source: "x.FooCheck", Line: 0})

	require.True(t, ok)
	assert.Equal(t, 0, record.Line)
	assert.Empty(t, record.Snippet)
}

func TestNormalizeAll_SkipsOnlyAbsentFiles(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(classify.NewDefault())

	records := n.NormalizeAll([]checkstyle.Finding{
		{Source: "a.OrphanCheck", Line: 1},
	})

	assert.Empty(t, records)
}

func TestNormalizeAll_PreservesEmissionOrder(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(classify.NewDefault())

	records := n.NormalizeAll([]checkstyle.Finding{
		{File: "/b/Second.java", Source: "x.LeftCurlyCheck", Line: 2},
		{File: "/a/First.java", Source: "x.LineLengthCheck", Line: 1},
		{File: "/b/Second.java", Source: "x.LeftCurlyCheck", Line: 2},
	})

	require.Len(t, records, 3)
	assert.Equal(t, "Second.java", records[0].FileName)
	assert.Equal(t, "First.java", records[1].FileName)
	assert.Equal(t, records[0], records[2], "duplicates are preserved, not collapsed")
}

func TestNormalize_SnippetFromSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Sample.java")
	require.NoError(t, os.WriteFile(path, []byte("package x;\n\n  int wide = 1;\n"), 0o644))

	n := NewNormalizer(classify.NewDefault())

	record, ok := n.Normalize(checkstyle.Finding{File: path, Source: "x.LineLengthCheck", Line: 3})

	require.True(t, ok)
	assert.Equal(t, "int wide = 1;", record.Snippet)
}

func TestSnippetLoader_OutOfRangeAndUnreadable(t *testing.T) {
	t.Parallel()

	loader := NewSnippetLoader()

	assert.Empty(t, loader.Line("/nonexistent/File.java", 1))

	path := filepath.Join(t.TempDir(), "Short.java")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	assert.Equal(t, "one", loader.Line(path, 1))
	assert.Empty(t, loader.Line(path, 99))
	assert.Empty(t, loader.Line(path, 0))
}
