package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const auditFixture = `<?xml version="1.0" encoding="UTF-8"?>
<checkstyle version="10.12.4">
<file name="/src/uoa/Sample.java">
<error line="3" severity="warning" message="Line is longer than 100 characters."
 source="com.puppycrawl.tools.checkstyle.checks.sizes.LineLengthCheck"/>
<error line="8" severity="warning" message="Line is longer than 100 characters."
 source="com.puppycrawl.tools.checkstyle.checks.sizes.LineLengthCheck"/>
<error line="5" severity="warning" message="Unknown thing."
 source="com.example.FooCheck"/>
</file>
</checkstyle>`

func writeAuditFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audit.xml")
	require.NoError(t, os.WriteFile(path, []byte(auditFixture), 0o644))

	return path
}

func TestRunCommand_XMLReportToWorkbook(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "Sample.java"), []byte("class Sample {}\n"), 0o644))

	output := filepath.Join(t.TempDir(), "report.xlsx")

	cmd := NewRunCommand()
	cmd.SetArgs([]string{srcDir, output, "--xml-report", writeAuditFixture(t), "--no-color"})

	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	require.NoError(t, cmd.Execute())

	book, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer book.Close()

	assert.Len(t, book.GetSheetList(), 4)

	rule, err := book.GetCellValue("Summary by Rule", "A2")
	require.NoError(t, err)
	assert.Equal(t, "LineLength", rule)

	principleKey, err := book.GetCellValue("Summary by CSM Principle", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Clear Layout", principleKey)

	assert.Contains(t, stdout.String(), "Total violations found: 3")
	assert.Contains(t, stderr.String(), "progress:")
}

func TestRunCommand_MissingDirectoryIsFatal(t *testing.T) {
	cmd := NewRunCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope"), "out.xlsx"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestRunCommand_DefaultOutputPathIsTimestamped(t *testing.T) {
	t.Parallel()

	rc := &RunCommand{now: func() time.Time {
		return time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	}}

	path := rc.defaultOutputPath("/reports")

	assert.Equal(t, filepath.Join("/reports", "csm_analysis_report_20260827_120000.xlsx"), path)
}

func TestRunCommand_InteractiveFlow(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "Sample.java"), []byte("class Sample {}\n"), 0o644))

	output := filepath.Join(t.TempDir(), "interactive.xlsx")

	cmd := NewRunCommand()
	cmd.SetArgs([]string{"--xml-report", writeAuditFixture(t), "--no-color"})

	stdin := strings.NewReader(srcDir + "\n" + output + "\nn\n")

	var stdout bytes.Buffer

	cmd.SetIn(stdin)
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "=== Stylelens CSM Analysis ===")
	assert.FileExists(t, output)
}

func TestRunCommand_InteractiveEmptyDirectoryExits(t *testing.T) {
	cmd := NewRunCommand()
	cmd.SetArgs([]string{})

	var stdout bytes.Buffer

	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "No directory specified. Exiting.")
}

func TestRunCommand_InteractiveCustomizeMappings(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "Sample.java"), []byte("class Sample {}\n"), 0o644))

	output := filepath.Join(t.TempDir(), "custom.xlsx")

	cmd := NewRunCommand()
	cmd.SetArgs([]string{"--xml-report", writeAuditFixture(t), "--no-color"})

	// Directory, output, customize=yes, add Foo -> principle 2
	// (Clear Layout), then continue.
	input := srcDir + "\n" + output + "\ny\n1\nFoo\n2\n4\n"

	var stdout bytes.Buffer

	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "Added mapping: Foo -> Clear Layout")

	book, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer book.Close()

	// With Foo mapped, no violation stays unmapped.
	first, err := book.GetCellValue("Summary by CSM Principle", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Clear Layout", first)

	second, err := book.GetCellValue("Summary by CSM Principle", "A3")
	require.NoError(t, err)
	assert.NotEqual(t, "Unmapped", second)
}
