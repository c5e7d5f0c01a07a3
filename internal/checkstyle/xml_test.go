package checkstyle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAudit = `<?xml version="1.0" encoding="UTF-8"?>
<checkstyle version="10.12.4">
<file name="/src/main/java/uoa/sample/SampleCode.java">
<error line="3" severity="warning" message="Line is longer than 100 characters."
 source="com.puppycrawl.tools.checkstyle.checks.sizes.LineLengthCheck"/>
<error line="7" severity="warning" message="&apos;{&apos; at column 1 should be on the previous line."
 source="com.puppycrawl.tools.checkstyle.checks.blocks.LeftCurlyCheck"/>
</file>
<file name="/src/main/java/uoa/Main.java">
<error line="12" severity="error" message="Missing a Javadoc comment."
 source="com.puppycrawl.tools.checkstyle.checks.javadoc.MissingJavadocMethodCheck"/>
</file>
</checkstyle>`

func TestDecodeAudit_PreservesDocumentOrder(t *testing.T) {
	t.Parallel()

	findings, err := DecodeAudit(strings.NewReader(sampleAudit))
	require.NoError(t, err)
	require.Len(t, findings, 3)

	assert.Equal(t, "/src/main/java/uoa/sample/SampleCode.java", findings[0].File)
	assert.Equal(t, "com.puppycrawl.tools.checkstyle.checks.sizes.LineLengthCheck", findings[0].Source)
	assert.Equal(t, 3, findings[0].Line)
	assert.Equal(t, "warning", findings[0].Severity)

	assert.Equal(t, "com.puppycrawl.tools.checkstyle.checks.blocks.LeftCurlyCheck", findings[1].Source)

	assert.Equal(t, "/src/main/java/uoa/Main.java", findings[2].File)
	assert.Equal(t, "error", findings[2].Severity)
	assert.Equal(t, 12, findings[2].Line)
}

func TestDecodeAudit_EmptyDocument(t *testing.T) {
	t.Parallel()

	findings, err := DecodeAudit(strings.NewReader(`<checkstyle version="10.12.4"></checkstyle>`))

	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestDecodeAudit_Malformed(t *testing.T) {
	t.Parallel()

	_, err := DecodeAudit(strings.NewReader("not xml at all"))

	assert.Error(t, err)
}
