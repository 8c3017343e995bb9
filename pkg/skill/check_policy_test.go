package skill

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCheckPolicy(t *testing.T, diff string) *PolicyReport {
	t.Helper()
	result, err := checkPolicy(context.Background(), diff)
	require.NoError(t, err)
	report, ok := result.(*PolicyReport)
	require.True(t, ok)
	return report
}

func TestCheckPolicy_CleanDiff(t *testing.T) {
	diff := `diff --git a/Foo.java b/Foo.java
--- a/Foo.java
+++ b/Foo.java
+    return value < min ? min : Math.min(value, max);
-    return value < min ? max : Math.min(value, min);
`

	report := runCheckPolicy(t, diff)

	assert.True(t, report.Approved)
	assert.Empty(t, report.Violations)
	assert.False(t, report.HasViolations())
	// File headers (+++/---) are not counted as changed lines.
	assert.Equal(t, 1, report.LinesAdded)
	assert.Equal(t, 1, report.LinesRemoved)
}

func TestCheckPolicy_DisabledTestAnnotation(t *testing.T) {
	t.Run("Ignore", func(t *testing.T) {
		report := runCheckPolicy(t, "+    @Ignore\n+    public void testSomething() {}\n")
		assert.False(t, report.Approved)
		require.Len(t, report.Violations, 1)
		assert.Contains(t, report.Violations[0], "Disabled test annotation found: @Ignore")
	})

	t.Run("Disabled", func(t *testing.T) {
		report := runCheckPolicy(t, "+    @Disabled(\"flaky\")\n")
		assert.False(t, report.Approved)
		assert.Contains(t, report.Violations[0], "Disabled test")
	})

	t.Run("annotation in removed line is fine", func(t *testing.T) {
		report := runCheckPolicy(t, "-    @Ignore\n+    // fixed\n")
		assert.True(t, report.Approved)
	})
}

func TestCheckPolicy_HardcodedSecret(t *testing.T) {
	report := runCheckPolicy(t, "+    String apiKey = \"sk-abcdef1234567890\";\n")

	assert.False(t, report.Approved)
	require.Len(t, report.Violations, 1)
	assert.Contains(t, report.Violations[0], "Potential secret in added code")
}

func TestCheckPolicy_OversizedPatch(t *testing.T) {
	diff := strings.Repeat("+line\n", 301)

	report := runCheckPolicy(t, diff)

	assert.False(t, report.Approved)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "Patch is 301 LOC (limit: 300)", report.Violations[0])
	assert.Equal(t, 301, report.LinesAdded)
}

func TestCheckPolicy_AtLimitIsApproved(t *testing.T) {
	diff := strings.Repeat("+line\n", 300)

	report := runCheckPolicy(t, diff)

	assert.True(t, report.Approved)
	assert.Equal(t, 300, report.LinesAdded)
}

func TestCheckPolicy_EmptyDiff(t *testing.T) {
	for _, diff := range []string{"", "   \n\t"} {
		report := runCheckPolicy(t, diff)
		assert.False(t, report.Approved)
		assert.Equal(t, []string{"Empty or null diff"}, report.Violations)
		assert.Zero(t, report.LinesAdded)
		assert.Zero(t, report.LinesRemoved)
	}
}

func TestCheckPolicy_MultipleViolations(t *testing.T) {
	diff := "+    @Ignore\n+    String password = \"hunter22\";\n"

	report := runCheckPolicy(t, diff)

	assert.False(t, report.Approved)
	assert.Len(t, report.Violations, 2)
}
