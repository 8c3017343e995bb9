package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCodeBlock(t *testing.T) {
	t.Run("python fence returns code", func(t *testing.T) {
		response := "I will list files first.\n```python\nimport os\nprint(os.listdir('.'))\n```\n"
		code, ok := ExtractCodeBlock(response)
		require.True(t, ok)
		assert.Contains(t, code, "import os")
		assert.Contains(t, code, "os.listdir")
	})

	t.Run("unlabelled fence returns code", func(t *testing.T) {
		// Agents sometimes omit the "python" label
		code, ok := ExtractCodeBlock("```\nx = 1 + 1\n```\n")
		require.True(t, ok)
		assert.Equal(t, "x = 1 + 1", code)
	})

	t.Run("no fence returns false", func(t *testing.T) {
		_, ok := ExtractCodeBlock("I will now think about the problem.")
		assert.False(t, ok)
	})

	t.Run("multiple fences returns first", func(t *testing.T) {
		response := "```python\nfirst_block()\n```\n```python\nsecond_block()\n```\n"
		code, ok := ExtractCodeBlock(response)
		require.True(t, ok)
		assert.Contains(t, code, "first_block")
		assert.NotContains(t, code, "second_block")
	})

	t.Run("multiline code returns full body", func(t *testing.T) {
		response := "```python\ndef fix():\n    x = 1\n    y = 2\n    return x + y\n```\n"
		code, ok := ExtractCodeBlock(response)
		require.True(t, ok)
		assert.Contains(t, code, "def fix()")
		assert.Contains(t, code, "return x + y")
	})

	t.Run("indentation inside the block survives trimming", func(t *testing.T) {
		response := "```python\nif ok:\n    act()\n```"
		code, ok := ExtractCodeBlock(response)
		require.True(t, ok)
		assert.Equal(t, "if ok:\n    act()", code)
	})
}

func TestExtractResult(t *testing.T) {
	t.Run("result tag returns content", func(t *testing.T) {
		response := "After analysing the code I found the bug.\n" +
			`<result>{"fixed": true, "description": "Off-by-one in loop"}</result>` + "\n"
		result, ok := ExtractResult(response)
		require.True(t, ok)
		assert.Contains(t, result, "Off-by-one")
	})

	t.Run("no result tag returns false", func(t *testing.T) {
		_, ok := ExtractResult("Still working on it.")
		assert.False(t, ok)
	})

	t.Run("multiline result returns full content", func(t *testing.T) {
		response := "<result>\n{\n  \"passed\": true,\n  \"tests_run\": 42,\n  \"failures\": 0\n}\n</result>\n"
		result, ok := ExtractResult(response)
		require.True(t, ok)
		assert.Contains(t, result, `"passed": true`)
		assert.Contains(t, result, `"tests_run": 42`)
		assert.True(t, strings.HasPrefix(result, "{"), "surrounding whitespace should be trimmed")
	})

	t.Run("surrounding text is excluded", func(t *testing.T) {
		result, ok := ExtractResult("Done! <result>success</result> That's all.")
		require.True(t, ok)
		assert.Equal(t, "success", result)
	})

	t.Run("first of several tags wins", func(t *testing.T) {
		result, ok := ExtractResult("<result>one</result><result>two</result>")
		require.True(t, ok)
		assert.Equal(t, "one", result)
	})
}
