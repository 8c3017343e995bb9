package agent

import (
	"regexp"
	"strings"
)

// Compiled once. (?s) lets . span lines, since both code blocks and result
// payloads are multi-line.
var (
	codeBlockPattern = regexp.MustCompile("(?s)```(?:python)?\\s*\\n(.*?)\\n```")
	resultTagPattern = regexp.MustCompile(`(?s)<result>(.*?)</result>`)
)

// ExtractCodeBlock returns the body of the first fenced code block in an
// assistant response. The optional "python" language tag is accepted and
// stripped. The second return is false when the response has no block.
func ExtractCodeBlock(response string) (string, bool) {
	m := codeBlockPattern.FindStringSubmatch(response)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// ExtractResult returns the payload of the first <result> tag in an
// assistant response. A present tag ends the agent's turn-taking, so only
// the first match counts even if the model emitted several.
func ExtractResult(response string) (string, bool) {
	m := resultTagPattern.FindStringSubmatch(response)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
