package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDiffHeader(t *testing.T) {
	line := FormatDiffHeader("package.json", StatusModified)
	assert.Contains(t, line, "~")
	assert.Contains(t, line, "package.json")
	assert.Contains(t, line, "modified")
}

func TestIndentDiff(t *testing.T) {
	assert.Equal(t, "", IndentDiff("", "    "))
	assert.Equal(t, "    a\n    b\n", IndentDiff("a\n\nb\n", "    "))
}
