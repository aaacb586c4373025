package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionPlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	Section(&buf, "Arrays")
	assert.Equal(t, "\n━━━ Arrays ━━━\n", buf.String())
}

func TestGrid(t *testing.T) {
	var buf bytes.Buffer
	Grid(&buf, [][]string{{"X", "_", "O"}, {"_", "_", "_"}})
	assert.Equal(t, "X _ O \n_ _ _ \n", buf.String())
}

func TestTableAlignsFirstColumn(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, [2]string{"NAME", "TITLE"}, [][2]string{{"a", "one"}, {"long", "two"}})
	assert.Equal(t, "NAME  TITLE\na     one\nlong  two\n", buf.String())
}
