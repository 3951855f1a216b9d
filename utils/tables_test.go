package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvlab/engcalc/common"
)

func TestNumberedList(t *testing.T) {
	out := NumberedList([]string{"first", "second"})

	assert.True(t, strings.Contains(out, "0"))
	assert.True(t, strings.Contains(out, "first"))
	assert.True(t, strings.Contains(out, "1"))
	assert.True(t, strings.Contains(out, "second"))
}

func TestTextTable(t *testing.T) {
	out := TextTable([][]any{
		{"point", 1.23456},
		{"ref", 2.0},
	})

	assert.True(t, strings.Contains(out, "point"))
	assert.True(t, strings.Contains(out, "1.23"))
	assert.False(t, strings.Contains(out, "1.23456"))
}

func TestMarkdownTable(t *testing.T) {
	out, err := MarkdownTable(
		[]string{"run 1", "run 2"},
		[]string{"speed"},
		[][]float64{{1.5, 2.5}},
	)
	require.NoError(t, err)

	assert.True(t, strings.Contains(out, "|"))
	assert.True(t, strings.Contains(out, "speed"))
	assert.True(t, strings.Contains(out, "1.5000"))
}

func TestMarkdownTableMismatch(t *testing.T) {
	_, err := MarkdownTable([]string{"a"}, []string{"one", "two"}, [][]float64{{1}})
	assert.ErrorIs(t, err, common.ErrorInvalidType)
}

func TestCSVTable(t *testing.T) {
	out := CSVTable([][]any{
		{"a", 1, 2},
		{"b", 3, 4},
	})

	assert.True(t, strings.Contains(out, "a,1,2"))
	assert.True(t, strings.Contains(out, "b,3,4"))
}
