package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelLines(t *testing.T) {
	assert.Empty(t, modelLines(nil))
	assert.Equal(t,
		[]string{"p: true", "q: false", "r: true"},
		modelLines(map[string]bool{"r": true, "p": true, "q": false}),
	)
}

func TestSplitBlocks(t *testing.T) {
	blocks := splitBlocks([]string{
		"",
		"1    p∧q",
		"∧e1, 1",
		"",
		"",
		"1    p→q",
		"2    p",
		"→e, 1, 2",
		"",
	})
	assert.Equal(t, [][]string{
		{"1    p∧q", "∧e1, 1"},
		{"1    p→q", "2    p", "→e, 1, 2"},
	}, blocks)

	assert.Empty(t, splitBlocks([]string{"", "  ", ""}))
}
