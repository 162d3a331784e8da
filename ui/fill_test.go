package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillBackground(t *testing.T) {
	assert.Equal(t, "a", FillBackground("a", 0))
	out := FillBackground("a\nb", 5)
	assert.Equal(t, 5, len(strings.Split(out, "\n")))
	assert.Equal(t, "a\nb\nc", FillBackground("a\nb\nc", 2))
}
