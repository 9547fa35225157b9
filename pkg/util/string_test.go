package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveColors(t *testing.T) {
	assert.Equal(t, "ok done", RemoveColors("\x1b[32mok\x1b[0m done"))
	assert.Equal(t, "\rline", RemoveColors("\r\x1b[2Kline"))
	assert.Equal(t, "x", RemoveColors("\x1b[?25lx\x1b[?25h"))
}

func TestCollapseReturns(t *testing.T) {
	assert.Equal(t, "c", CollapseReturns("a\rb\rc"))
	assert.Equal(t, "one\ntwo\n", CollapseReturns("\rspin\rone\n\rspin\rtwo\n"))
	assert.Equal(t, "kept\n", CollapseReturns("kept\r\n"))
	assert.Equal(t, "plain", CollapseReturns("plain"))
}

func TestInspectString(t *testing.T) {
	assert.Equal(t, `\r\033[2Kx\n`, InspectString("\r\x1b[2Kx\n"))
}
