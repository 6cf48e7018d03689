package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateFirstLine(t *testing.T) {
	line, col, _ := Locate("abc\ndef", 1)
	assert.Equal(t, 1, line)
	assert.Equal(t, 2, col)
}

func TestLocateAfterLF(t *testing.T) {
	line, col, _ := Locate("abc\ndef", 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestLocateAfterCRLF(t *testing.T) {
	line, col, _ := Locate("abc\r\ndef", 5)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestLocateAfterBareCR(t *testing.T) {
	line, col, _ := Locate("abc\rdef", 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestNewErrorFormatsContext(t *testing.T) {
	err := NewError("bad byte", "hello\nworld", 7)
	assert.Equal(t, 2, err.Line)
	assert.Equal(t, 2, err.Col)
	assert.Contains(t, err.Error(), "bad byte")
	assert.Contains(t, err.Error(), "world")
}
