package style

import (
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultTableStyle(t *testing.T) {
	plain := NewDefaultTableStyle(false)
	assert.Equal(t, table.ColorOptionsDefault, plain.Color)
	assert.Equal(t, table.StyleBoxRounded, plain.Box)

	colored := NewDefaultTableStyle(true)
	assert.NotEqual(t, plain.Color, colored.Color)
}
