package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFieldEditing(t *testing.T) {
	f := NewTextField("Add people")
	var changes []string
	f.OnChange(func(text string) { changes = append(changes, text) })

	assert.Equal(t, "Add people", f.DisplayText())
	f.Insert("héllo\n")
	assert.Equal(t, "héllo", f.Text())
	assert.Equal(t, 5, f.Cursor())

	assert.True(t, f.MoveCursor(-2))
	f.Insert("X")
	assert.Equal(t, "hélXlo", f.Text())
	assert.True(t, f.Backspace())
	assert.Equal(t, "héllo", f.Text())

	assert.True(t, f.MoveCursor(-10))
	assert.False(t, f.MoveCursor(-1))
	assert.False(t, f.Backspace(), "nothing before the cursor")

	f.SetText("")
	assert.Equal(t, []string{"héllo", "hélXlo", "héllo", ""}, changes)

	f.SetPlaceholderHidden(true)
	assert.Empty(t, f.DisplayText())
}

func TestTextFieldGeometryAndFocus(t *testing.T) {
	f := NewTextField("")
	f.SetGeometry(60, 8, 200)
	x, y, w := f.Geometry()
	assert.Equal(t, [3]int{60, 8, 200}, [3]int{x, y, w})

	assert.False(t, f.HasFocus())
	f.SetFocus(true)
	assert.True(t, f.HasFocus())
}
