package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRendererRender(t *testing.T) {
	renderer := NewCSVRenderer()
	out, err := renderer.Render(Table{
		Headers: []string{"Name", "Average"},
		Rows: [][]string{
			{"Budi Santoso", "85.5"},
			{"Siti Rahma", "90.0"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Name,Average\nBudi Santoso,85.5\nSiti Rahma,90.0\n", string(out))
}

func TestCSVRendererRequiresHeaders(t *testing.T) {
	renderer := NewCSVRenderer()
	_, err := renderer.Render(Table{})
	assert.Error(t, err)
}

func TestCSVRendererColumnMismatch(t *testing.T) {
	renderer := NewCSVRenderer()
	_, err := renderer.Render(Table{
		Headers: []string{"Name", "Average"},
		Rows:    [][]string{{"only one"}},
	})
	assert.Error(t, err)
}

func TestPDFRendererRender(t *testing.T) {
	renderer := NewPDFRenderer()
	out, err := renderer.Render(Table{
		Title:    "Rekap Absensi",
		Subtitle: "Kelas X-A, Semester Ganjil",
		Headers:  []string{"Name", "H", "S", "I", "A", "%"},
		Rows: [][]string{
			{"Budi Santoso", "10", "1", "0", "0", "90.9"},
		},
	})
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFRendererRequiresHeaders(t *testing.T) {
	renderer := NewPDFRenderer()
	_, err := renderer.Render(Table{Title: "empty"})
	assert.Error(t, err)
}
