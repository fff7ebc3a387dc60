package lister

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/store-art/internal/imaging"
)

func writeJPEG(t *testing.T, dir, name string, width, height int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{20, 120, 200, 255})
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeJPEG(t, dir, "Screenshot_b.jpg", 30, 60)
	writeJPEG(t, dir, "Screenshot_a.jpg", 108, 240)
	writeJPEG(t, dir, "Screenshot_c.jpg", 240, 108)
	writeJPEG(t, dir, "other.jpg", 10, 10)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Screenshot_note.txt"), []byte("x"), 0o644))

	log, _ := test.NewNullLogger()
	report, err := List(dir, "Screenshot_*.jpg", log)
	require.NoError(t, err)

	require.Len(t, report.Entries, 3)
	assert.Equal(t, "Screenshot_a.jpg", report.Entries[0].Name)
	assert.Equal(t, imaging.Size{Width: 108, Height: 240}, report.Entries[0].Size)
	assert.Equal(t, "Screenshot_b.jpg", report.Entries[1].Name)
	assert.Equal(t, "Screenshot_c.jpg", report.Entries[2].Name)
	assert.Zero(t, report.Failed)
	assert.NoError(t, report.Err())

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	assert.Equal(t,
		"Found 3 screenshots\n"+
			"Screenshot_a.jpg: 108x240\n"+
			"Screenshot_b.jpg: 30x60\n"+
			"Screenshot_c.jpg: 240x108\n",
		buf.String())
}

func TestList_Idempotent(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Screenshot_3.jpg", "Screenshot_1.jpg", "Screenshot_2.jpg"} {
		writeJPEG(t, dir, name, 20, 40)
	}

	log, _ := test.NewNullLogger()
	render := func() string {
		report, err := List(dir, "Screenshot_*.jpg", log)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, report.Write(&buf))
		return buf.String()
	}

	first := render()
	assert.Equal(t, first, render())
}

func TestList_Empty(t *testing.T) {
	log, _ := test.NewNullLogger()
	report, err := List(t.TempDir(), "Screenshot_*.jpg", log)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	assert.Equal(t, "Found 0 screenshots\n", buf.String())
}

func TestList_ReportsAndContinues(t *testing.T) {
	dir := t.TempDir()
	writeJPEG(t, dir, "Screenshot_1.jpg", 40, 80)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Screenshot_2.jpg"), []byte("corrupt"), 0o644))
	writeJPEG(t, dir, "Screenshot_3.jpg", 80, 40)

	log, hook := test.NewNullLogger()
	report, err := List(dir, "Screenshot_*.jpg", log)
	require.NoError(t, err)

	require.Len(t, report.Entries, 3)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, imaging.Size{Width: 80, Height: 40}, report.Entries[2].Size)

	var de *imaging.DecodeError
	require.True(t, errors.As(report.Entries[1].Err, &de))
	assert.Equal(t, filepath.Join(dir, "Screenshot_2.jpg"), de.Path)
	assert.Error(t, report.Err())

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "Screenshot_2.jpg", hook.LastEntry().Data["file"])

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	out := buf.String()
	assert.Contains(t, out, "Found 3 screenshots\n")
	assert.Contains(t, out, "Screenshot_1.jpg: 40x80\n")
	assert.Contains(t, out, "Screenshot_2.jpg: error: ")
	assert.Contains(t, out, "Screenshot_3.jpg: 80x40\n")
	assert.Contains(t, out, "1 of 3 screenshots failed\n")
}

func TestList_MissingDirectory(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := List(filepath.Join(t.TempDir(), "gone"), "*.jpg", log)

	var nf *imaging.NotFoundError
	assert.True(t, errors.As(err, &nf), "got %v, want NotFoundError", err)
}

func TestList_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.jpg")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	log, _ := test.NewNullLogger()
	_, err := List(file, "*.jpg", log)
	assert.Error(t, err)
}

func TestList_BadPattern(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := List(t.TempDir(), "Screenshot_[.jpg", log)
	assert.Error(t, err)
}
