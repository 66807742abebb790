package fonts

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/entity"
)

func fakeFontConfig(output string, runErr error) (*FontConfig, *int) {
	calls := 0
	fc := NewFontConfig(nil)
	fc.lookPath = func(string) (string, error) { return "/usr/bin/fc-list", nil }
	fc.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
		calls++
		return []byte(output), runErr
	}
	return fc, &calls
}

func TestParseFontList(t *testing.T) {
	output := "/usr/share/fonts/a.ttf\tAlpha\t80\t0\t0\n" +
		"\n" +
		"/usr/share/fonts/b.otf\tBeta\t200\t100\t0\r\n" +
		"/usr/share/fonts/var.ttf\tVar\t[100 900]\t0\t2\n" +
		"/usr/share/fonts/bare.ttf\n"

	faces, err := parseFontList([]byte(output))
	require.NoError(t, err)
	require.Len(t, faces, 4)

	assert.Equal(t, entity.FontFace{File: "/usr/share/fonts/a.ttf", Family: "Alpha", Weight: 80, Slant: 0}, faces[0])
	assert.Equal(t, entity.FontFace{File: "/usr/share/fonts/b.otf", Family: "Beta", Weight: 200, Slant: 100}, faces[1])
	assert.Equal(t, 100, faces[2].Weight)
	assert.Equal(t, 2, faces[2].Index)
	assert.Equal(t, entity.FontFace{File: "/usr/share/fonts/bare.ttf", Weight: entity.WeightRegular, Slant: entity.SlantRoman}, faces[3])
}

func TestParseFCNumber(t *testing.T) {
	assert.Equal(t, 80, parseFCNumber("80", 0))
	assert.Equal(t, 80, parseFCNumber(" 80.0 ", 0))
	assert.Equal(t, 100, parseFCNumber("[100 900]", 0))
	assert.Equal(t, 7, parseFCNumber("", 7))
	assert.Equal(t, 7, parseFCNumber("bold", 7))
}

func TestFontConfig_ListFontsCachesUntilReinitialize(t *testing.T) {
	fc, calls := fakeFontConfig("/fonts/a.ttf\tAlpha\t80\t0\t0\n", nil)
	ctx := context.Background()

	faces, err := fc.ListFonts(ctx)
	require.NoError(t, err)
	require.Len(t, faces, 1)

	_, err = fc.ListFonts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)

	require.NoError(t, fc.Reinitialize(ctx))
	_, err = fc.ListFonts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
}

func TestFontConfig_RunFailure(t *testing.T) {
	fc, _ := fakeFontConfig("", errors.New("boom"))
	_, err := fc.ListFonts(context.Background())
	assert.Error(t, err)
}

func TestFontConfig_ReinitializeWithoutBinary(t *testing.T) {
	fc := NewFontConfig(nil)
	fc.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	assert.False(t, fc.IsAvailable())
	err := fc.Reinitialize(context.Background())
	assert.ErrorIs(t, err, port.ErrFontConfigUnavailable)
}

func TestFontConfig_FontDirs(t *testing.T) {
	extra := t.TempDir()
	fc, _ := fakeFontConfig("/fonts/b/x.ttf\tX\t80\t0\t0\n/fonts/a/y.ttf\tY\t80\t0\t0\n/fonts/a/z.ttf\tZ\t80\t0\t0\n", nil)
	fc.extraDirs = []string{extra, "/does/not/exist"}

	dirs, err := fc.FontDirs(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/fonts/a", "/fonts/b", extra}, dirs)
}
