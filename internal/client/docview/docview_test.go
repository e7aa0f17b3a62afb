package docview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenClose_Lifecycle(t *testing.T) {
	data := []byte("%PDF-1.7 body")

	doc, err := Open("survey.pdf", "application/pdf", data)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", doc.MediaType)
	require.True(t, strings.HasSuffix(doc.Path, ".pdf"))

	onDisk, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	require.Equal(t, data, onDisk)

	require.NoError(t, doc.Close())
	_, err = os.Stat(doc.Path)
	require.True(t, os.IsNotExist(err), "closing must release the file")

	// Double close is harmless.
	require.NoError(t, doc.Close())
}

func TestOpen_DefaultsMediaTypeAndExtension(t *testing.T) {
	doc, err := Open("noext", "", []byte("x"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = doc.Close() })

	require.Equal(t, "application/octet-stream", doc.MediaType)
	require.True(t, strings.HasSuffix(doc.Path, ".bin"))
}

func TestSaveTo_CopiesIntoDir(t *testing.T) {
	doc, err := Open("survey.pdf", "application/pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = doc.Close() })

	dir := t.TempDir()
	dst, err := doc.SaveTo(dir, "fall-2025.pdf")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "fall-2025.pdf"), dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.7"), data)
}

func TestSaveTo_StripsDirectoryComponents(t *testing.T) {
	doc, err := Open("survey.pdf", "application/pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = doc.Close() })

	dir := t.TempDir()
	dst, err := doc.SaveTo(dir, "../../escape.pdf")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "escape.pdf"), dst)
}
