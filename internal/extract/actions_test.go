package extract

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/corpus-enricher/internal/common"
	"github.com/dtnitsch/corpus-enricher/pkg/storage"
)

var quietLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

const page = `<html><head><title>Campus news</title></head><body>
<nav>Home | News | Staffnet</nav>
<article>
<h1>New telescope opens</h1>
<p>The observatory opened a new telescope for students and researchers on Monday morning.</p>
<p>It will be used for teaching courses in astronomy and for public viewing nights.</p>
</article>
<footer>Imprint</footer>
</body></html>`

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRun_MirrorsTree(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "news/2023/05/telescope.html", page)
	writeFile(t, in, "news/notes.txt", "not a page")

	summary, err := Run(context.Background(), in, out, quietLogger)
	require.NoError(t, err)
	assert.Equal(t, Summary{Discovered: 1, Written: 1}, summary)

	doc, err := (&storage.Storage{}).ReadRawDocument(filepath.Join(out, "news", "2023", "05", "telescope.json"))
	require.NoError(t, err)
	assert.Equal(t, common.DocID("news/2023/05/telescope.html"), doc.DocID)
	assert.Equal(t, "telescope.html", doc.Filename)
	assert.Contains(t, doc.RawText, "The observatory opened a new telescope")
	assert.NotContains(t, doc.RawText, "Imprint")
	assert.NotEmpty(t, doc.Paragraphs)

	_, err = os.Stat(filepath.Join(out, "news", "notes.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_WriteFailureIsSkipped(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "a.html", page)
	writeFile(t, in, "blocked/b.html", page)
	// A file where the output directory should be makes the write fail.
	writeFile(t, out, "blocked", "")

	summary, err := Run(context.Background(), in, out, quietLogger)
	require.NoError(t, err)
	assert.Equal(t, Summary{Discovered: 2, Written: 1, Failed: 1}, summary)
}

func TestRun_MissingInput(t *testing.T) {
	_, err := Run(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir(), quietLogger)
	assert.Error(t, err)
}

func TestRun_Cancelled(t *testing.T) {
	in := t.TempDir()
	writeFile(t, in, "a.html", page)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := Run(ctx, in, t.TempDir(), quietLogger)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.Written)
}
