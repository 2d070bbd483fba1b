package profilers

import (
	"context"
	"os"
	"path/filepath"
	"runtime/pprof"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelSearch(t *testing.T) {
	called := false
	LabelSearch(context.Background(), "alphabeta(max_depth=3)", "abc/First", func(ctx context.Context) {
		called = true
		searcher, found := pprof.Label(ctx, SearcherLabel)
		assert.True(t, found)
		assert.Equal(t, "alphabeta(max_depth=3)", searcher)
		match, found := pprof.Label(ctx, MatchLabel)
		assert.True(t, found)
		assert.Equal(t, "abc/First", match)
	})
	assert.True(t, called)
}

// withFlags sets the profiler flags for the duration of the test.
func withFlags(t *testing.T, port int, memProfile string) {
	oldPort, oldMem, oldCtx := *flagProfiler, *flagMemProfile, globalCtx
	*flagProfiler, *flagMemProfile = port, memProfile
	t.Cleanup(func() {
		*flagProfiler, *flagMemProfile, globalCtx = oldPort, oldMem, oldCtx
	})
}

func TestHTTPProfilerEnabled(t *testing.T) {
	withFlags(t, 0, "")
	assert.False(t, httpProfilerEnabled())
	withFlags(t, -1, "")
	assert.False(t, httpProfilerEnabled())
	withFlags(t, 6060, "")
	assert.True(t, httpProfilerEnabled())
}

func TestOnQuit(t *testing.T) {
	// Nothing configured: no-op.
	withFlags(t, 0, "")
	OnQuit()

	// Already interrupted: doesn't wait.
	withFlags(t, 6060, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	globalCtx = ctx
	OnQuit()

	// A panic is propagated instead of keeping the program alive on a context that is never done.
	globalCtx = context.Background()
	assert.PanicsWithValue(t, "search failed", func() {
		defer OnQuit()
		panic("search failed")
	})
}

func TestMemProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heap.pprof")
	withFlags(t, 0, path)
	OnQuit()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, writeHeapProfile(filepath.Join(t.TempDir(), "missing", "heap.pprof")))
}
