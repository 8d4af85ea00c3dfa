package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeWatcher hands the registered callback to the test so change
// events can be injected directly.
type fakeWatcher struct {
	root     string
	onChange func(path string)
	stopped  bool
}

func (f *fakeWatcher) Watch(root string, onChange func(path string)) error {
	f.root = root
	f.onChange = onChange
	return nil
}

func (f *fakeWatcher) Stop() error {
	f.stopped = true
	return nil
}

// memMarks is an in-memory mark store.
type memMarks struct {
	seen map[string]bool
	err  error
}

func (m *memMarks) Mark(fingerprint string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	if m.seen[fingerprint] {
		return false, nil
	}
	m.seen[fingerprint] = true
	return true, nil
}

func newWatchHarness(t *testing.T) (*WatchService, *fakeWatcher, *memMarks, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	watcher := &fakeWatcher{}
	marks := &memMarks{}
	ws := NewWatchService(newTestService(t), watcher, marks, zap.New(core))
	return ws, watcher, marks, logs
}

func TestWatchService_ReportsFreshHaikuOnce(t *testing.T) {
	ws, watcher, _, logs := newWatchHarness(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte(frogText), 0o644))

	require.NoError(t, ws.Run(dir))
	assert.Equal(t, dir, watcher.root)
	assert.Equal(t, 1, logs.FilterMessage("watching for haikus").Len())

	watcher.onChange(path)
	found := logs.FilterMessage("haiku found")
	require.Equal(t, 1, found.Len())
	fields := found.All()[0].ContextMap()
	assert.Equal(t, path, fields["path"])
	assert.Equal(t, "an old silent pond", fields["line1"])

	// The same haiku seen again stays quiet.
	watcher.onChange(path)
	assert.Equal(t, 1, logs.FilterMessage("haiku found").Len())

	require.NoError(t, ws.Stop())
	assert.True(t, watcher.stopped)
}

func TestWatchService_LogsScanFailure(t *testing.T) {
	ws, watcher, _, logs := newWatchHarness(t)

	require.NoError(t, ws.Run(t.TempDir()))
	watcher.onChange(filepath.Join(t.TempDir(), "gone.txt"))

	assert.Equal(t, 1, logs.FilterMessage("scan failed").Len())
	assert.Equal(t, 0, logs.FilterMessage("haiku found").Len())
}

func TestWatchService_LogsMarkFailure(t *testing.T) {
	ws, watcher, marks, logs := newWatchHarness(t)
	marks.err = errors.New("db closed")

	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte(frogText), 0o644))

	require.NoError(t, ws.Run(dir))
	watcher.onChange(path)

	assert.Equal(t, 1, logs.FilterMessage("mark haiku").Len())
	assert.Equal(t, 0, logs.FilterMessage("haiku found").Len())
}
