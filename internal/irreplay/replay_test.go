package irreplay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayFile_FeedsEventsInOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture1.txt")
	content := "# nec frame\n9000,1\n4500,0\n560,1\n\n560,0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	type got struct {
		dt   uint32
		edge bool
	}
	var events []got

	err := ReplayFile(path, func(dt uint32, edge bool) {
		events = append(events, got{dt, edge})
	})
	require.NoError(t, err)

	assert.Equal(t, []got{
		{9000, true},
		{4500, false},
		{560, true},
		{560, false},
	}, events)
}

func TestReplayFile_RejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("not-a-line\n"), 0o644))

	err := ReplayFile(path, func(uint32, bool) {})
	assert.Error(t, err)
}

func TestWatcher_ReplaysNewlyCreatedFile(t *testing.T) {
	dir := t.TempDir()

	done := make(chan struct{})
	var events []uint32

	w, err := NewWatcher(dir, func(dt uint32, edge bool) {
		events = append(events, dt)
		if len(events) == 2 {
			close(done)
		}
	}, nil)
	require.NoError(t, err)
	defer w.Close()

	go w.Run()

	path := filepath.Join(dir, "live.txt")
	require.NoError(t, os.WriteFile(path, []byte("100,1\n200,0\n"), 0o644))

	<-done
	assert.Equal(t, []uint32{100, 200}, events)
}
