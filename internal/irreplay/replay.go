// Package irreplay ingests raw edge-trace capture files instead of a live
// GPIO pin, grounded on the teacher's pkg/nodes/network/watch.go WatchNode:
// same fsnotify watcher and Events/Errors select loop, repurposed from
// generic flow-trigger file events to trace-file replay. The capture
// format itself (one "dt,edge" pair per line) is this decoder's own, since
// the out-of-scope capture utility that produces it is not part of this
// module.
package irreplay

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// OnEvent receives one replayed (dt, edge) pair, in the same shape
// pkg/irdecode.MultiReceiverN.Event and irhal.PinSampler's callback expect.
type OnEvent func(dt uint32, edge bool)

// Watcher watches a directory for new capture files and replays each one
// through onEvent as it appears.
type Watcher struct {
	dir     string
	onEvent OnEvent
	log     *zap.Logger
	watcher *fsnotify.Watcher
}

// NewWatcher constructs a capture-directory watcher. dir must already
// exist; files already present when New is called are not replayed, only
// ones created afterward - matching WatchNode's create/modify event model.
func NewWatcher(dir string, onEvent OnEvent, log *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("irreplay: failed to create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("irreplay: failed to watch %s: %w", dir, err)
	}

	return &Watcher{dir: dir, onEvent: onEvent, log: log, watcher: fsw}, nil
}

// Run blocks, replaying each new capture file as fsnotify reports it.
// Intended to run in its own goroutine, stopped by Close.
func (w *Watcher) Run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if err := ReplayFile(event.Name, w.onEvent); err != nil {
				if w.log != nil {
					w.log.Warn("irreplay: capture file replay failed",
						zap.String("file", event.Name), zap.Error(err))
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.log != nil {
				w.log.Warn("irreplay: watcher error", zap.Error(err))
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// ReplayFile reads a capture file line by line and feeds each "dt,edge"
// pair to onEvent in order. edge is "1"/"0" or "true"/"false"; blank lines
// and lines starting with '#' are skipped.
func ReplayFile(path string, onEvent OnEvent) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("irreplay: failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		dt, edge, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("irreplay: %s:%d: %w", filepath.Base(path), lineNo, err)
		}

		onEvent(dt, edge)
	}

	return scanner.Err()
}

func parseLine(line string) (uint32, bool, error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return 0, false, fmt.Errorf("expected \"dt,edge\", got %q", line)
	}

	dt64, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("bad dt %q: %w", parts[0], err)
	}

	edgeStr := strings.TrimSpace(parts[1])
	var edge bool
	switch edgeStr {
	case "1", "true", "high", "rising":
		edge = true
	case "0", "false", "low", "falling":
		edge = false
	default:
		return 0, false, fmt.Errorf("bad edge %q", edgeStr)
	}

	return uint32(dt64), edge, nil
}
