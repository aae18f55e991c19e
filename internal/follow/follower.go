// Package follow tails a growing battle log and hands complete lines to a callback.
package follow

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"battletext/internal/logging"
)

// LineFunc receives one protocol line without its trailing newline.
// It is always called from the follower's own goroutine.
type LineFunc func(line string)

// Stats tracks follower activity.
type Stats struct {
	Lines       int
	Reads       int
	Truncations int
	Errors      int
	LastRead    time.Time
}

// Follower watches a single file. Bytes after the last newline are held back
// until the line is completed.
type Follower struct {
	mu      sync.Mutex
	path    string
	handle  LineFunc
	watcher *fsnotify.Watcher
	poll    time.Duration
	offset  int64
	partial []byte
	stats   Stats
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// New creates a follower for path. poll is the fallback re-read interval used
// alongside filesystem events; zero disables polling.
func New(path string, poll time.Duration, handle LineFunc) (*Follower, error) {
	if handle == nil {
		return nil, fmt.Errorf("follow: nil line handler")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Follower{
		path:    filepath.Clean(path),
		handle:  handle,
		watcher: watcher,
		poll:    poll,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start begins following. Existing content is delivered first.
// This method is non-blocking. A failed Start releases the watcher, so the
// Follower cannot be reused.
func (f *Follower) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.running {
		f.mu.Unlock()
		return nil
	}
	f.running = true
	f.mu.Unlock()

	if _, err := os.Stat(f.path); err != nil {
		f.mu.Lock()
		f.running = false
		f.mu.Unlock()
		if cerr := f.watcher.Close(); cerr != nil {
			logging.Get(logging.CategoryFollow).Error("error closing watcher: %v", cerr)
		}
		return fmt.Errorf("failed to stat %s: %w", f.path, err)
	}

	// Watch the directory so log rotation and atomic replaces are seen.
	dir := filepath.Dir(f.path)
	if err := f.watcher.Add(dir); err != nil {
		logging.Get(logging.CategoryFollow).Warn("watch of %s failed, polling only: %v", dir, err)
	} else {
		logging.Get(logging.CategoryFollow).Info("following %s", f.path)
	}

	go f.run(ctx)
	return nil
}

// Stop stops the follower and waits for its goroutine to exit.
func (f *Follower) Stop() {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return
	}
	f.running = false
	f.mu.Unlock()

	close(f.stopCh)
	<-f.doneCh

	if err := f.watcher.Close(); err != nil {
		logging.Get(logging.CategoryFollow).Error("error closing watcher: %v", err)
	}
	logging.Get(logging.CategoryFollow).Info("stopped following %s", f.path)
}

// Done is closed when the follower goroutine exits.
func (f *Follower) Done() <-chan struct{} {
	return f.doneCh
}

// Stats returns a snapshot of follower activity.
func (f *Follower) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// Run follows until ctx is cancelled.
func (f *Follower) Run(ctx context.Context) error {
	if err := f.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	f.Stop()
	return nil
}

func (f *Follower) run(ctx context.Context) {
	defer close(f.doneCh)

	f.readNew()

	var tick <-chan time.Time
	if f.poll > 0 {
		ticker := time.NewTicker(f.poll)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			logging.Get(logging.CategoryFollow).Debug("context cancelled")
			return

		case <-f.stopCh:
			return

		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				f.readNew()
			}

		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryFollow).Error("watcher error: %v", err)
			f.mu.Lock()
			f.stats.Errors++
			f.mu.Unlock()

		case <-tick:
			f.readNew()
		}
	}
}

// readNew reads everything past the current offset and emits complete lines.
func (f *Follower) readNew() {
	file, err := os.Open(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.recordError("failed to open %s: %v", f.path, err)
		}
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		f.recordError("failed to stat %s: %v", f.path, err)
		return
	}
	if info.Size() < f.offset {
		logging.Get(logging.CategoryFollow).Warn("%s was truncated, restarting from the beginning", f.path)
		f.offset = 0
		f.partial = nil
		f.mu.Lock()
		f.stats.Truncations++
		f.mu.Unlock()
	}
	if info.Size() == f.offset {
		return
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		f.recordError("failed to seek %s: %v", f.path, err)
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		f.recordError("failed to read %s: %v", f.path, err)
		return
	}
	f.offset += int64(len(data))

	buf := append(f.partial, data...)
	lines := 0
	for {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			break
		}
		f.handle(strings.TrimSuffix(string(buf[:i]), "\r"))
		buf = buf[i+1:]
		lines++
	}
	f.partial = append([]byte(nil), buf...)

	f.mu.Lock()
	f.stats.Lines += lines
	f.stats.Reads++
	f.stats.LastRead = time.Now()
	f.mu.Unlock()

	logging.Get(logging.CategoryFollow).Debug("read %d bytes, %d lines", len(data), lines)
}

func (f *Follower) recordError(format string, args ...interface{}) {
	logging.Get(logging.CategoryFollow).Error(format, args...)
	f.mu.Lock()
	f.stats.Errors++
	f.mu.Unlock()
}
