package app

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/wtrock/loupe/internal/logline"
	"github.com/wtrock/loupe/internal/ui"
)

// reloadDebounce coalesces bursts of write events into one reload.
const reloadDebounce = 250 * time.Millisecond

// watchFile reloads the log file whenever it changes and pushes the result
// into the running program via send. The parent directory is watched so
// rotation (remove + recreate) is picked up too. The returned stop function
// releases the watcher.
func watchFile(ctx context.Context, path string, d *logline.Detector, maxLines int, send func(tea.Msg)) (func(), error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != abs {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				pending = time.After(reloadDebounce)

			case <-pending:
				pending = nil
				lines, err := logline.LoadFile(abs, d, maxLines)
				if err != nil {
					send(ui.ReloadErrorMsg{Err: err})
					continue
				}
				send(ui.LinesMsg{Lines: lines})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send(ui.ReloadErrorMsg{Err: err})
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
