package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long the file must stay quiet after an event before it
// is re-read. Saving a file usually truncates it and then writes it, which
// shows up as several events in quick succession.
const settleDelay = 200 * time.Millisecond

// Watch reports edits to the config file at path until ctx is cancelled.
//
// The exporter never applies edits to a running process. onChange receives
// the file's new contents only so the caller can tell the operator that a
// restart is needed. Command-line overrides are not part of that snapshot.
// Edits that leave the file byte-for-byte equivalent, or that do not parse,
// are not reported.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	current, err := Load(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}
	slog.Debug("config: watching file for edits", "path", path)

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Editors that save by rename leave the watch on the old inode.
			_ = watcher.Add(path)
			settle.Reset(settleDelay)

		case <-settle.C:
			edited, err := Load(path)
			if err != nil {
				slog.Warn("config: edited file does not parse; the running exporter is unaffected",
					"path", path, "err", err)
				continue
			}
			if *edited == *current {
				continue
			}
			current = edited
			onChange(edited)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: file watcher failed", "path", path, "err", err)
		}
	}
}
