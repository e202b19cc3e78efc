package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/maxslog"
	"github.com/reoring/maxslog/document"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Print notifications as a producer appends them to FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watchFile(ctx, args[0], cmd.OutOrStdout(), nil)
		},
	}
}

// tail remembers how many notifications were already printed.
type tail struct {
	seen int
}

// next returns the notifications not printed yet. reset is true when the
// log got shorter, which means the producer started over.
func (t *tail) next(all []maxslog.Notification) (fresh []maxslog.Notification, from int, reset bool) {
	if len(all) < t.seen {
		t.seen = 0
		reset = true
	}
	from = t.seen
	fresh = all[from:]
	t.seen = len(all)
	return fresh, from, reset
}

// watchFile follows path until ctx is done. The producer replaces the file by
// rename, so the parent directory is watched and events are filtered by name.
// ready, if set, is closed once the existing contents have been printed.
func watchFile(ctx context.Context, path string, out io.Writer, ready chan<- struct{}) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	log := zap.L().Named("watch").With(zap.String("target", abs))
	t := &tail{}
	refresh := func() {
		doc, err := document.ReadFile(abs)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Debug("cannot read log, waiting for next change", zap.Error(err))
			}
			return
		}
		s, err := maxslog.StoreFromDocument(doc)
		if err != nil {
			log.Warn("cannot read log", zap.Error(err))
			return
		}
		fresh, from, reset := t.next(s.Snapshot())
		if reset {
			fmt.Fprintln(out, "-- log restarted --")
		}
		for i, n := range fresh {
			printNotification(out, from+i, n)
		}
	}

	refresh()
	if ready != nil {
		close(ready)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				refresh()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		}
	}
}
