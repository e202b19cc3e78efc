package maxslog

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reoring/maxslog/internal/lifecycle"
	"github.com/reoring/maxslog/internal/metrics"
	"github.com/reoring/maxslog/sink"
)

// DefaultSuffix is the file name suffix Activate requires unless WithSuffix
// says otherwise. It is matched case-insensitively.
const DefaultSuffix = ".maxs"

// SinkFactory opens the sink for an activated target.
type SinkFactory func(target string) (sink.Sink, error)

func defaultSink(target string) (sink.Sink, error) { return sink.NewFile(target) }

type controller struct {
	machine *lifecycle.Machine
	suffix  string
	newSink SinkFactory
	target  string
	sink    sink.Sink
}

// Activate mirrors the log to target, writing the current document once
// before switching over. It reports false and keeps the previous state when
// target is empty, lacks the required suffix, or cannot be written.
func (l *Logger) Activate(target string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	log := l.logger().With(zap.String("target", target), zap.String("run", l.runID))
	if target == "" {
		log.Error("cannot activate file logging", zap.Error(ErrNoTarget))
		metrics.RecordActivation(metrics.ResultRejected)
		return false
	}
	if !strings.HasSuffix(strings.ToLower(target), strings.ToLower(l.ctrl.suffix)) {
		log.Error("cannot activate file logging",
			zap.Error(ErrBadSuffix), zap.String("suffix", l.ctrl.suffix))
		metrics.RecordActivation(metrics.ResultRejected)
		return false
	}
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}

	s, err := l.ctrl.newSink(target)
	if err != nil {
		log.Error("cannot open log target", zap.Error(err))
		metrics.RecordActivation(metrics.ResultError)
		return false
	}
	err = s.Write(l.store.Document())
	metrics.RecordFlush(err)
	if err != nil {
		log.Error("cannot write log target", zap.Error(err))
		_ = s.Close()
		metrics.RecordActivation(metrics.ResultError)
		return false
	}

	l.closeSink()
	l.ctrl.sink = s
	l.ctrl.target = target
	if err := l.ctrl.machine.Activate(); err != nil {
		log.Warn("unexpected state transition failure", zap.Error(err))
	}
	metrics.RecordActivation(metrics.ResultOK)
	log.Info("file logging activated", zap.Int("notifications", l.store.Len()))
	return true
}

// Deactivate stops mirroring. The file already written is left as it is.
func (l *Logger) Deactivate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deactivate()
}

// Close is Deactivate; it never fails.
func (l *Logger) Close() error {
	l.Deactivate()
	return nil
}

// IsActive reports whether file logging is active.
func (l *Logger) IsActive() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctrl.machine.Active()
}

// Target returns the absolute path of the active target, or "" when inactive.
func (l *Logger) Target() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctrl.target
}

// Reset deactivates file logging, drops every notification together with
// the application metadata and starts a new run.
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deactivate()
	l.store.Clear()
	l.store.SetAppInfo("", "")
	prev := l.runID
	l.runID = uuid.NewString()
	l.logger().Debug("notification log reset", zap.String("run", l.runID), zap.String("previous_run", prev))
}

func (l *Logger) deactivate() {
	if !l.ctrl.machine.Active() {
		return
	}
	target := l.ctrl.target
	l.closeSink()
	l.ctrl.target = ""
	if err := l.ctrl.machine.Deactivate(); err != nil {
		l.logger().Warn("unexpected state transition failure", zap.Error(err))
	}
	l.logger().Info("file logging deactivated", zap.String("target", target), zap.String("run", l.runID))
}

func (l *Logger) closeSink() {
	if l.ctrl.sink == nil {
		return
	}
	if err := l.ctrl.sink.Close(); err != nil {
		l.logger().Warn("cannot close log target",
			zap.String("target", l.ctrl.target), zap.String("run", l.runID), zap.Error(err))
	}
	l.ctrl.sink = nil
}

// flushIfActive rewrites the whole document to the active sink. Failures are
// logged and counted; the in-memory log stays authoritative.
func (l *Logger) flushIfActive() {
	if !l.ctrl.machine.Active() || l.ctrl.sink == nil {
		return
	}
	err := l.ctrl.sink.Write(l.store.Document())
	metrics.RecordFlush(err)
	if err != nil {
		l.logger().Warn("cannot write log target",
			zap.String("target", l.ctrl.target), zap.String("run", l.runID), zap.Error(err))
	}
}
