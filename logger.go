package maxslog

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reoring/maxslog/document"
	"github.com/reoring/maxslog/internal/lifecycle"
	"github.com/reoring/maxslog/internal/logging"
	"github.com/reoring/maxslog/internal/metrics"
	"github.com/reoring/maxslog/sink"
)

// Logger is a notification log with an optional file mirror.
//
// All methods are safe for concurrent use. Every mutation made while file
// logging is active rewrites the complete document to the target before the
// method returns.
type Logger struct {
	mu    sync.Mutex
	store Store
	ctrl  controller
	log   *zap.Logger
	runID string
}

// Option configures a Logger.
type Option func(*Logger)

// WithZap sets the zap logger used for internal diagnostics.
func WithZap(z *zap.Logger) Option {
	return func(l *Logger) {
		if z != nil {
			l.log = z
		}
	}
}

// WithSinkFactory replaces the function that opens a sink for an activated
// target. The default writes the document to a file.
func WithSinkFactory(f SinkFactory) Option {
	return func(l *Logger) {
		if f != nil {
			l.ctrl.newSink = f
		}
	}
}

// WithSuffix changes the file name suffix required by Activate.
func WithSuffix(suffix string) Option {
	return func(l *Logger) {
		if suffix != "" {
			l.ctrl.suffix = suffix
		}
	}
}

// WithAppInfo sets the initial application id and version.
func WithAppInfo(id, version string) Option {
	return func(l *Logger) { l.store.SetAppInfo(id, version) }
}

// New returns an empty, inactive Logger. Without WithZap, diagnostics go to
// the global zap logger as it is at the time of each call, so
// logging.Initialize or zap.ReplaceGlobals may run after New.
func New(opts ...Option) *Logger {
	l := &Logger{
		runID: uuid.NewString(),
		ctrl: controller{
			suffix:  DefaultSuffix,
			newSink: defaultSink,
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.ctrl.machine = lifecycle.New(func(from, to string) {
		l.logger().Debug("file logging state changed",
			zap.String("from", from), zap.String("to", to), zap.String("run", l.runID))
	})
	return l
}

func (l *Logger) logger() *zap.Logger {
	if l.log != nil {
		return l.log
	}
	return logging.Default()
}

// Log records a notification. A nil routine and a compID <= 0 are left out of
// the document.
func (l *Logger) Log(r Routine, compID int, msg string, sev Severity) {
	l.Append(NewNotification(r, compID, msg, sev))
}

// LogComponent is Log with the id taken from c.
func (l *Logger) LogComponent(r Routine, c Component, msg string, sev Severity) {
	l.Log(r, componentID(c), msg, sev)
}

// Append records a prepared notification.
func (l *Logger) Append(n Notification) {
	n = n.Clone()
	if n.CompID < 0 {
		n.CompID = 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.Append(n)
	metrics.RecordNotification(n.Severity.String())
	l.flushIfActive()
}

// SetAppInfo sets the application id and version written to the document
// root; empty strings are omitted.
func (l *Logger) SetAppInfo(id, version string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.SetAppInfo(id, version)
	l.flushIfActive()
}

func (l *Logger) AppID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.AppID()
}

func (l *Logger) AppVersion() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.AppVersion()
}

// Notifications returns a copy of all notifications in insertion order.
func (l *Logger) Notifications() []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Snapshot()
}

// Filter returns the notifications accepted by p, in insertion order. A nil
// p accepts everything.
func (l *Logger) Filter(p Predicate) []Notification {
	all := l.Notifications()
	if p == nil {
		return all
	}
	out := make([]Notification, 0, len(all))
	for _, n := range all {
		if p(n) {
			out = append(out, n)
		}
	}
	return out
}

// Get returns the notification at index i. Indices outside [0, Len) yield a
// *RangeError matching ErrOutOfRange.
func (l *Logger) Get(i int) (Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Get(i)
}

func (l *Logger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Len()
}

// RunID identifies the current run. Reset starts a new one.
func (l *Logger) RunID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.runID
}

// Document returns the wire form of the current log.
func (l *Logger) Document() *document.KernelNotifications {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Document()
}

// Load replaces the log contents, application metadata included, with doc.
// On error the log is left unchanged.
func (l *Logger) Load(doc *document.KernelNotifications) error {
	s, err := StoreFromDocument(doc)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store = *s
	l.flushIfActive()
	return nil
}

// Flush pushes a snapshot held back by a buffering sink. It is a no-op when
// file logging is inactive or the sink writes through.
func (l *Logger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, ok := l.ctrl.sink.(sink.Flusher)
	if !l.ctrl.machine.Active() || !ok {
		return nil
	}
	err := f.Flush()
	metrics.RecordFlush(err)
	return err
}
