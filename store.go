package maxslog

import (
	"fmt"

	"github.com/reoring/maxslog/document"
)

// Store is the ordered, append-only notification log together with the
// application metadata written to the document root.
//
// A Store performs no I/O and is not safe for concurrent use; Logger adds
// both persistence and locking on top of it.
type Store struct {
	appID      string
	appVersion string
	entries    []Notification
}

// Append adds n at the end of the log. A negative CompID is stored as 0.
func (s *Store) Append(n Notification) {
	n.CompID = max(n.CompID, 0)
	if n.Items == nil {
		n.Items = []DataItem{}
	}
	s.entries = append(s.entries, n)
}

// Clear drops every notification. Application metadata is kept.
func (s *Store) Clear() { s.entries = nil }

func (s *Store) Len() int { return len(s.entries) }

// Get returns the notification at index i, or a *RangeError.
func (s *Store) Get(i int) (Notification, error) {
	if i < 0 || i >= len(s.entries) {
		return Notification{}, &RangeError{Index: i, Len: len(s.entries)}
	}
	return s.entries[i].Clone(), nil
}

// SetAppInfo sets the application id and version. Empty strings are omitted
// from the document.
func (s *Store) SetAppInfo(id, version string) {
	s.appID, s.appVersion = id, version
}

func (s *Store) AppID() string      { return s.appID }
func (s *Store) AppVersion() string { return s.appVersion }

// Snapshot returns a deep copy of the notifications in insertion order.
func (s *Store) Snapshot() []Notification {
	out := make([]Notification, len(s.entries))
	for i, n := range s.entries {
		out[i] = n.Clone()
	}
	return out
}

// Document projects the store onto its wire form.
func (s *Store) Document() *document.KernelNotifications {
	doc := &document.KernelNotifications{
		AppID:         s.appID,
		AppVersion:    s.appVersion,
		Notifications: make([]document.Notification, 0, len(s.entries)),
	}
	for _, n := range s.entries {
		wn := document.Notification{
			CompID:  max(n.CompID, 0),
			Routine: n.Routine,
			Type:    n.Severity.String(),
			Message: n.Message,
		}
		if len(n.Items) > 0 {
			wn.Data = &document.Data{Items: make([]document.Item, len(n.Items))}
			for j, it := range n.Items {
				wn.Data.Items[j] = document.Item{AttrID: it.AttrID, CompID: it.CompID, Value: document.Float(it.Value)}
			}
		}
		doc.Notifications = append(doc.Notifications, wn)
	}
	return doc
}

// StoreFromDocument rebuilds a store from a decoded document. It fails on
// unknown notification types.
func StoreFromDocument(doc *document.KernelNotifications) (*Store, error) {
	s := &Store{}
	if doc == nil {
		return s, nil
	}
	s.SetAppInfo(doc.AppID, doc.AppVersion)
	s.entries = make([]Notification, 0, len(doc.Notifications))
	for i, wn := range doc.Notifications {
		sev, err := ParseSeverity(wn.Type)
		if err != nil {
			return nil, fmt.Errorf("maxslog: notification %d: %w", i, err)
		}
		n := Notification{
			Routine:  wn.Routine,
			CompID:   max(wn.CompID, 0),
			Message:  wn.Message,
			Severity: sev,
			Items:    []DataItem{},
		}
		if wn.Data != nil {
			for _, it := range wn.Data.Items {
				n.Items = append(n.Items, DataItem{AttrID: it.AttrID, CompID: it.CompID, Value: float64(it.Value)})
			}
		}
		s.entries = append(s.entries, n)
	}
	return s, nil
}
