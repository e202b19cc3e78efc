package maxslog

// Notification is one recorded diagnostic.
//
// Routine and CompID are optional: the empty string and 0 are left out of the
// document. Items is never nil for notifications built with NewNotification.
type Notification struct {
	Routine  string
	CompID   int
	Message  string
	Severity Severity
	Items    []DataItem
}

// DataItem is a named numeric datum explaining a notification. A NaN Value
// means the attribute had no value at all.
type DataItem struct {
	AttrID string
	CompID int
	Value  float64
}

// NewNotification builds a notification without data items. A nil routine
// and a compID <= 0 are both treated as not supplied.
func NewNotification(r Routine, compID int, msg string, sev Severity) Notification {
	if compID < 0 {
		compID = 0
	}
	return Notification{
		Routine:  routineID(r),
		CompID:   compID,
		Message:  msg,
		Severity: sev,
		Items:    []DataItem{},
	}
}

// Clone returns a copy that shares no memory with n.
func (n Notification) Clone() Notification {
	items := make([]DataItem, len(n.Items))
	copy(items, n.Items)
	n.Items = items
	return n
}

// HasAttribute reports whether one of the items names attr.
func (n Notification) HasAttribute(attr string) bool {
	for _, it := range n.Items {
		if it.AttrID == attr {
			return true
		}
	}
	return false
}
