package maxslog

// Predicate selects notifications for Filter. Package query provides the
// common ones.
type Predicate func(Notification) bool
