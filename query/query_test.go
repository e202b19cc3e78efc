package query_test

import (
	"testing"

	"github.com/reoring/maxslog"
	"github.com/reoring/maxslog/query"
	"github.com/reoring/maxslog/routine"
)

func sample() []maxslog.Notification {
	withItem := maxslog.NewNotification(routine.ISO6336_2019, 3, "Face width is missing", maxslog.SeverityDebugError)
	withItem.Items = append(withItem.Items, maxslog.DataItem{AttrID: "face_width", CompID: 3})
	return []maxslog.Notification{
		maxslog.NewNotification(routine.ISO21771_2007, 1, "first", maxslog.SeverityInfo),
		maxslog.NewNotification(routine.ISO21771_2007, 2, "second", maxslog.SeverityWarning),
		maxslog.NewNotification(nil, 0, "plain", maxslog.SeverityError),
		withItem,
	}
}

func count(ns []maxslog.Notification, p maxslog.Predicate) int {
	c := 0
	for _, n := range ns {
		if p(n) {
			c++
		}
	}
	return c
}

func TestPredicates(t *testing.T) {
	ns := sample()
	cases := []struct {
		name string
		p    maxslog.Predicate
		want int
	}{
		{"routine", query.Routine(routine.ISO21771_2007), 2},
		{"no routine", query.Routine(nil), 1},
		{"component", query.Component(1), 1},
		{"component >= 2", query.ComponentWhere(query.Ge, 2), 2},
		{"severity", query.Severity(maxslog.SeverityError, maxslog.SeverityWarning), 2},
		{"debug", query.Debug(), 1},
		{"message", query.MessageContains("FACE"), 1},
		{"attribute", query.Attribute("face_width"), 1},
		{"all", query.All(query.Routine(routine.ISO21771_2007), query.Component(1)), 1},
		{"all empty", query.All(), 4},
		{"any", query.Any(query.Component(1), query.Debug()), 2},
		{"any empty", query.Any(), 0},
		{"not", query.Not(query.Debug()), 3},
	}
	for _, tc := range cases {
		if got := count(ns, tc.p); got != tc.want {
			t.Fatalf("%s: matched %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestSeverityNames(t *testing.T) {
	p, err := query.SeverityNames("info", "DEBUG_ERROR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := count(sample(), p); got != 2 {
		t.Fatalf("matched %d, want 2", got)
	}
	if _, err := query.SeverityNames("fatal"); err == nil {
		t.Fatal("expected error for unknown severity")
	}
}

func TestParseOp(t *testing.T) {
	for s, want := range map[string]query.Op{"==": query.Eq, "!=": query.Ne, "<": query.Lt, "<=": query.Le, ">": query.Gt, ">=": query.Ge} {
		got, err := query.ParseOp(s)
		if err != nil || got != want {
			t.Fatalf("ParseOp(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := query.ParseOp("~"); err == nil {
		t.Fatal("expected error")
	}
}
