package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/reoring/maxslog"
	"github.com/reoring/maxslog/document"
)

var severityColors = map[maxslog.Severity]*color.Color{
	maxslog.SeverityError:        color.New(color.FgRed, color.Bold),
	maxslog.SeverityWarning:      color.New(color.FgYellow, color.Bold),
	maxslog.SeverityInfo:         color.New(color.FgCyan),
	maxslog.SeverityDebugError:   color.New(color.FgRed),
	maxslog.SeverityDebugWarning: color.New(color.FgYellow),
	maxslog.SeverityDebugInfo:    color.New(color.FgHiBlack),
}

var severityOrder = []maxslog.Severity{
	maxslog.SeverityError,
	maxslog.SeverityWarning,
	maxslog.SeverityInfo,
	maxslog.SeverityDebugError,
	maxslog.SeverityDebugWarning,
	maxslog.SeverityDebugInfo,
}

// readDocument decodes path according to its extension; anything that is not
// .json, .yaml or .yml is read as XML.
func readDocument(path string) (*document.KernelNotifications, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if strings.EqualFold(filepath.Ext(path), ".json") {
			return document.DecodeJSON(f)
		}
		return document.DecodeYAML(f)
	default:
		return document.ReadFile(path)
	}
}

// loadLog reads path into an inactive Logger.
func loadLog(path string) (*maxslog.Logger, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	log := maxslog.New()
	if err := log.Load(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return log, nil
}

func printNotification(w io.Writer, index int, n maxslog.Notification) {
	label := fmt.Sprintf("%-13s", n.Severity)
	if c, ok := severityColors[n.Severity]; ok {
		label = c.Sprint(label)
	}
	fmt.Fprintf(w, "%4d %s", index, label)
	if n.Routine != "" {
		fmt.Fprintf(w, " [%s]", n.Routine)
	}
	if n.CompID > 0 {
		fmt.Fprintf(w, " comp=%d", n.CompID)
	}
	fmt.Fprintf(w, " %s\n", n.Message)
	for _, it := range n.Items {
		fmt.Fprintf(w, "     %s%s (comp=%d) = %s\n", strings.Repeat(" ", 14), it.AttrID, it.CompID, document.FormatFloat(it.Value))
	}
}

func printSummary(w io.Writer, shown []maxslog.Notification, total int) {
	counts := make(map[maxslog.Severity]int)
	for _, n := range shown {
		counts[n.Severity]++
	}
	var parts []string
	for _, s := range severityOrder {
		if c := counts[s]; c > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", s, c))
		}
	}
	fmt.Fprintf(w, "%d of %d notifications", len(shown), total)
	if len(parts) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(parts, ", "))
	}
	fmt.Fprintln(w)
}
