package document

import (
	"fmt"
	"io"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding for a document.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a user supplied format name ("yml" is accepted).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xml", "":
		return FormatXML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("document: unknown format %q", s)
}

// EncodeAs writes doc in the requested format.
func EncodeAs(w io.Writer, doc *KernelNotifications, f Format) error {
	switch f {
	case FormatXML:
		return Encode(w, doc)
	case FormatJSON:
		return EncodeJSON(w, doc)
	case FormatYAML:
		return EncodeYAML(w, doc)
	}
	return fmt.Errorf("document: unknown format %q", f)
}

// EncodeJSON writes doc as indented JSON. Notifications is always an array.
func EncodeJSON(w io.Writer, doc *KernelNotifications) error {
	out := jsonView(doc)
	b, err := j.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("document: encode json: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("document: write json: %w", err)
	}
	return nil
}

// DecodeJSON reads a document previously written by EncodeJSON. Objects with
// repeated keys are rejected with ErrDuplicateKey.
func DecodeJSON(r io.Reader) (*KernelNotifications, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("document: read json: %w", err)
	}
	dup, err := DuplicateKey(data)
	if err != nil {
		return nil, fmt.Errorf("document: decode json: %w", err)
	}
	if dup != "" {
		return nil, fmt.Errorf("%w at %s", ErrDuplicateKey, dup)
	}
	var doc KernelNotifications
	if err := j.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document: decode json: %w", err)
	}
	return &doc, nil
}

// EncodeYAML writes doc as YAML; non-finite values use .nan/.inf.
func EncodeYAML(w io.Writer, doc *KernelNotifications) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(jsonView(doc)); err != nil {
		return fmt.Errorf("document: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("document: encode yaml: %w", err)
	}
	return nil
}

// DecodeYAML reads a document previously written by EncodeYAML.
func DecodeYAML(r io.Reader) (*KernelNotifications, error) {
	var doc KernelNotifications
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("document: decode yaml: %w", err)
	}
	return &doc, nil
}

func jsonView(doc *KernelNotifications) *KernelNotifications {
	if doc == nil {
		return &KernelNotifications{Notifications: []Notification{}}
	}
	if doc.Notifications != nil {
		return doc
	}
	cp := *doc
	cp.Notifications = []Notification{}
	return &cp
}
