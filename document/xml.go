package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Header is the XML declaration written before the root element.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const indent = "    "

// Encode writes doc as an indented XML document, including the declaration.
func Encode(w io.Writer, doc *KernelNotifications) error {
	if doc == nil {
		doc = &KernelNotifications{}
	}
	if _, err := io.WriteString(w, Header); err != nil {
		return fmt.Errorf("document: write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("document: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("document: encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("document: write trailer: %w", err)
	}
	return nil
}

// Marshal returns the full XML rendering of doc.
func Marshal(doc *KernelNotifications) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a kernelNotifications document. A different root element is
// rejected.
func Decode(r io.Reader) (*KernelNotifications, error) {
	var doc KernelNotifications
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("document: decode: %w", err)
	}
	return &doc, nil
}

// Unmarshal is Decode over a byte slice.
func Unmarshal(data []byte) (*KernelNotifications, error) {
	return Decode(bytes.NewReader(data))
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (*KernelNotifications, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
