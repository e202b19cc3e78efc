package document

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// KernelNotifications is the root element of a notification log file.
//
// Field order matters: encoding/xml writes attributes and children in
// declaration order, which gives compId, routine, type on <notification> and
// message before data.
type KernelNotifications struct {
	XMLName       xml.Name       `xml:"kernelNotifications" json:"-" yaml:"-"`
	AppID         string         `xml:"appId,attr,omitempty" json:"appId,omitempty" yaml:"appId,omitempty"`
	AppVersion    string         `xml:"appVersion,attr,omitempty" json:"appVersion,omitempty" yaml:"appVersion,omitempty"`
	Notifications []Notification `xml:"notification" json:"notifications" yaml:"notifications"`
}

// Notification is the wire form of one diagnostic.
type Notification struct {
	CompID  int    `xml:"compId,attr,omitempty" json:"compId,omitempty" yaml:"compId,omitempty"`
	Routine string `xml:"routine,attr,omitempty" json:"routine,omitempty" yaml:"routine,omitempty"`
	Type    string `xml:"type,attr" json:"type" yaml:"type"`
	Message string `xml:"message" json:"message" yaml:"message"`
	Data    *Data  `xml:"data,omitempty" json:"data,omitempty" yaml:"data,omitempty"`
}

// Data wraps the explanatory items. A nil *Data renders as no element.
type Data struct {
	Items []Item `xml:"item" json:"items" yaml:"items"`
}

// Item is one attribute/value pair attached to a notification.
type Item struct {
	AttrID string `xml:"attrId,attr" json:"attrId" yaml:"attrId"`
	CompID int    `xml:"compId,attr" json:"compId" yaml:"compId"`
	Value  Float  `xml:"value,attr" json:"value" yaml:"value"`
}

// Len returns the number of notifications, tolerating a nil receiver.
func (k *KernelNotifications) Len() int {
	if k == nil {
		return 0
	}
	return len(k.Notifications)
}

// Float is a float64 that keeps NaN and infinities representable in every
// output format. XML uses the XML Schema lexical forms (NaN, INF, -INF).
type Float float64

// FormatFloat renders v the way item values are written to the document.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseFloat accepts the forms written by FormatFloat plus the spellings other
// producers use for non-finite values (Infinity, +Inf, ...).
func ParseFloat(s string) (float64, error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "nan":
		return math.NaN(), nil
	case "inf", "+inf", "infinity", "+infinity":
		return math.Inf(1), nil
	case "-inf", "-infinity":
		return math.Inf(-1), nil
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("document: invalid value %q: %w", s, err)
	}
	return v, nil
}

func (f Float) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: FormatFloat(float64(f))}, nil
}

func (f *Float) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := ParseFloat(attr.Value)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// MarshalJSON writes finite values as numbers and non-finite ones as strings,
// since JSON has no literal for them.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte(strconv.Quote(FormatFloat(v))), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *Float) UnmarshalJSON(b []byte) error {
	s := string(b)
	if uq, err := strconv.Unquote(s); err == nil {
		s = uq
	}
	v, err := ParseFloat(s)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}
