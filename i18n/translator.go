package i18n

import (
	"strings"
	"sync/atomic"
)

// Message codes for text synthesized by the validation checks.
const (
	CodeMissingAttribute = "missing_attribute"
)

// Translator retrieves localized messages for notification codes.
// data provides values to embed in the message (for example, "attribute").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var tmpl string
	switch t.lang {
	case "de":
		switch code {
		case CodeMissingAttribute:
			tmpl = "{attribute} wird zur Durchführung der Berechnung benötigt, fehlt aber."
		}
	default: // "en"
		switch code {
		case CodeMissingAttribute:
			tmpl = "{attribute} is required to perform the calculation but is missing."
		}
	}
	if tmpl == "" {
		return code
	}
	return fill(tmpl, data)
}

// fill replaces {key} placeholders with data values.
func fill(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

type current struct{ tr Translator }

var active atomic.Pointer[current]

func init() { active.Store(&current{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"de").
// It is safe to call while messages are being produced.
func SetLanguage(lang string) {
	if lang != "de" {
		lang = "en"
	}
	active.Store(&current{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). A nil tr restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	active.Store(&current{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return active.Load().tr.Message(code, data)
}
