package i18n

import "testing"

func TestTranslator_DefaultAndGerman(t *testing.T) {
	data := map[string]string{"attribute": "face_width"}

	// default is en
	want := "face_width is required to perform the calculation but is missing."
	if msg := T(CodeMissingAttribute, data); msg != want {
		t.Fatalf("expected %q, got %q", want, msg)
	}

	SetLanguage("de")
	if msg := T(CodeMissingAttribute, data); msg == want || msg == CodeMissingAttribute {
		t.Fatalf("expected german message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeEchoes(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	if msg := T(CodeMissingAttribute, nil); msg != "X:missing_attribute" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T(CodeMissingAttribute, map[string]string{"attribute": "a"}); msg != "a is required to perform the calculation but is missing." {
		t.Fatalf("nil translator should restore en, got %q", msg)
	}
}

func TestTranslator_ConcurrentSwitch(t *testing.T) {
	defer SetLanguage("en")
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				SetLanguage("de")
			} else {
				SetLanguage("en")
			}
		}
	}()
	for i := 0; i < 200; i++ {
		if msg := T(CodeMissingAttribute, map[string]string{"attribute": "b"}); msg == CodeMissingAttribute {
			t.Fatalf("message not resolved: %q", msg)
		}
	}
	<-done
}
