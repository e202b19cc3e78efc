package document

import (
	"errors"
	"strings"
	"testing"
)

func TestDuplicateKey_None(t *testing.T) {
	js := []byte(`{"appId":"a","notifications":[{"type":"INFO","message":"x"},{"type":"INFO","message":"y"}]}`)
	ptr, err := DuplicateKey(js)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if ptr != "" {
		t.Fatalf("expected no duplicate, got %q", ptr)
	}
}

func TestDuplicateKey_Pointer(t *testing.T) {
	cases := []struct{ js, want string }{
		{`{"a":1,"a":2}`, "/a"},
		{`{"notifications":[{"type":"INFO"},{"message":"m","data":{"items":[]},"message":"n"}]}`, "/notifications/1/message"},
		{`{"x/y":{"k":[1,{"z":true}],"k":0}}`, "/x~1y/k"},
	}
	for _, tc := range cases {
		got, err := DuplicateKey([]byte(tc.js))
		if err != nil {
			t.Fatalf("%s: err: %v", tc.js, err)
		}
		if got != tc.want {
			t.Fatalf("%s: want %q, got %q", tc.js, tc.want, got)
		}
	}
}

func TestDecodeJSON_RejectsDuplicateKeys(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{"notifications":[{"type":"INFO","type":"ERROR","message":"m"}]}`))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if !strings.Contains(err.Error(), "/notifications/0/type") {
		t.Fatalf("expected pointer in error, got %v", err)
	}
}

func TestDuplicateKey_SyntaxError(t *testing.T) {
	if _, err := DuplicateKey([]byte(`{"a":`)); err == nil {
		t.Fatal("expected syntax error")
	}
}
