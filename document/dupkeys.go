package document

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// ErrDuplicateKey is returned by DecodeJSON when an object repeats a key.
// Plain unmarshalling would silently keep the last value.
var ErrDuplicateKey = errors.New("document: duplicate key")

type jsonFrame struct {
	object  bool
	keys    map[string]struct{}
	key     string
	index   int
	wantKey bool
}

// DuplicateKey returns the JSON Pointer of the first repeated object key in
// data, or "" when there is none.
func DuplicateKey(data []byte) (string, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var stack []*jsonFrame
	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if top.object {
			top.wantKey = true
		} else {
			top.index++
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return "", io.ErrUnexpectedEOF
			}
			return "", nil
		}
		if err != nil {
			return "", err
		}
		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, &jsonFrame{object: true, keys: make(map[string]struct{}), wantKey: true})
			case '[':
				stack = append(stack, &jsonFrame{})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].wantKey {
				top := stack[n-1]
				if _, dup := top.keys[v]; dup {
					return pointer(stack[:n-1], v), nil
				}
				top.keys[v] = struct{}{}
				top.key = v
				top.wantKey = false
				continue
			}
			valueDone()
		default:
			valueDone()
		}
	}
}

func pointer(parents []*jsonFrame, last string) string {
	var b strings.Builder
	for _, f := range parents {
		b.WriteByte('/')
		if f.object {
			b.WriteString(escapePointer(f.key))
		} else {
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	b.WriteByte('/')
	b.WriteString(escapePointer(last))
	return b.String()
}

func escapePointer(s string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s)
}
