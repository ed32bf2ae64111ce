package jsondoc

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/erraggy/apitypes/schemaerrors"
)

// maxNestingDepth bounds object/array nesting so hostile input cannot
// exhaust the stack.
const maxNestingDepth = 10000

// Decode parses JSON text into the ordered value model.
// Invalid input fails with a *schemaerrors.SyntaxError. Numbers are never
// converted, so literals outside the float64 range decode verbatim.
func Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &schemaerrors.SyntaxError{Message: "unexpected end of JSON input"}
	}
	if err := checkSyntax(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	d := &decoder{dec: dec}

	// checkSyntax already rejected trailing data, so one value is the whole document.
	v, err := d.next(0)
	if err != nil {
		return nil, &schemaerrors.SyntaxError{Cause: err}
	}
	return v, nil
}

// checkSyntax validates data with the encoding/json scanner. Decoding into
// a RawMessage checks number literals without converting them to float64,
// and rejects trailing data.
func checkSyntax(data []byte) error {
	var raw stdjson.RawMessage
	err := stdjson.Unmarshal(data, &raw)
	if err == nil {
		return nil
	}
	synErr := &schemaerrors.SyntaxError{Cause: err}
	var jsonErr *stdjson.SyntaxError
	if errors.As(err, &jsonErr) {
		synErr.Offset = jsonErr.Offset
	}
	return synErr
}

type decoder struct {
	dec *json.Decoder
}

func (d *decoder) next(depth int) (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}
	return d.value(tok, depth)
}

func (d *decoder) value(tok any, depth int) (any, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return d.object(depth + 1)
		case '[':
			return d.array(depth + 1)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(v))
	case string:
		return v, nil
	case json.Number:
		return Number(v), nil
	case float64:
		return Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case bool:
		return v, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected token of type %T", tok)
}

func (d *decoder) object(depth int) (*Object, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("exceeded max nesting depth of %d", maxNestingDepth)
	}
	obj := NewObject(4)
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %T", tok)
		}
		val, err := d.next(depth)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
}

func (d *decoder) array(depth int) ([]any, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("exceeded max nesting depth of %d", maxNestingDepth)
	}
	items := make([]any, 0)
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return items, nil
		}
		val, err := d.value(tok, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, val)
	}
}
