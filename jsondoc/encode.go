package jsondoc

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Marshal encodes v as compact JSON. *Object keys keep their order, Number
// literals are written verbatim, and HTML characters are not escaped.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := appendValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like Marshal but applies Indent to format the output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, fmt.Errorf("jsondoc: indenting output: %w", err)
	}
	return buf.Bytes(), nil
}

func appendValue(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if x {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		return appendString(buf, x)
	case Number:
		if x == "" {
			buf.WriteString("0")
		} else {
			buf.WriteString(string(x))
		}
	case *Object:
		if x == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('{')
		for i, key := range x.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := appendValue(buf, x.values[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		data, err := json.MarshalWithOption(x, json.DisableHTMLEscape())
		if err != nil {
			return fmt.Errorf("jsondoc: encoding %T: %w", x, err)
		}
		buf.Write(data)
	}
	return nil
}

// appendString writes s as a JSON string literal with <, > and & left as is.
func appendString(buf *bytes.Buffer, s string) error {
	data, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		return fmt.Errorf("jsondoc: encoding string: %w", err)
	}
	buf.Write(data)
	return nil
}
