package typemap

// PrimitiveKind classifies a scalar type.
type PrimitiveKind int

const (
	// KindUnknown is a missing or unrecognized type keyword.
	KindUnknown PrimitiveKind = iota
	// KindString is "string", whatever its format.
	KindString
	// KindNumber is "number" or "integer".
	KindNumber
	// KindBoolean is "boolean".
	KindBoolean
	// KindNull is "null".
	KindNull
)

// String returns the string representation of the kind.
func (k PrimitiveKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// MapPrimitive maps a type keyword and format qualifier to a Primitive.
// The format is kept on the result for every kind so renderers can use it.
func MapPrimitive(typ, format string) *Primitive {
	p := &Primitive{Format: format}
	switch typ {
	case "string":
		p.Kind = KindString
	case "number", "integer":
		p.Kind = KindNumber
	case "boolean":
		p.Kind = KindBoolean
	case "null":
		p.Kind = KindNull
	default:
		p.Kind = KindUnknown
	}
	return p
}
