package typemap

import (
	"fmt"
)

// TypeNode is a mapped type. The implementations are *Object, *Array,
// *Enum, *Union, *Primitive and *Unknown.
type TypeNode interface {
	fmt.Stringer
	isTypeNode()
}

// Object is a record type with ordered properties.
type Object struct {
	Properties []Property
}

// Property is one member of an Object.
type Property struct {
	Name        string
	Type        TypeNode
	Required    bool
	Description string
}

// Array is a list type.
type Array struct {
	Item TypeNode
}

// Enum is a closed set of literal values, in source order and possibly
// containing duplicates.
type Enum struct {
	Values []any
}

// Union is a choice between variants, in source order.
type Union struct {
	Variants []TypeNode
}

// Primitive is a scalar type.
type Primitive struct {
	Kind PrimitiveKind
	// Format is the source format qualifier, if any
	Format string
}

// Unknown is the fallback when no recognizable shape applies.
type Unknown struct{}

func (*Object) isTypeNode()    {}
func (*Array) isTypeNode()     {}
func (*Enum) isTypeNode()      {}
func (*Union) isTypeNode()     {}
func (*Primitive) isTypeNode() {}
func (*Unknown) isTypeNode()   {}

func (o *Object) String() string { return fmt.Sprintf("object(%d)", len(o.Properties)) }
func (a *Array) String() string  { return "array" }
func (e *Enum) String() string   { return fmt.Sprintf("enum(%d)", len(e.Values)) }
func (u *Union) String() string  { return fmt.Sprintf("union(%d)", len(u.Variants)) }
func (*Unknown) String() string  { return "unknown" }

func (p *Primitive) String() string {
	if p.Format == "" {
		return p.Kind.String()
	}
	return p.Kind.String() + "(" + p.Format + ")"
}

// AcceptsDate reports whether values of this primitive may be either a date
// or its string serialization.
func (p *Primitive) AcceptsDate() bool {
	return p.Kind == KindString && p.Format == "date-time"
}

// RequiredNames returns the names of the required properties, in order.
func (o *Object) RequiredNames() []string {
	var names []string
	for _, p := range o.Properties {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// Visitor handles each TypeNode case. Implementations must cover all six.
type Visitor[R any] interface {
	VisitObject(*Object) R
	VisitArray(*Array) R
	VisitEnum(*Enum) R
	VisitUnion(*Union) R
	VisitPrimitive(*Primitive) R
	VisitUnknown(*Unknown) R
}

// Visit dispatches n to the matching Visitor method. A nil node is visited
// as Unknown.
func Visit[R any](n TypeNode, v Visitor[R]) R {
	switch node := n.(type) {
	case *Object:
		return v.VisitObject(node)
	case *Array:
		return v.VisitArray(node)
	case *Enum:
		return v.VisitEnum(node)
	case *Union:
		return v.VisitUnion(node)
	case *Primitive:
		return v.VisitPrimitive(node)
	case *Unknown:
		return v.VisitUnknown(node)
	case nil:
		return v.VisitUnknown(&Unknown{})
	}
	// TypeNode is sealed; reaching here means a new case was added above
	// without a branch.
	panic(fmt.Sprintf("typemap: unhandled node type %T", n))
}
