package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/xlab/treeprint"

	"github.com/erraggy/apitypes/jsondoc"
	"github.com/erraggy/apitypes/schema"
	"github.com/erraggy/apitypes/typemap"
)

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	MaxDepth int
}

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
// Returns the FlagSet and an InspectFlags struct with bound flag variables.
func SetupInspectFlags() (*flag.FlagSet, *InspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &InspectFlags{}

	fs.IntVar(&flags.MaxDepth, "max-depth", typemap.DefaultMaxDepth, "nesting depth past which nodes map to unknown")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: apitypes inspect [flags] <schema>\n\n")
		Writef(fs.Output(), "Print the mapped type tree of every definition in a schema.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  apitypes inspect schemas/example.json\n")
		Writef(fs.Output(), "  apitypes inspect --max-depth 3 openapi.json\n")
	}

	return fs, flags
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	fs, flags := SetupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one schema file path")
	}

	specPath := fs.Arg(0)
	data, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}
	canonical, err := schema.Normalize(data, schema.WithSourceName(specPath), schema.WithLogger(logger()))
	if err != nil {
		return err
	}

	Writef(os.Stdout, "%s", buildTypeTree(canonical, flags.MaxDepth).String())
	return nil
}

// buildTypeTree maps every definition of s and lays the results out as a tree
// rooted at the schema title.
func buildTypeTree(s *schema.CanonicalSchema, maxDepth int) treeprint.Tree {
	root := s.TitleOr("Untitled")
	if s.Version != nil {
		root += " v" + *s.Version
	}
	tree := treeprint.NewWithRoot(root + " [" + s.Dialect.String() + "]")

	m := typemap.Mapper{MaxDepth: maxDepth, Logger: logger()}
	for _, def := range s.Definitions {
		addTypeNode(tree, def.Name, m.Map(def.Schema))
	}
	return tree
}

func addTypeNode(parent treeprint.Tree, label string, n typemap.TypeNode) {
	text := label + ": " + n.String()
	if !hasChildren(n) {
		parent.AddNode(text)
		return
	}
	typemap.Visit[struct{}](n, treeChildren{parent.AddBranch(text)})
}

func hasChildren(n typemap.TypeNode) bool {
	switch node := n.(type) {
	case *typemap.Object:
		return len(node.Properties) > 0
	case *typemap.Array:
		return true
	case *typemap.Enum:
		return len(node.Values) > 0
	case *typemap.Union:
		return len(node.Variants) > 0
	default:
		return false
	}
}

// treeChildren adds the children of the visited node under tree.
type treeChildren struct {
	tree treeprint.Tree
}

func (c treeChildren) VisitObject(o *typemap.Object) struct{} {
	for _, p := range o.Properties {
		label := p.Name
		if !p.Required {
			label += "?"
		}
		addTypeNode(c.tree, label, p.Type)
	}
	return struct{}{}
}

func (c treeChildren) VisitArray(a *typemap.Array) struct{} {
	addTypeNode(c.tree, "items", a.Item)
	return struct{}{}
}

func (c treeChildren) VisitEnum(e *typemap.Enum) struct{} {
	for _, v := range e.Values {
		lit, err := jsondoc.Marshal(v)
		if err != nil {
			lit = []byte(fmt.Sprint(v))
		}
		c.tree.AddNode(string(lit))
	}
	return struct{}{}
}

func (c treeChildren) VisitUnion(u *typemap.Union) struct{} {
	for i, v := range u.Variants {
		addTypeNode(c.tree, fmt.Sprintf("[%d]", i), v)
	}
	return struct{}{}
}

func (treeChildren) VisitPrimitive(*typemap.Primitive) struct{} { return struct{}{} }

func (treeChildren) VisitUnknown(*typemap.Unknown) struct{} { return struct{}{} }
