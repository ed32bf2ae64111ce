package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/apitypes/internal/config"
	"github.com/erraggy/apitypes/internal/fileutil"
)

// Project templates accepted by init.
const (
	TemplateBasic    = "basic"
	TemplateAdvanced = "advanced"
)

// InitFlags contains flags for the init command
type InitFlags struct {
	Template    string
	Yes         bool
	Name        string
	Description string
	Git         bool
}

// SetupInitFlags creates and configures a FlagSet for the init command.
// Returns the FlagSet and an InitFlags struct with bound flag variables.
func SetupInitFlags() (*flag.FlagSet, *InitFlags) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	flags := &InitFlags{}

	fs.StringVar(&flags.Template, "t", TemplateBasic, "project template: basic or advanced")
	fs.StringVar(&flags.Template, "template", TemplateBasic, "project template: basic or advanced")
	fs.BoolVar(&flags.Yes, "yes", false, "accept defaults without prompting")
	fs.BoolVar(&flags.Yes, "y", false, "accept defaults without prompting")
	fs.StringVar(&flags.Name, "name", "", "project name (default: current directory name)")
	fs.StringVar(&flags.Description, "description", "", "project description (default: \""+config.DefaultDescription+"\")")
	fs.BoolVar(&flags.Git, "git", true, "write a .gitignore")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: apitypes init [flags]\n\n")
		Writef(fs.Output(), "Create an apitypes project in the current directory.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nTemplates:\n")
		Writef(fs.Output(), "  basic (default)  JSON Schema example\n")
		Writef(fs.Output(), "  advanced         JSON Schema and OpenAPI examples\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  apitypes init\n")
		Writef(fs.Output(), "  apitypes init -t advanced --yes --name billing\n")
	}

	return fs, flags
}

// HandleInit executes the init command
func HandleInit(args []string) error {
	fs, flags := SetupInitFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("init command takes no positional arguments")
	}

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}
	return runInit(os.Stdin, os.Stderr, dir, fs, flags)
}

// runInit prompts on in for anything not given by flags and writes the
// project skeleton into dir.
func runInit(in io.Reader, out io.Writer, dir string, fs *flag.FlagSet, flags *InitFlags) error {
	if flags.Template != TemplateBasic && flags.Template != TemplateAdvanced {
		return fmt.Errorf("invalid template '%s'. Valid templates: %s, %s", flags.Template, TemplateBasic, TemplateAdvanced)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	name := flags.Name
	if name == "" {
		name = filepath.Base(dir)
	}
	description := flags.Description
	if description == "" {
		description = config.DefaultDescription
	}
	useGit := flags.Git

	if !flags.Yes {
		p := &prompter{in: bufio.NewScanner(in), out: out}
		if !set["name"] {
			name = p.ask("Project name", name)
		}
		if !set["description"] {
			description = p.ask("Project description", description)
		}
		if !set["git"] {
			useGit = p.confirm("Initialize Git repository?", useGit)
		}
	}

	for _, sub := range []string{"src", "types", "schemas"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), fileutil.DirPerm); err != nil {
			return fmt.Errorf("failed to initialize project: %w", err)
		}
	}

	files := []initFile{
		{filepath.Join("schemas", "example.json"), exampleSchema},
		{"README.md", projectReadme(name, description)},
	}
	if flags.Template == TemplateAdvanced {
		files = append(files, initFile{filepath.Join("schemas", "openapi.json"), exampleOpenAPI})
	}
	if useGit {
		files = append(files, initFile{".gitignore", gitignore})
	}

	if err := config.Save(filepath.Join(dir, config.FileName), config.New(name, description)); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}
	for _, f := range files {
		if err := fileutil.WriteFile(filepath.Join(dir, f.path), []byte(f.content), fileutil.ReadableByAll); err != nil {
			return fmt.Errorf("failed to initialize project: %w", err)
		}
	}

	Writef(out, "✓ Project initialized successfully!\n")
	Writef(out, "\nNext steps:\n")
	Writef(out, "1. Edit schemas in the schemas/ directory\n")
	Writef(out, "2. Run: apitypes generate\n")
	Writef(out, "3. Import generated types from ./types/\n")
	return nil
}

type initFile struct {
	path    string
	content string
}

// prompter reads line answers, falling back to defaults on empty input or EOF.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(question, def string) string {
	Writef(p.out, "? %s: (%s) ", question, def)
	if !p.in.Scan() {
		Writef(p.out, "\n")
		return def
	}
	if answer := strings.TrimSpace(p.in.Text()); answer != "" {
		return answer
	}
	return def
}

func (p *prompter) confirm(question string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	Writef(p.out, "? %s (%s) ", question, hint)
	if !p.in.Scan() {
		Writef(p.out, "\n")
		return def
	}
	switch strings.ToLower(strings.TrimSpace(p.in.Text())) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

func projectReadme(name, description string) string {
	return "# " + name + "\n\n" + description + `

## Getting Started

1. Define your API schemas in the ` + "`schemas/`" + ` directory
2. Run ` + "`apitypes generate`" + ` to generate TypeScript types
3. Import the generated types in your project

## Commands

- ` + "`apitypes generate`" + ` - Generate types from schemas
- ` + "`apitypes validate <schema>`" + ` - Validate a schema file
- ` + "`apitypes sync --url <url>`" + ` - Sync types from remote API

## Configuration

Edit ` + "`" + config.FileName + "`" + ` to customize the generation process.
`
}

const gitignore = `node_modules/
dist/
*.log
.env
.DS_Store
`

const exampleSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "User API",
  "type": "object",
  "definitions": {
    "User": {
      "type": "object",
      "properties": {
        "id": {
          "type": "string"
        },
        "name": {
          "type": "string"
        },
        "email": {
          "type": "string",
          "format": "email"
        },
        "createdAt": {
          "type": "string",
          "format": "date-time"
        }
      },
      "required": [
        "id",
        "name",
        "email"
      ]
    }
  }
}
`

const exampleOpenAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Orders API",
    "version": "1.0.0"
  },
  "paths": {
    "/orders": {
      "get": {
        "responses": {
          "200": {
            "description": "List orders"
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Order": {
        "type": "object",
        "description": "A customer order",
        "properties": {
          "id": {
            "type": "string",
            "format": "uuid"
          },
          "status": {
            "enum": ["pending", "paid", "shipped"]
          },
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "sku": {
                  "type": "string"
                },
                "quantity": {
                  "type": "integer"
                }
              },
              "required": ["sku", "quantity"]
            }
          },
          "placedAt": {
            "type": "string",
            "format": "date-time"
          },
          "note": {
            "oneOf": [
              { "type": "string" },
              { "type": "null" }
            ]
          }
        },
        "required": ["id", "status", "items"]
      }
    }
  }
}
`
