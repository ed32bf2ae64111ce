// Package config reads and writes the apitypes project file.
//
// The file is JSON on disk (written by "apitypes init"), but it is loaded
// through the YAML decoder so hand-edited YAML is accepted too.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/apitypes/internal/fileutil"
	"github.com/erraggy/apitypes/schemaerrors"
)

// FileName is the project file looked up in the working directory.
const FileName = "apitypes.config.json"

// Project defaults written by init.
const (
	DefaultVersion     = "1.0.0"
	DefaultSchemaPath  = "./schemas"
	DefaultOutputPath  = "./types"
	DefaultFormat      = "ts"
	DefaultDescription = "API types project"
)

// InputCandidates are the schema file names tried, in order, when no input
// is given.
var InputCandidates = []string{
	"api-schema.json",
	"schema.json",
	"openapi.json",
	"swagger.json",
	"api.json",
}

// Project is the content of the project file.
type Project struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version" yaml:"version"`
	// SchemaPath is a schema file, or a directory searched for one
	SchemaPath string `json:"schemaPath" yaml:"schemaPath"`
	// OutputPath is the directory generated files are written to
	OutputPath string `json:"outputPath" yaml:"outputPath"`
	Format     string `json:"format" yaml:"format"`
	// IncludeComments is nil when the file does not say
	IncludeComments *bool  `json:"includeComments,omitempty" yaml:"includeComments,omitempty"`
	ExportMode      string `json:"exportMode,omitempty" yaml:"exportMode,omitempty"`
	PackageName     string `json:"packageName,omitempty" yaml:"packageName,omitempty"`
}

// New returns a project with init's defaults.
func New(name, description string) *Project {
	comments := true
	if description == "" {
		description = DefaultDescription
	}
	return &Project{
		Name:            name,
		Description:     description,
		Version:         DefaultVersion,
		SchemaPath:      DefaultSchemaPath,
		OutputPath:      DefaultOutputPath,
		Format:          DefaultFormat,
		IncludeComments: &comments,
	}
}

// Load reads a project file. Both JSON and YAML content are accepted.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &schemaerrors.ConfigError{Option: "config", Value: path, Message: "cannot read project file", Cause: err}
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &schemaerrors.ConfigError{Option: "config", Value: path, Message: "cannot parse project file", Cause: err}
	}
	return &p, nil
}

// LoadIfExists loads the project file in dir. A missing file yields nil
// without error.
func LoadIfExists(dir string) (*Project, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return Load(path)
}

// Save writes p as two-space indented JSON.
func Save(path string, p *Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encoding project file: %w", err)
	}
	data = append(data, '\n')
	return fileutil.WriteFile(path, data, fileutil.ReadableByAll)
}

// CommentsEnabled reports the includeComments setting, defaulting to true.
func (p *Project) CommentsEnabled() bool {
	return p.IncludeComments == nil || *p.IncludeComments
}

// FindInput returns the schema file to generate from. SchemaPath is used
// when it names a file; when it names a directory, that directory is
// searched; otherwise dir itself is searched. Searching tries
// InputCandidates first, then the lexically first *.json file.
func (p *Project) FindInput(dir string) (string, error) {
	if p != nil && p.SchemaPath != "" {
		path := p.SchemaPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			return "", &schemaerrors.ConfigError{Option: "schemaPath", Value: p.SchemaPath, Message: "schema path not found", Cause: err}
		}
		if !info.IsDir() {
			return path, nil
		}
		return searchDir(path, true)
	}
	return searchDir(dir, false)
}

func searchDir(dir string, anyJSON bool) (string, error) {
	for _, name := range InputCandidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	if anyJSON {
		matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err == nil && len(matches) > 0 {
			slices.Sort(matches)
			return matches[0], nil
		}
	}
	return "", &schemaerrors.ConfigError{
		Option:  "input",
		Value:   dir,
		Message: "no schema file found; specify one with -i",
	}
}
