package validator

import (
	"strings"

	"github.com/erraggy/apitypes/internal/issues"
	"github.com/erraggy/apitypes/jsondoc"
)

// Rule messages, in the order the checks run.
const (
	msgMissingInfo      = `OpenAPI schema missing required "info" object`
	msgMissingTitle     = `OpenAPI info missing required "title" field`
	msgMissingVersion   = `OpenAPI info missing required "version" field`
	msgMissingPaths     = `OpenAPI schema missing "paths" object`
	msgUpgradeOpenAPI   = "Consider upgrading to OpenAPI 3.x"
	msgAddSchemaKeyword = "Consider adding $schema field for better validation"
	msgNothingDefined   = "Schema has no definitions or properties"
)

func (v *Validator) validateOpenAPI(doc *jsondoc.Object, result *ValidationResult) {
	info, _ := doc.Get("info")
	if !truthy(info) {
		v.addError(result, issues.FormatPath("info"), msgMissingInfo)
	} else {
		infoObj, _ := jsondoc.AsObject(info)
		if title, _ := infoObj.Get("title"); !truthy(title) {
			v.addError(result, issues.FormatPath("info", "title"), msgMissingTitle)
		}
		if version, _ := infoObj.Get("version"); !truthy(version) {
			v.addError(result, issues.FormatPath("info", "version"), msgMissingVersion)
		}
	}

	if paths, _ := doc.Get("paths"); !truthy(paths) {
		if v.StrictMode {
			v.addError(result, issues.FormatPath("paths"), msgMissingPaths)
		} else {
			v.addWarning(result, issues.FormatPath("paths"), msgMissingPaths)
		}
	}

	// Swagger 2.0 documents carry "swagger" instead and are not nagged.
	if version, _ := doc.Get("openapi"); truthy(version) {
		s, ok := version.(string)
		if !ok || !strings.HasPrefix(s, "3.") {
			v.addWarning(result, issues.FormatPath("openapi"), msgUpgradeOpenAPI)
		}
	}
}

func (v *Validator) validateJSONSchema(doc *jsondoc.Object, result *ValidationResult) {
	if v.StrictMode {
		if s, _ := doc.Get("$schema"); !truthy(s) {
			v.addWarning(result, issues.FormatPath("$schema"), msgAddSchemaKeyword)
		}
	}

	defs, _ := doc.Get("definitions")
	props, _ := doc.Get("properties")
	if !truthy(defs) && !truthy(props) {
		v.addWarning(result, issues.RootPath, msgNothingDefined)
	}
}

// truthy reports whether a decoded value counts as set: null, false, the
// empty string and zero do not. Empty objects and arrays do.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case jsondoc.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}
