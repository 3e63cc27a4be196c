package project

import (
	"github.com/goccy/go-yaml"

	"github.com/kdl-tools/kdlview/ir"
)

// YAML returns the YAML text for a document's projection. Field omission
// follows the same rules as the JSON form.
func YAML(doc *ir.Document) ([]byte, error) {
	return yaml.Marshal(Project(doc))
}
