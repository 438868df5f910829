// Package themes manages prompt theme records: store round trips, the
// in-memory cache, usage counting, and the ranking projection.
package themes

import "fmt"

// Collection is the record store collection themes live in.
const Collection = "Theme"

// Theme is a named, reusable prompt template with declared placeholder
// fields and a persisted usage counter.
type Theme struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Fields         []string `json:"fields" yaml:"fields"`
	PromptTemplate string   `json:"prompt_template" yaml:"prompt_template"`
	UsageCount     int      `json:"usage_count" yaml:"usage_count"`
}

// docFields lists the theme attributes read back on every store round trip.
var docFields = []string{"name", "fields", "prompt_template", "usage_count"}

// themeFromDoc converts a record store document into a Theme.
func themeFromDoc(doc map[string]any) (Theme, error) {
	id, ok := doc["_docID"].(string)
	if !ok || id == "" {
		return Theme{}, fmt.Errorf("document missing _docID: %+v", doc)
	}

	t := Theme{ID: id}
	if name, ok := doc["name"].(string); ok {
		t.Name = name
	}
	if template, ok := doc["prompt_template"].(string); ok {
		t.PromptTemplate = template
	}
	if count, ok := doc["usage_count"].(float64); ok {
		t.UsageCount = int(count)
	}
	if raw, ok := doc["fields"].([]any); ok {
		for _, f := range raw {
			if s, ok := f.(string); ok {
				t.Fields = append(t.Fields, s)
			}
		}
	}
	return t, nil
}

// docInput builds the mutation input for a theme's mutable attributes.
func docInput(name string, fields []string, template string) map[string]any {
	return map[string]any{
		"name":            name,
		"fields":          fields,
		"prompt_template": template,
	}
}
