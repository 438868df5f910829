package themes

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed seed/themes.yaml
var seedFS embed.FS

// seedSchema validates the seed file shape before any of it reaches the
// store. Theme ids are store-assigned, so seed entries carry none.
const seedSchema = `{
	"type": "object",
	"required": ["themes"],
	"properties": {
		"themes": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "fields", "prompt_template"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"fields": {
						"type": "array",
						"items": {"type": "string", "minLength": 1}
					},
					"prompt_template": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

type seedFile struct {
	Themes []seedTheme `yaml:"themes"`
}

type seedTheme struct {
	Name           string   `yaml:"name"`
	Fields         []string `yaml:"fields"`
	PromptTemplate string   `yaml:"prompt_template"`
}

// Seed inserts the embedded starter themes when the store holds none.
// A non-empty store is left untouched.
func Seed(ctx context.Context, store *Store, logger *slog.Logger) error {
	existing, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing themes: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("store already has themes, skipping seed", "count", len(existing))
		return nil
	}

	seed, err := loadSeed()
	if err != nil {
		return err
	}

	for _, st := range seed.Themes {
		if _, err := store.Create(ctx, st.Name, st.Fields, st.PromptTemplate); err != nil {
			return fmt.Errorf("failed to seed theme %q: %w", st.Name, err)
		}
	}

	logger.Info("seeded starter themes", "count", len(seed.Themes))
	return nil
}

// loadSeed reads and validates the embedded seed file.
func loadSeed() (*seedFile, error) {
	raw, err := seedFS.ReadFile("seed/themes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	// jsonschema validates generic values, so decode once into any for
	// validation and once into the typed struct for use.
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("seed file is not valid YAML: %w", err)
	}

	schema, err := jsonschema.CompileString("themes.schema.json", seedSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile seed schema: %w", err)
	}
	if err := schema.Validate(normalizeYAML(generic)); err != nil {
		return nil, fmt.Errorf("seed file failed validation: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &seed, nil
}

// normalizeYAML converts YAML-decoded values into the JSON-shaped values
// jsonschema expects (map[string]any keys, not map[any]any).
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return val
	}
}

// SeedNames returns the names in the embedded seed file, for status output.
func SeedNames() ([]string, error) {
	seed, err := loadSeed()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(seed.Themes))
	for _, t := range seed.Themes {
		names = append(names, strings.TrimSpace(t.Name))
	}
	return names, nil
}
