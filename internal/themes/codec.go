package themes

import (
	"encoding/json"
	"fmt"

	"github.com/codr1/themehub/internal/models"
)

// MimeType is advertised for exported theme files.
const MimeType = "application/json"

// externalTheme is the on-disk theme file schema: metadata plus a flat
// key-to-hex map under "colors".
type externalTheme struct {
	UUID        string            `json:"uuid"`
	Name        string            `json:"name"`
	Author      string            `json:"author"`
	Description string            `json:"description"`
	Colors      map[string]string `json:"colors"`
}

// Import decodes an external theme file into a complete theme. Unknown color
// keys are dropped, missing ones take the fallback color. Malformed JSON or
// missing uuid/name yield *DeserializationError.
func Import(raw []byte) (models.Theme, error) {
	var ext externalTheme
	if err := json.Unmarshal(raw, &ext); err != nil {
		return models.Theme{}, &DeserializationError{Err: err}
	}
	if ext.UUID == "" {
		return models.Theme{}, &DeserializationError{Err: fmt.Errorf("uuid is required")}
	}
	if ext.Name == "" {
		return models.Theme{}, &DeserializationError{Err: fmt.Errorf("name is required")}
	}

	properties := make([]models.Property, 0, len(ext.Colors))
	for key, value := range ext.Colors {
		properties = append(properties, models.Property{Key: key, Value: value})
	}

	meta := models.Meta{
		UUID:        ext.UUID,
		Name:        ext.Name,
		Author:      ext.Author,
		Description: ext.Description,
	}
	return models.New(meta, properties), nil
}

// Export serializes a theme to the external file schema and suggests a
// filename of "<name>.json". Only canonical color keys are written.
func Export(theme models.Theme) ([]byte, string, error) {
	colors := make(map[string]string, len(models.ColorColumns))
	for _, cc := range models.ColorColumns {
		value, ok := theme.Colors[cc.Key]
		if !ok {
			value = models.FallbackColor
		}
		colors[cc.Key] = value
	}

	ext := externalTheme{
		UUID:        theme.UUID,
		Name:        theme.Name,
		Author:      theme.Author,
		Description: theme.Description,
		Colors:      colors,
	}
	data, err := json.MarshalIndent(ext, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("serialize theme %s: %w", theme.UUID, err)
	}
	return data, theme.Name + ".json", nil
}
