// internal/models/theme.go
package models

import (
	"fmt"
	"regexp"
	"strings"
)

// FallbackColor is assigned to any canonical color property the caller does
// not supply.
const FallbackColor = "#000000"

const maxThemeNameLength = 100

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// ColorColumn pairs a canonical color property key (as it appears in theme
// files) with its column in the themes table. The slice below is the single
// source of truth for the property set: the schema, the insert/scan column
// lists, and the default-fill pass all iterate it.
type ColorColumn struct {
	Key    string
	Column string
}

var ColorColumns = []ColorColumn{
	{"textColor", "text_color"},
	{"backgroundColor", "background_color"},
	{"gutterColor", "gutter_color"},
	{"gutterDividerColor", "gutter_divider_color"},
	{"gutterCurrentLineNumberColor", "gutter_current_line_number_color"},
	{"gutterTextColor", "gutter_text_color"},
	{"selectedLineColor", "selected_line_color"},
	{"selectionColor", "selection_color"},
	{"suggestionQueryColor", "suggestion_query_color"},
	{"findResultBackgroundColor", "find_result_background_color"},
	{"delimiterBackgroundColor", "delimiter_background_color"},
	{"numberColor", "number_color"},
	{"operatorColor", "operator_color"},
	{"keywordColor", "keyword_color"},
	{"typeColor", "type_color"},
	{"langConstColor", "lang_const_color"},
	{"preprocessorColor", "preprocessor_color"},
	{"variableColor", "variable_color"},
	{"methodColor", "method_color"},
	{"stringColor", "string_color"},
	{"commentColor", "comment_color"},
	{"tagColor", "tag_color"},
	{"tagNameColor", "tag_name_color"},
	{"attrNameColor", "attr_name_color"},
	{"attrValueColor", "attr_value_color"},
	{"entityRefColor", "entity_ref_color"},
}

// Meta holds the identifying fields of a theme.
type Meta struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// Property is one (key, value) color override passed to New.
type Property struct {
	Key   string
	Value string
}

// Theme is a fully specified color theme: metadata plus a value for every
// canonical color property.
type Theme struct {
	UUID        string            `json:"uuid"`
	Name        string            `json:"name"`
	Author      string            `json:"author"`
	Description string            `json:"description"`
	Colors      map[string]string `json:"colors"`
}

// New builds a complete Theme from metadata and a list of property overrides.
// Every canonical key gets a value: overridden keys take the given value, the
// rest take FallbackColor. Keys outside the canonical set are ignored.
func New(meta Meta, properties []Property) Theme {
	colors := make(map[string]string, len(ColorColumns))
	for _, cc := range ColorColumns {
		colors[cc.Key] = FallbackColor
	}
	for _, p := range properties {
		if _, ok := colors[p.Key]; !ok {
			continue
		}
		if p.Value == "" {
			continue
		}
		colors[p.Key] = p.Value
	}
	return Theme{
		UUID:        meta.UUID,
		Name:        meta.Name,
		Author:      meta.Author,
		Description: meta.Description,
		Colors:      colors,
	}
}

func (t Theme) Validate() error {
	trimmedName := strings.TrimSpace(t.Name)
	if trimmedName == "" {
		return fmt.Errorf("name is required")
	}
	if len(trimmedName) > maxThemeNameLength {
		return fmt.Errorf("name must be %d characters or fewer", maxThemeNameLength)
	}
	if strings.TrimSpace(t.UUID) == "" {
		return fmt.Errorf("uuid is required")
	}
	for _, cc := range ColorColumns {
		value, ok := t.Colors[cc.Key]
		if !ok {
			return fmt.Errorf("%s is missing", cc.Key)
		}
		if !hexColorRegex.MatchString(value) {
			return fmt.Errorf("%s must be a 6-digit hex color like #AABBCC", cc.Key)
		}
	}
	return nil
}

// Clone returns a copy whose Colors map is independent of the receiver's.
func (t Theme) Clone() Theme {
	colors := make(map[string]string, len(t.Colors))
	for key, value := range t.Colors {
		colors[key] = value
	}
	t.Colors = colors
	return t
}
