package themes

import "github.com/codr1/themehub/internal/models"

// builtinThemes ship with the application, identified by stable slug uuids.
// They are read-only and never persisted; Builtin hands out copies.
var builtinThemes = []models.Theme{
	{
		UUID:        "darcula",
		Name:        "Darcula",
		Author:      "Themehub",
		Description: "The classic dark IDE palette",
		Colors: map[string]string{
			"textColor":                    "#A9B7C6",
			"backgroundColor":              "#2B2B2B",
			"gutterColor":                  "#313335",
			"gutterDividerColor":           "#555555",
			"gutterCurrentLineNumberColor": "#A4A3A3",
			"gutterTextColor":              "#616366",
			"selectedLineColor":            "#323232",
			"selectionColor":               "#214283",
			"suggestionQueryColor":         "#987DAC",
			"findResultBackgroundColor":    "#32593D",
			"delimiterBackgroundColor":     "#33654B",
			"numberColor":                  "#6897BB",
			"operatorColor":                "#A9B7C6",
			"keywordColor":                 "#CC7832",
			"typeColor":                    "#CC7832",
			"langConstColor":               "#CC7832",
			"preprocessorColor":            "#BBB529",
			"variableColor":                "#9876AA",
			"methodColor":                  "#FFC66D",
			"stringColor":                  "#6A8759",
			"commentColor":                 "#808080",
			"tagColor":                     "#E8BF6A",
			"tagNameColor":                 "#E8BF6A",
			"attrNameColor":                "#BABABA",
			"attrValueColor":               "#A5C261",
			"entityRefColor":               "#6D9CBE",
		},
	},
	{
		UUID:        "monokai",
		Name:        "Monokai",
		Author:      "Themehub",
		Description: "High-contrast palette on a warm charcoal background",
		Colors: map[string]string{
			"textColor":                    "#F8F8F2",
			"backgroundColor":              "#272823",
			"gutterColor":                  "#272823",
			"gutterDividerColor":           "#5B5A4F",
			"gutterCurrentLineNumberColor": "#C8BBAC",
			"gutterTextColor":              "#5B5A4F",
			"selectedLineColor":            "#34352D",
			"selectionColor":               "#666666",
			"suggestionQueryColor":         "#7CE0F3",
			"findResultBackgroundColor":    "#5F5E5A",
			"delimiterBackgroundColor":     "#616161",
			"numberColor":                  "#BB8FF8",
			"operatorColor":                "#F8F8F2",
			"keywordColor":                 "#EB347E",
			"typeColor":                    "#7FD0E4",
			"langConstColor":               "#EB347E",
			"preprocessorColor":            "#EB347E",
			"variableColor":                "#7FD0E4",
			"methodColor":                  "#B6E951",
			"stringColor":                  "#EBE48C",
			"commentColor":                 "#89826D",
			"tagColor":                     "#EB347E",
			"tagNameColor":                 "#EB347E",
			"attrNameColor":                "#B6E951",
			"attrValueColor":               "#EBE48C",
			"entityRefColor":               "#BB8FF8",
		},
	},
	{
		UUID:        "obsidian",
		Name:        "Obsidian",
		Author:      "Themehub",
		Description: "Muted greens and oranges on slate",
		Colors: map[string]string{
			"textColor":                    "#E0E2E4",
			"backgroundColor":              "#2A3134",
			"gutterColor":                  "#2A3134",
			"gutterDividerColor":           "#67777B",
			"gutterCurrentLineNumberColor": "#E0E2E4",
			"gutterTextColor":              "#859095",
			"selectedLineColor":            "#31393C",
			"selectionColor":               "#616161",
			"suggestionQueryColor":         "#9EC56F",
			"findResultBackgroundColor":    "#EEEEEA",
			"delimiterBackgroundColor":     "#616161",
			"numberColor":                  "#F8CE4E",
			"operatorColor":                "#E7E2BC",
			"keywordColor":                 "#9EC56F",
			"typeColor":                    "#9EC56F",
			"langConstColor":               "#9EC56F",
			"preprocessorColor":            "#9B84FF",
			"variableColor":                "#6E8BAE",
			"methodColor":                  "#E7E2BC",
			"stringColor":                  "#DE7C2E",
			"commentColor":                 "#7D8C93",
			"tagColor":                     "#9EC56F",
			"tagNameColor":                 "#9EC56F",
			"attrNameColor":                "#E0E2E4",
			"attrValueColor":               "#DE7C2E",
			"entityRefColor":               "#F8CE4E",
		},
	},
	{
		UUID:        "ladies_night",
		Name:        "Ladies Night",
		Author:      "Themehub",
		Description: "Deep blues with rose highlights",
		Colors: map[string]string{
			"textColor":                    "#E0E2E4",
			"backgroundColor":              "#22282C",
			"gutterColor":                  "#2A3134",
			"gutterDividerColor":           "#4F575A",
			"gutterCurrentLineNumberColor": "#E0E2E4",
			"gutterTextColor":              "#859095",
			"selectedLineColor":            "#373340",
			"selectionColor":               "#5B2B41",
			"suggestionQueryColor":         "#5F747C",
			"findResultBackgroundColor":    "#6E8BAE",
			"delimiterBackgroundColor":     "#616161",
			"numberColor":                  "#7EFBFD",
			"operatorColor":                "#E7E2BC",
			"keywordColor":                 "#DA89A2",
			"typeColor":                    "#DA89A2",
			"langConstColor":               "#DA89A2",
			"preprocessorColor":            "#9B84FF",
			"variableColor":                "#6E8BAE",
			"methodColor":                  "#8FB4C5",
			"stringColor":                  "#75D367",
			"commentColor":                 "#7D8C93",
			"tagColor":                     "#DA89A2",
			"tagNameColor":                 "#DA89A2",
			"attrNameColor":                "#E0E2E4",
			"attrValueColor":               "#75D367",
			"entityRefColor":               "#7EFBFD",
		},
	},
	{
		UUID:        "tomorrow_night",
		Name:        "Tomorrow Night",
		Author:      "Themehub",
		Description: "The Tomorrow Night palette",
		Colors: map[string]string{
			"textColor":                    "#C5C8C6",
			"backgroundColor":              "#222426",
			"gutterColor":                  "#222426",
			"gutterDividerColor":           "#4B4E55",
			"gutterCurrentLineNumberColor": "#FFFFFF",
			"gutterTextColor":              "#C5C8C6",
			"selectedLineColor":            "#2D2F33",
			"selectionColor":               "#383B40",
			"suggestionQueryColor":         "#EBBD6F",
			"findResultBackgroundColor":    "#4B4E54",
			"delimiterBackgroundColor":     "#616161",
			"numberColor":                  "#D49668",
			"operatorColor":                "#C5C8C6",
			"keywordColor":                 "#AD95B8",
			"typeColor":                    "#EBBD6F",
			"langConstColor":               "#AD95B8",
			"preprocessorColor":            "#AD95B8",
			"variableColor":                "#EB8EB1",
			"methodColor":                  "#87A1BB",
			"stringColor":                  "#B7BC73",
			"commentColor":                 "#969896",
			"tagColor":                     "#AD95B8",
			"tagNameColor":                 "#AD95B8",
			"attrNameColor":                "#C5C8C6",
			"attrValueColor":               "#B7BC73",
			"entityRefColor":               "#D49668",
		},
	},
	{
		UUID:        "visual_studio_2013",
		Name:        "Visual Studio 2013",
		Author:      "Themehub",
		Description: "Visual Studio dark palette",
		Colors: map[string]string{
			"textColor":                    "#C8C8C8",
			"backgroundColor":              "#1E1E1E",
			"gutterColor":                  "#1E1E1E",
			"gutterDividerColor":           "#555555",
			"gutterCurrentLineNumberColor": "#FFFFFF",
			"gutterTextColor":              "#616366",
			"selectedLineColor":            "#282828",
			"selectionColor":               "#3D6189",
			"suggestionQueryColor":         "#7CE0F3",
			"findResultBackgroundColor":    "#5F5E5A",
			"delimiterBackgroundColor":     "#616161",
			"numberColor":                  "#BACDAB",
			"operatorColor":                "#DCDCDC",
			"keywordColor":                 "#669BD1",
			"typeColor":                    "#669BD1",
			"langConstColor":               "#669BD1",
			"preprocessorColor":            "#9B9B9B",
			"variableColor":                "#9DDDFF",
			"methodColor":                  "#71C6B1",
			"stringColor":                  "#CE9F89",
			"commentColor":                 "#6BA455",
			"tagColor":                     "#669BD1",
			"tagNameColor":                 "#669BD1",
			"attrNameColor":                "#C8C8C8",
			"attrValueColor":               "#CE9F89",
			"entityRefColor":               "#BACDAB",
		},
	},
}

// Builtin returns the compiled-in themes in display order. Each call returns
// independent copies so callers cannot mutate the shipped set.
func Builtin() []models.Theme {
	result := make([]models.Theme, 0, len(builtinThemes))
	for _, theme := range builtinThemes {
		result = append(result, theme.Clone())
	}
	return result
}
