// Package languages maps document paths to editor language identifiers.
package languages

import (
	"path/filepath"
	"strings"
)

// PlainText is the language assigned to paths no grammar claims.
const PlainText = "plaintext"

var byExtension = map[string]string{
	".c":      "c",
	".h":      "c",
	".cc":     "cpp",
	".cpp":    "cpp",
	".hpp":    "cpp",
	".cs":     "csharp",
	".css":    "css",
	".go":     "go",
	".groovy": "groovy",
	".htm":    "html",
	".html":   "html",
	".java":   "java",
	".js":     "javascript",
	".jsx":    "javascript",
	".mjs":    "javascript",
	".json":   "json",
	".jl":     "julia",
	".kt":     "kotlin",
	".kts":    "kotlin",
	".tex":    "latex",
	".lisp":   "lisp",
	".lua":    "lua",
	".md":     "markdown",
	".php":    "php",
	".py":     "python",
	".rb":     "ruby",
	".rs":     "rust",
	".sh":     "shell",
	".smali":  "smali",
	".sql":    "sql",
	".toml":   "toml",
	".ts":     "typescript",
	".tsx":    "typescript",
	".vb":     "visualbasic",
	".xml":    "xml",
	".yaml":   "yaml",
	".yml":    "yaml",
}

// Classify returns the language identifier for a document path based on its
// file extension. It is a pure function of the path.
func Classify(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if language, ok := byExtension[ext]; ok {
		return language
	}
	return PlainText
}
