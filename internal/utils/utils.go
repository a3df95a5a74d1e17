package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// IsSafePathElement reports whether name can be used as a single file or
// directory name: non-empty, not "." or "..", and free of separators.
func IsSafePathElement(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}

// ProjectNameFromFilename derives a project name from an uploaded file name,
// using everything before the first '.' of its base name. It returns "" when
// nothing usable remains.
func ProjectNameFromFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	stem, _, _ := strings.Cut(base, ".")
	stem = strings.TrimSpace(stem)
	if !IsSafePathElement(stem) {
		return ""
	}
	return "react_project_" + stem
}

// ProjectNameForUpload is ProjectNameFromFilename with a random suffix used
// when the file name yields nothing usable.
func ProjectNameForUpload(filename string) string {
	if name := ProjectNameFromFilename(filename); name != "" {
		return name
	}
	return "react_project_" + uuid.New().String()
}

// DetermineFileType names the kind of a generated project file for logging.
func DetermineFileType(filename string) string {
	lowerFilename := strings.ToLower(filename)
	base := filepath.Base(lowerFilename)

	switch base {
	case ".babelrc":
		return "Config"
	case "package.json":
		return "Manifest"
	}
	if strings.Contains(base, "webpack.config") {
		return "Config"
	}

	switch filepath.Ext(lowerFilename) {
	case ".html":
		return "HTML"
	case ".css":
		return "CSS"
	case ".js":
		return "JavaScript"
	case ".jsx":
		return "JSX"
	case ".ts":
		return "TypeScript"
	case ".tsx":
		return "TSX"
	case ".json":
		return "JSON"
	case ".md":
		return "Markdown"
	case ".svg":
		return "SVG"
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return "Image"
	default:
		return "Unknown"
	}
}
