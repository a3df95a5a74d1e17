package scaffold

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed templates/*
var templateFS embed.FS

// Project layout, relative to the project root.
const (
	ManifestFile      = "package.json"
	BundlerConfigFile = "webpack.config.js"
	BabelConfigFile   = ".babelrc"
	AppFile           = "src/App.js"
	EntryFile         = "src/index.js"
	StylesheetFile    = "src/index.css"
	HTMLShellFile     = "public/index.html"

	SourceDir     = "src"
	ComponentsDir = "src/components"
	PagesDir      = "src/pages"
)

// staticTemplates maps project-relative paths to embedded template files.
// The manifest is rendered separately because it carries the project name.
var staticTemplates = []struct {
	path     string
	template string
}{
	{BundlerConfigFile, "templates/webpack.config.js"},
	{BabelConfigFile, "templates/babelrc.json"},
	{EntryFile, "templates/index.js"},
	{StylesheetFile, "templates/index.css"},
	{HTMLShellFile, "templates/index.html"},
}

// PackageManifest is the package.json written into every project.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

func newPackageManifest(projectName string) PackageManifest {
	return PackageManifest{
		Name:    projectName,
		Version: "1.0.0",
		Private: true,
		Dependencies: map[string]string{
			"react":             "^17.0.2",
			"react-dom":         "^17.0.2",
			"react-router-dom":  "^5.3.4",
			"styled-components": "^5.3.6",
		},
		DevDependencies: map[string]string{
			"@babel/core":         "^7.18.10",
			"@babel/preset-react": "^7.18.6",
			"babel-loader":        "^8.2.5",
			"webpack":             "^5.74.0",
			"webpack-cli":         "^4.10.0",
			"webpack-dev-server":  "^4.11.1",
			"html-webpack-plugin": "^5.5.1",
			"css-loader":          "^6.7.1",
			"style-loader":        "^3.3.1",
		},
		Scripts: map[string]string{
			"start": "webpack serve --mode development --open",
			"build": "webpack --mode production",
		},
	}
}

// RenderManifest returns the package.json content for the named project.
// Map keys are emitted sorted, so the output is stable.
func RenderManifest(projectName string) (string, error) {
	data, err := json.MarshalIndent(newPackageManifest(projectName), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", ManifestFile, err)
	}

	return string(data) + "\n", nil
}

// StaticFiles returns every scaffold file of a project keyed by its
// project-relative path. Only the manifest depends on the project name.
func StaticFiles(projectName string) (map[string]string, error) {
	manifest, err := RenderManifest(projectName)
	if err != nil {
		return nil, err
	}

	files := map[string]string{ManifestFile: manifest}
	for _, tmpl := range staticTemplates {
		content, err := templateFS.ReadFile(tmpl.template)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", tmpl.template, err)
		}
		files[tmpl.path] = string(content)
	}

	return files, nil
}
