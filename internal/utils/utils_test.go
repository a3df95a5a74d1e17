package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"react_scaffold_server/internal/utils"
)

func TestIsSafePathElement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"Header", true},
		{"react_project_logo", true},
		{"Nav-Bar.v2", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{`a\b`, false},
		{"bad\x00name", false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, utils.IsSafePathElement(test.name))
		})
	}
}

func TestProjectNameFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{"dashboard.png", "react_project_dashboard"},
		{"landing.page.final.jpg", "react_project_landing"},
		{"noext", "react_project_noext"},
		{"nested/dir/shot.png", "react_project_shot"},
		{`C:\Users\me\mock.webp`, "react_project_mock"},
		{".png", ""},
		{"", ""},
	}

	for _, test := range tests {
		test := test
		t.Run(test.filename, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, utils.ProjectNameFromFilename(test.filename))
		})
	}
}

func TestProjectNameForUpload(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "react_project_dashboard", utils.ProjectNameForUpload("dashboard.png"))

	first := utils.ProjectNameForUpload(".png")
	second := utils.ProjectNameForUpload("")
	assert.True(t, strings.HasPrefix(first, "react_project_"))
	assert.Len(t, first, len("react_project_")+36)
	assert.True(t, utils.IsSafePathElement(first))
	assert.NotEqual(t, first, second)
}

func TestDetermineFileType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Manifest", utils.DetermineFileType("package.json"))
	assert.Equal(t, "Config", utils.DetermineFileType(".babelrc"))
	assert.Equal(t, "Config", utils.DetermineFileType("webpack.config.js"))
	assert.Equal(t, "JavaScript", utils.DetermineFileType("src/components/Header.js"))
	assert.Equal(t, "CSS", utils.DetermineFileType("src/index.css"))
	assert.Equal(t, "HTML", utils.DetermineFileType("public/index.html"))
	assert.Equal(t, "Image", utils.DetermineFileType("uploads/shot.PNG"))
	assert.Equal(t, "Unknown", utils.DetermineFileType("LICENSE"))
}
