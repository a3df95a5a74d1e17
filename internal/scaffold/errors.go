package scaffold

import "errors"

// Project store errors.
var (
	// ErrProjectNotFound indicates the requested project directory does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidProjectName indicates a project name that is not a single path element.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrPathOutsideProject indicates a file path that would resolve outside its project.
	ErrPathOutsideProject = errors.New("path escapes project directory")
)
