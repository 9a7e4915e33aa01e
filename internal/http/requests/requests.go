// Package requests defines API request bodies and their validation.
package requests

// Rename changes an entry's name within its directory.
type Rename struct {
	NewName string `json:"newName" validate:"required"`
}

// Move relocates a file or folder to another category and/or subfolder.
type Move struct {
	NewCategory string `json:"newCategory" validate:"required"`
	TargetPath  string `json:"targetPath"`
}

// CreateFolder creates a named folder under category/path.
type CreateFolder struct {
	Category string `json:"category" validate:"required"`
	Path     string `json:"path"`
	Name     string `json:"name" validate:"required"`
}
