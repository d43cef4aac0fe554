package models

// File is a single generated source file. Paths are kept verbatim; the
// server performs no normalization and permits duplicates.
type File struct {
	Path    string `json:"path" binding:"required"`
	Content string `json:"content"`
}

// FilesBundle is an ordered set of generated files. Order is preserved
// from the producer all the way through storage and export.
type FilesBundle []File
