// Package archive packages a files bundle as a ZIP archive for download.
package archive

import (
	"archive/zip"
	"fmt"
	"io"

	"ai-app-builder-backend/internal/models"
)

// WriteZip emits the bundle's files as archive entries in their original
// order, paths preserved verbatim. No selection or normalization happens
// here: duplicates and oddly-shaped paths go out exactly as stored.
func WriteZip(w io.Writer, files models.FilesBundle) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		entry, err := zw.Create(f.Path)
		if err != nil {
			return fmt.Errorf("failed to create zip entry %q: %w", f.Path, err)
		}
		if _, err := entry.Write([]byte(f.Content)); err != nil {
			return fmt.Errorf("failed to write zip entry %q: %w", f.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize zip: %w", err)
	}
	return nil
}
