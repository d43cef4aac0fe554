package generate

import (
	"encoding/json"
	"errors"
	"strings"

	"ai-app-builder-backend/internal/models"
)

// ErrUnparseable reports that LLM output could not be interpreted as a
// files bundle. It is not a failure of the endpoint: the caller substitutes
// the template library.
var ErrUnparseable = errors.New("output is not a files bundle")

// ParseBundle interprets raw LLM text as a JSON object with a files array
// of {path, content} records. Models routinely wrap their JSON in markdown
// fences, so those are stripped first. Anything else (malformed JSON, a
// bare array, a missing or empty files field, a record with an empty path)
// is rejected. No deduplication or path normalization happens here; the
// bundle is passed through in the order the model produced it.
func ParseBundle(raw string) (models.FilesBundle, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var wrapper struct {
		Files []models.File `json:"files"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err != nil {
		return nil, ErrUnparseable
	}
	if len(wrapper.Files) == 0 {
		return nil, ErrUnparseable
	}
	for _, f := range wrapper.Files {
		if f.Path == "" {
			return nil, ErrUnparseable
		}
	}
	return wrapper.Files, nil
}
