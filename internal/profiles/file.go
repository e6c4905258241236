package profiles

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema string

// FieldError describes one schema violation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every schema violation found in a résumé document.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "invalid resume: " + strings.Join(parts, "; ")
}

// LoadFile reads a résumé JSON document from disk.
func LoadFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read resume: %w", err)
	}
	return Parse(data)
}

// Parse validates a résumé JSON document and decodes it.
func Parse(data []byte) (Profile, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resumeSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return Profile{}, fmt.Errorf("validate resume: %w", err)
	}
	if !result.Valid() {
		verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
		}
		return Profile{}, verr
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decode resume: %w", err)
	}
	return p, nil
}
