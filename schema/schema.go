package schema

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"

	"github.com/c360/cardkit/errors"
)

//go:embed adaptive-card.schema.json
var cardSchema string

// Issue is one structural problem found by schema validation.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks raw card JSON against the embedded card schema before
// any typed parsing. It is advisory, like semantic validation: the
// parser accepts documents the schema rejects, dropping what it cannot
// place. The error return covers only unreadable input or a broken
// schema, not schema violations.
func Validate(data []byte) ([]Issue, error) {
	schemaLoader := gojsonschema.NewStringLoader(cardSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Schema", "Validate", "schema evaluation")
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]Issue, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		issues = append(issues, Issue{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}

	return issues, nil
}
