package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/frain-dev/oasprobe/pkg/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationResult represents the result of schema validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// Validate validates data against the webhook's JSON schema. data may be a
// JSON string, raw bytes, or any value that marshals to JSON.
func Validate(webhook *models.WebhookSchema, data interface{}) (*ValidationResult, error) {
	schemaBytes, err := json.Marshal(webhook.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %v", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)

	var documentLoader gojsonschema.JSONLoader
	switch v := data.(type) {
	case string:
		documentLoader = gojsonschema.NewStringLoader(v)
	case []byte:
		documentLoader = gojsonschema.NewBytesLoader(v)
	default:
		dataBytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal data: %v", err)
		}
		documentLoader = gojsonschema.NewBytesLoader(dataBytes)
	}

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %v", err)
	}

	validationResult := &ValidationResult{
		IsValid: result.Valid(),
	}

	if !result.Valid() {
		validationResult.Errors = make([]ValidationError, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			validationResult.Errors = append(validationResult.Errors, ValidationError{
				Field:       e.Field(),
				Description: e.Description(),
			})
		}
	}

	return validationResult, nil
}
