package fixture

import (
	"context"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pkg/errors"

	"github.com/frain-dev/oasprobe/internal/pkg/openapi"
)

// ValidationError describes the first problem found in a document.
type ValidationError struct {
	Webhook string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Webhook != "" && e.Field != "":
		return fmt.Sprintf("webhook %s: %s: %s", e.Webhook, e.Field, e.Reason)
	case e.Webhook != "":
		return fmt.Sprintf("webhook %s: %s", e.Webhook, e.Reason)
	default:
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
}

// Validate loads encoded document bytes (JSON or YAML) with kin-openapi and
// checks the info block, every webhook operation, and that each request body
// schema only requires properties it declares.
func Validate(ctx context.Context, data []byte) error {
	doc, err := openapi.Load(data)
	if err != nil {
		return errors.Wrap(err, "failed to load document")
	}

	if doc.OpenAPI == "" {
		return &ValidationError{Field: "openapi", Reason: "must be a non-empty string"}
	}

	if doc.Info == nil {
		return &ValidationError{Field: "info", Reason: "must be an object"}
	}

	if err := doc.Info.Validate(ctx); err != nil {
		return &ValidationError{Field: "info", Reason: err.Error()}
	}

	webhooks, err := openapi.New(doc).Webhooks()
	if err != nil {
		return errors.Wrap(err, "failed to read webhooks")
	}

	if len(webhooks) == 0 {
		return &ValidationError{Field: "webhooks", Reason: "must declare at least one webhook"}
	}

	for _, wh := range webhooks {
		if err := wh.PathItem.Validate(ctx); err != nil {
			return &ValidationError{Webhook: wh.Name, Reason: err.Error()}
		}

		for _, op := range openapi.Operations(wh.PathItem) {
			if err := checkRequestBody(wh.Name, op); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkRequestBody(webhook string, op openapi.MethodOperation) error {
	body := op.Operation.RequestBody
	if body == nil || body.Value == nil {
		return nil
	}

	contentTypes := make([]string, 0, len(body.Value.Content))
	for ct := range body.Value.Content {
		contentTypes = append(contentTypes, ct)
	}
	sort.Strings(contentTypes)

	for _, ct := range contentTypes {
		mt := body.Value.Content[ct]
		if mt == nil || mt.Schema == nil || mt.Schema.Value == nil {
			continue
		}

		field := fmt.Sprintf("%s.requestBody.content[%s].schema", op.Field(), ct)
		if err := checkRequired(webhook, field, mt.Schema.Value); err != nil {
			return err
		}
	}

	return nil
}

// checkRequired walks object schemas and their nested properties.
func checkRequired(webhook, field string, schema *openapi3.Schema) error {
	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; !ok {
			return &ValidationError{
				Webhook: webhook,
				Field:   field + ".required",
				Reason:  fmt.Sprintf("%q is not a declared property", name),
			}
		}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}

		if err := checkRequired(webhook, field+".properties."+name, prop.Value); err != nil {
			return err
		}
	}

	return nil
}
