package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/frain-dev/oasprobe/internal/pkg/scope"
	"github.com/frain-dev/oasprobe/pkg/models"
)

var (
	ErrNoSchemas        = errors.New("no schemas found in OpenAPI spec")
	ErrUnsupportedScope = errors.New("scope carries no request schemas")
)

// webhookKeys are the top level fields webhooks may live under: "webhooks"
// in OpenAPI 3.1 and the "x-webhooks" extension in 3.0.
var webhookKeys = []string{"webhooks", "x-webhooks"}

// Converter handles the conversion from OpenAPI spec to JSON Schema
type Converter struct {
	spec *openapi3.T
}

// New creates a new Converter instance
func New(spec *openapi3.T) *Converter {
	return &Converter{spec: spec}
}

// Webhook is a named path item read from the webhooks section.
type Webhook struct {
	Name     string
	PathItem *openapi3.PathItem
}

// Webhooks decodes every webhook into a typed path item, sorted by name.
//
// kin-openapi leaves both keys in Extensions as generic maps, so each entry
// is re-encoded and unmarshalled into openapi3.PathItem.
func (c *Converter) Webhooks() ([]Webhook, error) {
	var webhooks []Webhook

	for _, key := range webhookKeys {
		raw, ok := c.spec.Extensions[key].(map[string]interface{})
		if !ok {
			continue
		}

		names := make([]string, 0, len(raw))
		for name := range raw {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			buf, err := json.Marshal(raw[name])
			if err != nil {
				return nil, fmt.Errorf("failed to marshal webhook %s: %v", name, err)
			}

			item := &openapi3.PathItem{}
			if err := item.UnmarshalJSON(buf); err != nil {
				return nil, fmt.Errorf("webhook %s is not a path item: %v", name, err)
			}

			webhooks = append(webhooks, Webhook{Name: name, PathItem: item})
		}
	}

	return webhooks, nil
}

// MethodOperation pairs an operation with its HTTP method.
type MethodOperation struct {
	Method    string
	Operation *openapi3.Operation
}

// Field is the lower case method, as it appears in the document.
func (m MethodOperation) Field() string {
	return strings.ToLower(m.Method)
}

// Operations returns the operations of a path item sorted by method.
func Operations(item *openapi3.PathItem) []MethodOperation {
	ops := item.Operations()

	methods := make([]string, 0, len(ops))
	for method := range ops {
		methods = append(methods, method)
	}
	sort.Strings(methods)

	out := make([]MethodOperation, 0, len(methods))
	for _, method := range methods {
		out = append(out, MethodOperation{Method: method, Operation: ops[method]})
	}

	return out
}

// Extract collects request JSON schemas from the given scopes. With no
// scopes it reads webhooks only.
func (c *Converter) Extract(scopes ...scope.Scope) (*models.WebhookCollection, error) {
	if len(scopes) == 0 {
		scopes = []scope.Scope{scope.Webhooks}
	}

	collection := &models.WebhookCollection{
		Webhooks: make([]models.WebhookSchema, 0),
	}

	for _, s := range scopes {
		var (
			schemas []models.WebhookSchema
			err     error
		)

		switch s {
		case scope.Webhooks:
			schemas, err = c.extractWebhooks()
		case scope.Paths:
			schemas = c.extractPaths()
		case scope.Schemas:
			schemas = c.extractComponents()
		default:
			err = fmt.Errorf("%w: %s", ErrUnsupportedScope, s)
		}

		if err != nil {
			return nil, err
		}

		collection.Webhooks = append(collection.Webhooks, schemas...)
	}

	if len(collection.Webhooks) == 0 {
		return nil, ErrNoSchemas
	}

	return collection, nil
}

func (c *Converter) extractWebhooks() ([]models.WebhookSchema, error) {
	webhooks, err := c.Webhooks()
	if err != nil {
		return nil, err
	}

	var out []models.WebhookSchema
	for _, wh := range webhooks {
		for _, op := range Operations(wh.PathItem) {
			out = append(out, c.requestSchemas(scope.Webhooks, op.Method+" "+wh.Name, op.Operation)...)
		}
	}

	return out, nil
}

func (c *Converter) extractPaths() []models.WebhookSchema {
	if c.spec.Paths == nil {
		return nil
	}

	paths := c.spec.Paths.Map()
	names := make([]string, 0, len(paths))
	for path := range paths {
		names = append(names, path)
	}
	sort.Strings(names)

	var out []models.WebhookSchema
	for _, path := range names {
		for _, op := range Operations(paths[path]) {
			out = append(out, c.requestSchemas(scope.Paths, op.Method+" "+path, op.Operation)...)
		}
	}

	return out
}

func (c *Converter) extractComponents() []models.WebhookSchema {
	if c.spec.Components == nil {
		return nil
	}

	names := make([]string, 0, len(c.spec.Components.Schemas))
	for name := range c.spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []models.WebhookSchema
	for _, name := range names {
		ref := c.spec.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}

		out = append(out, models.WebhookSchema{
			Name:        name,
			Scope:       string(scope.Schemas),
			Description: ref.Value.Description,
			Schema:      c.convertSchema(ref.Value),
		})
	}

	return out
}

// requestSchemas returns one entry per JSON media type of the request body.
func (c *Converter) requestSchemas(s scope.Scope, name string, operation *openapi3.Operation) []models.WebhookSchema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}

	content := operation.RequestBody.Value.Content
	contentTypes := make([]string, 0, len(content))
	for ct := range content {
		contentTypes = append(contentTypes, ct)
	}
	sort.Strings(contentTypes)

	var out []models.WebhookSchema
	for _, contentType := range contentTypes {
		if !strings.Contains(contentType, "json") {
			continue
		}

		mediaType := content[contentType]
		if mediaType == nil || mediaType.Schema == nil || mediaType.Schema.Value == nil {
			continue
		}

		description := operation.Description
		if description == "" {
			description = operation.Summary
		}

		out = append(out, models.WebhookSchema{
			Name:        name,
			Scope:       string(s),
			Description: description,
			Schema:      c.convertSchema(mediaType.Schema.Value),
		})
	}

	return out
}

// convertSchema converts OpenAPI schema to JSON Schema
func (c *Converter) convertSchema(schema *openapi3.Schema) map[string]interface{} {
	result := make(map[string]interface{})

	if schema.Type != nil {
		switch types := []string(*schema.Type); len(types) {
		case 0:
		case 1:
			result["type"] = types[0]
		default:
			result["type"] = types
		}
	}

	if schema.Description != "" {
		result["description"] = schema.Description
	}

	if len(schema.Properties) > 0 {
		properties := make(map[string]interface{})
		for propName, propSchema := range schema.Properties {
			if propSchema == nil || propSchema.Value == nil {
				continue
			}
			properties[propName] = c.convertSchema(propSchema.Value)
		}
		result["properties"] = properties
	}

	if len(schema.Required) > 0 {
		result["required"] = schema.Required
	}

	if schema.Items != nil && schema.Items.Value != nil {
		result["items"] = c.convertSchema(schema.Items.Value)
	}

	if schema.AdditionalProperties.Schema != nil && schema.AdditionalProperties.Schema.Value != nil {
		result["additionalProperties"] = c.convertSchema(schema.AdditionalProperties.Schema.Value)
	}

	if len(schema.Enum) > 0 {
		result["enum"] = schema.Enum
	}

	if schema.Format != "" {
		result["format"] = schema.Format
	}

	if schema.Example != nil {
		result["example"] = schema.Example
	}

	return result
}
