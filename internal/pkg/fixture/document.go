// Package fixture builds and writes the OpenAPI document used to check
// webhook support end to end.
package fixture

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

const (
	OpenAPIVersion = "3.1.0"
	Title          = "Webhook Test"
	Version        = "1.0.0"
	WebhookName    = "newPet"
	MediaTypeJSON  = "application/json"

	DefaultFileName = "test_webhooks.json"
)

// Document is an OpenAPI description held as nested string keyed maps.
type Document map[string]interface{}

// WebhookTestDocument returns a new copy of the fixture: one "newPet" POST
// webhook taking an object with a required integer id and string name.
func WebhookTestDocument() Document {
	return Document{
		"openapi": OpenAPIVersion,
		"info": map[string]interface{}{
			"title":   Title,
			"version": Version,
		},
		"webhooks": map[string]interface{}{
			WebhookName: map[string]interface{}{
				"post": map[string]interface{}{
					"requestBody": map[string]interface{}{
						"content": map[string]interface{}{
							MediaTypeJSON: map[string]interface{}{
								"schema": map[string]interface{}{
									"type": "object",
									"properties": map[string]interface{}{
										"id":   map[string]interface{}{"type": "integer"},
										"name": map[string]interface{}{"type": "string"},
									},
									"required": []string{"id", "name"},
								},
							},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "Success",
						},
					},
				},
			},
		},
	}
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml and yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unsupported format %q, use json or yaml", s)
}

// FormatFromPath picks a format from the file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode serializes the document. Map keys are emitted sorted, so the output
// is stable across runs.
func (d Document) Encode(format Format) ([]byte, error) {
	buf, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal document")
	}

	switch format {
	case FormatJSON, "":
		return append(buf, '\n'), nil
	case FormatYAML:
		yamlBuf, err := yaml.JSONToYAML(buf)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert document to yaml")
		}
		return yamlBuf, nil
	default:
		return nil, errors.Errorf("unsupported format %q", format)
	}
}

// Decode parses encoded document bytes back into generic maps.
func Decode(data []byte, format Format) (map[string]interface{}, error) {
	if format == FormatYAML {
		var err error
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert yaml to json")
		}
	}

	m := map[string]interface{}{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to decode document")
	}

	return m, nil
}
