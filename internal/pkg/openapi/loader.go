package openapi

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

type versionHeader struct {
	Swagger string `json:"swagger"`
	OpenAPI string `json:"openapi"`
}

// Load parses a JSON or YAML OpenAPI document. Swagger 2.0 documents are
// converted to OpenAPI 3.
func Load(data []byte) (*openapi3.T, error) {
	jsonBuf, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse document")
	}

	var header versionHeader
	if err := json.Unmarshal(jsonBuf, &header); err != nil {
		return nil, errors.Wrap(err, "failed to read document version")
	}

	if header.Swagger != "" {
		return loadV2(jsonBuf)
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	return loader.LoadFromData(jsonBuf)
}

func loadV2(data []byte) (*openapi3.T, error) {
	docV2 := &openapi2.T{}
	if err := json.Unmarshal(data, docV2); err != nil {
		return nil, errors.Wrap(err, "failed to decode swagger 2.0 document")
	}

	docV3, err := openapi2conv.ToV3(docV2)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert swagger 2.0 document")
	}

	return docV3, nil
}
