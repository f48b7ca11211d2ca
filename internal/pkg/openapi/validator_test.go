package openapi

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/require"

	"github.com/frain-dev/oasprobe/internal/pkg/scope"
	"github.com/frain-dev/oasprobe/pkg/models"
)

func barberWebhook(t *testing.T) *models.WebhookSchema {
	t.Helper()

	collection, err := New(loadSpec(t, "testdata/webhooks-3.1.yml")).Extract(scope.Webhooks)
	require.NoError(t, err)

	w, ok := collection.Find("POST barber")
	require.True(t, ok)

	return w
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		data          interface{}
		wantValid     bool
		wantErrorLen  int
		wantErrorDesc string
	}{
		{
			name: "Valid payload",
			data: map[string]interface{}{
				"event_type":     "appointment_created",
				"appointment_id": "123e4567-e89b-12d3-a456-426614174000",
				"notes":          "First time customer",
			},
			wantValid: true,
		},
		{
			name:          "Missing required field",
			data:          `{"event_type": "appointment_created"}`,
			wantValid:     false,
			wantErrorLen:  1,
			wantErrorDesc: "appointment_id is required",
		},
		{
			name:         "Value outside enum",
			data:         []byte(`{"event_type": "deleted", "appointment_id": "123e4567-e89b-12d3-a456-426614174000"}`),
			wantValid:    false,
			wantErrorLen: 1,
		},
		{
			name:         "Wrong type",
			data:         `{"event_type": "appointment_created", "appointment_id": "123e4567-e89b-12d3-a456-426614174000", "notes": 42}`,
			wantValid:    false,
			wantErrorLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(barberWebhook(t), tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.wantValid, result.IsValid)
			require.Len(t, result.Errors, tt.wantErrorLen)

			if tt.wantErrorDesc != "" {
				require.Equal(t, tt.wantErrorDesc, result.Errors[0].Description)
			}
		})
	}
}

func TestValidate_InlineSchema(t *testing.T) {
	schema := &openapi3.Schema{
		Type:     &openapi3.Types{"object"},
		Required: []string{"id"},
		Properties: map[string]*openapi3.SchemaRef{
			"id": {Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}}},
		},
	}

	w := &models.WebhookSchema{Name: "inline", Schema: New(nil).convertSchema(schema)}

	result, err := Validate(w, map[string]interface{}{"id": 7})
	require.NoError(t, err)
	require.True(t, result.IsValid)

	result, err = Validate(w, map[string]interface{}{"id": "seven"})
	require.NoError(t, err)
	require.False(t, result.IsValid)
	require.Equal(t, "id", result.Errors[0].Field)
}

func TestValidate_BadPayload(t *testing.T) {
	_, err := Validate(barberWebhook(t), `{"event_type": `)
	require.Error(t, err)
}
