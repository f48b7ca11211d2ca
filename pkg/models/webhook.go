package models

// WebhookSchema represents a request schema extracted from an OpenAPI spec
type WebhookSchema struct {
	Name        string                 `json:"name"`
	Scope       string                 `json:"scope"`
	Description string                 `json:"description,omitempty"`
	Schema      map[string]interface{} `json:"schema"`
}

// WebhookCollection represents a collection of extracted schemas
type WebhookCollection struct {
	Webhooks []WebhookSchema `json:"webhooks"`
}

// Find returns the first schema called name.
func (c *WebhookCollection) Find(name string) (*WebhookSchema, bool) {
	for i := range c.Webhooks {
		if c.Webhooks[i].Name == name {
			return &c.Webhooks[i], true
		}
	}
	return nil, false
}
