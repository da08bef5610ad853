package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateComponentData(t *testing.T) {
	tests := []struct {
		name          string
		componentType string
		data          string
		wantErr       string
	}{
		{
			name:          "valid navbar",
			componentType: ComponentNavbar,
			data:          `{"logo":"Acme","items":[{"label":"Home","link":"/"}],"style":{"backgroundColor":"#fff"}}`,
		},
		{
			name:          "valid sidebar",
			componentType: ComponentSidebar,
			data:          `{"title":"Menu","items":[{"label":"Dashboard","link":"/dashboard","icon":"home"}],"style":{}}`,
		},
		{
			name:          "valid content",
			componentType: ComponentContent,
			data:          `{"sections":[{"type":"hero","title":"Welcome"}]}`,
		},
		{
			name:          "unknown field rejected",
			componentType: ComponentNavbar,
			data:          `{"logo":"Acme","items":[],"evil":"payload"}`,
			wantErr:       "unknown field",
		},
		{
			name:          "navbar item without label",
			componentType: ComponentNavbar,
			data:          `{"logo":"Acme","items":[{"link":"/"}]}`,
			wantErr:       "label is required",
		},
		{
			name:          "sidebar item without label",
			componentType: ComponentSidebar,
			data:          `{"title":"Menu","items":[{"link":"/x"}]}`,
			wantErr:       "label is required",
		},
		{
			name:          "content section without type",
			componentType: ComponentContent,
			data:          `{"sections":[{"title":"Welcome"}]}`,
			wantErr:       "type is required",
		},
		{
			name:          "wrong shape for type",
			componentType: ComponentContent,
			data:          `{"logo":"Acme","items":[]}`,
			wantErr:       "unknown field",
		},
		{
			name:          "unknown component type",
			componentType: "footer",
			data:          `{}`,
			wantErr:       "unknown component type",
		},
		{
			name:          "empty payload",
			componentType: ComponentNavbar,
			data:          ``,
			wantErr:       "empty",
		},
		{
			name:          "not json",
			componentType: ComponentNavbar,
			data:          `not json`,
			wantErr:       "invalid character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComponentData(tt.componentType, json.RawMessage(tt.data))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
