package validation

import (
	"strings"
	"sync"
	"testing"
	"testing/fstest"
)

func TestSchemaValidator_SearchResponse(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid response",
			data: `{"kind":"customsearch#search","items":[{"title":"A","snippet":"B","link":"https://a.example"}]}`,
		},
		{
			name: "no items",
			data: `{"kind":"customsearch#search","searchInformation":{"totalResults":"0"}}`,
		},
		{
			name:      "items is not an array",
			data:      `{"items":{"title":"A"}}`,
			wantError: true,
			errorMsg:  "/items",
		},
		{
			name:      "title is not a string",
			data:      `{"items":[{"title":42}]}`,
			wantError: true,
			errorMsg:  "/items/0/title",
		},
		{
			name:      "top level array",
			data:      `[]`,
			wantError: true,
			errorMsg:  "type",
		},
		{
			name:      "invalid JSON",
			data:      `{"items": [`,
			wantError: true,
			errorMsg:  "failed to parse JSON data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SchemaSearchResponse)

			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidatorFS(fstest.MapFS{})

	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")
	if err == nil || !strings.Contains(err.Error(), "failed to load schema") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestSchemaValidator_ConcurrentUse(t *testing.T) {
	v := NewSchemaValidator()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := v.ValidateBytes([]byte(`{"items":[]}`), SchemaSearchResponse); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
}
