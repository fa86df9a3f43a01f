package routes

import (
	"errors"
	"strings"
	"testing"

	"github.com/modu-ai/routegen/pkg/models"
)

func TestValidateShape(t *testing.T) {
	t.Parallel()

	defaults := models.DefaultFieldMapping()

	tests := []struct {
		name    string
		nodes   []models.RouteNode
		fm      models.FieldMapping
		wantErr error
		mention string
	}{
		{
			name:    "empty_array",
			nodes:   nil,
			fm:      defaults,
			wantErr: ErrEmptyRoutes,
		},
		{
			name:  "default_aliases_are_not_checked",
			nodes: []models.RouteNode{{"path": "home"}},
			fm:    defaults,
		},
		{
			name:  "custom_alias_present",
			nodes: []models.RouteNode{{"title": "Home", "path": "home"}},
			fm:    models.FieldMapping{Name: "title", Path: "path", Children: "children"},
		},
		{
			name:  "custom_alias_null_counts_as_present",
			nodes: []models.RouteNode{{"title": nil, "path": "home"}},
			fm:    models.FieldMapping{Name: "title", Path: "path", Children: "children"},
		},
		{
			name:    "custom_name_alias_missing",
			nodes:   []models.RouteNode{{"name": "Home", "path": "home"}},
			fm:      models.FieldMapping{Name: "title", Path: "path", Children: "children"},
			wantErr: ErrFieldNotFound,
			mention: `"title"`,
		},
		{
			name:    "custom_children_alias_missing",
			nodes:   []models.RouteNode{{"path": "home"}},
			fm:      models.FieldMapping{Name: "name", Path: "path", Children: "routes"},
			wantErr: ErrFieldNotFound,
			mention: "children",
		},
		{
			name: "only_first_node_is_sampled",
			nodes: []models.RouteNode{
				{"url": "home"},
				{"path": "missing-url"},
			},
			fm: models.FieldMapping{Name: "name", Path: "url", Children: "children"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateShape(tt.nodes, tt.fm)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateShape() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateShape() = %v, want %v", err, tt.wantErr)
			}
			if tt.mention != "" && !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error %q should mention %s", err, tt.mention)
			}
		})
	}
}
