package routes

import (
	"fmt"

	"github.com/modu-ai/routegen/internal/defs"
	"github.com/modu-ai/routegen/pkg/models"
)

// ValidateShape confirms that nodes is non-empty and that every field alias
// the caller changed from its default is defined on the first node. Only
// the first node is sampled; nested children are not inspected.
func ValidateShape(nodes []models.RouteNode, fm models.FieldMapping) error {
	if len(nodes) == 0 {
		return ErrEmptyRoutes
	}

	first := nodes[0]
	defaults := models.DefaultFieldMapping()
	checks := []struct {
		key, alias, def string
	}{
		{defs.KeyName, fm.Name, defaults.Name},
		{defs.KeyPath, fm.Path, defaults.Path},
		{defs.KeyChildren, fm.Children, defaults.Children},
	}

	for _, c := range checks {
		if c.alias == "" || c.alias == c.def {
			continue
		}
		if !first.Has(c.alias) {
			return fmt.Errorf("%w: cannot read %s via configured field %q on the first route, check the field mapping",
				ErrFieldNotFound, c.key, c.alias)
		}
	}
	return nil
}
