package app

import (
	"encoding/json"
	"fmt"
	"os"

	"tableflip.dev/focus/pkg/entity"
	"tableflip.dev/focus/pkg/store"
)

// migrateLegacyProjects upgrades a projects value stored in the original
// bare-names shape (["Work","Personal"]) to full Project records. The check
// runs before any typed read so the old shape is never mistaken for a
// corrupt value and wiped.
func (s *Service) migrateLegacyProjects() {
	raw, ok := s.KV.GetRaw(store.KeyProjects)
	if !ok {
		return
	}

	var current []entity.Project
	if err := json.Unmarshal(raw, &current); err == nil {
		return
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		// Neither shape; leave it for the typed read's corruption path.
		return
	}

	migrated := make([]entity.Project, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		migrated = append(migrated, entity.Project{
			ID:        entity.NewID("project"),
			Name:      name,
			CreatedAt: entity.Now(),
		})
	}
	if err := s.Projects.Save(migrated); err != nil {
		fmt.Fprintf(os.Stderr, "app: migrate legacy projects: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "app: migrated %d legacy project name(s)\n", len(migrated))
}
