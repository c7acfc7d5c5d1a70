package seeder

import (
	"context"

	"skill-manager/internal/search"
	"skill-manager/internal/store"
	"skill-manager/internal/usecase"
)

var catalogue = []string{
	"Go",
	"JavaScript",
	"TypeScript",
	"Rust",
	"PostgreSQL",
	"Redis",
	"Docker",
	"Kubernetes",
	"AWS",
	"GCP",
}

// SkillsSeeder adds the catalogue skills whose label is not in the store
// yet. Labels compare by canonical form, so "golang" blocks "Go".
type SkillsSeeder struct {
	Labels []string
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, t Target) (int, error) {
	labels := s.Labels
	if len(labels) == 0 {
		labels = catalogue
	}

	existing, err := t.Skills.FindSkills(ctx, store.All)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, sk := range existing {
		seen[search.CanonicalLabel(sk.Label)] = struct{}{}
	}

	added := 0
	for _, label := range labels {
		key := search.CanonicalLabel(label)
		if _, ok := seen[key]; ok {
			continue
		}
		if _, err := t.Skills.AddSkill(ctx, usecase.AddSkillInput{Label: label}); err != nil {
			return added, err
		}
		seen[key] = struct{}{}
		added++
	}
	return added, nil
}
