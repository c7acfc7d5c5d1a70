package seeder

import (
	"context"

	"skill-manager/internal/usecase"
)

type Target struct {
	Skills usecase.SkillUsecase
}

type Seeder interface {
	Name() string
	// Run returns the number of records it added.
	Run(ctx context.Context, t Target) (int, error)
}
