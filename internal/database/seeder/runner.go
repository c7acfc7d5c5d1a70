package seeder

import (
	"context"
	"fmt"
)

type Result struct {
	Seeder string `json:"seeder"`
	Added  int    `json:"added"`
}

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, t Target) ([]Result, error) {
	if t.Skills == nil {
		return nil, fmt.Errorf("incomplete seed target")
	}
	out := make([]Result, 0, len(r.Seeders))
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		n, err := s.Run(ctx, t)
		if err != nil {
			return out, fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		out = append(out, Result{Seeder: s.Name(), Added: n})
	}
	return out, nil
}
