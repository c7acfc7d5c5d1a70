package usecase

import (
	"context"
	"errors"
	"time"
)

const (
	EntitySkill    = "skill"
	EntityProject  = "project"
	EntityEmployee = "employee"

	ActionCreated         = "created"
	ActionDeleted         = "deleted"
	ActionProjectAssigned = "project_assigned"
	ActionSkillAssigned   = "skill_assigned"
)

// Change describes one successful mutation of a store.
type Change struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}

type ChangeHook interface {
	Changed(ctx context.Context, c Change) error
}

type ChangeHookFunc func(ctx context.Context, c Change) error

func (f ChangeHookFunc) Changed(ctx context.Context, c Change) error {
	return f(ctx, c)
}

// ChangeHooks runs every hook in order and joins their errors.
type ChangeHooks []ChangeHook

func (hs ChangeHooks) Changed(ctx context.Context, c Change) error {
	var errs []error
	for _, h := range hs {
		if h == nil {
			continue
		}
		if err := h.Changed(ctx, c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func notify(ctx context.Context, hook ChangeHook, entity, action, id string, at time.Time) error {
	if hook == nil {
		return nil
	}
	return hook.Changed(ctx, Change{Entity: entity, Action: action, ID: id, At: at})
}
