package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skill-manager/internal/config"
	"skill-manager/internal/database/migration"
	dbpostgres "skill-manager/internal/database/postgres"
	"skill-manager/internal/delivery/http/handler"
	"skill-manager/internal/domain/employee"
	"skill-manager/internal/domain/project"
	"skill-manager/internal/domain/skill"
	"skill-manager/internal/infrastructure/cache"
	"skill-manager/internal/pkg/validator"
	"skill-manager/internal/repository"
	"skill-manager/internal/snapshot"
	"skill-manager/internal/usecase"

	"go.uber.org/zap"
)

const (
	DocSkills    = "skills"
	DocProjects  = "projects"
	DocEmployees = "employees"
)

// Container is the application context shared by every adapter. It is
// built once per process and owns the stores and their persistence.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	SkillStore    *repository.SkillStore
	ProjectStore  *repository.ProjectStore
	EmployeeStore *repository.EmployeeStore

	Skills      *usecase.Skill
	Projects    *usecase.Project
	Employees   *usecase.Employee
	Assignments *usecase.Assignment

	Checkpointer *snapshot.Checkpointer
	Backend      snapshot.Backend
	Pingers      map[string]handler.Pinger

	closers []func() error
}

type options struct {
	backend snapshot.Backend
	hooks   []usecase.ChangeHook
}

type Option func(*options)

// WithBackend replaces the backend chosen from config.
func WithBackend(b snapshot.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithChangeHook adds a hook that runs after the checkpoint hook.
func WithChangeHook(h usecase.ChangeHook) Option {
	return func(o *options) { o.hooks = append(o.hooks, h) }
}

// NewContainer wires stores, use cases and the checkpointer, then loads
// every snapshot document. A broken document aborts start-up.
func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger, policy snapshot.Policy, opts ...Option) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Container{
		Config:        cfg,
		Logger:        logger,
		SkillStore:    repository.NewSkillStore(),
		ProjectStore:  repository.NewProjectStore(),
		EmployeeStore: repository.NewEmployeeStore(),
		Pingers:       map[string]handler.Pinger{},
	}

	backend := o.backend
	if backend == nil {
		b, err := c.openBackend(ctx)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		backend = b
	}
	c.Backend = backend

	c.Checkpointer = snapshot.NewCheckpointer(backend, policy, logger.Named("snapshot"))
	snapshot.Register(c.Checkpointer, DocSkills, c.SkillStore, skill.ParseID)
	snapshot.Register(c.Checkpointer, DocProjects, c.ProjectStore, project.ParseID)
	snapshot.Register(c.Checkpointer, DocEmployees, c.EmployeeStore, employee.ParseID)

	hooks := usecase.ChangeHooks{
		usecase.ChangeHookFunc(func(ctx context.Context, _ usecase.Change) error {
			return c.Checkpointer.Mutated(ctx)
		}),
	}
	hooks = append(hooks, o.hooks...)

	v := validator.New()
	skillRepo := repository.NewMemorySkillRepository(c.SkillStore)
	projectRepo := repository.NewMemoryProjectRepository(c.ProjectStore)
	employeeRepo := repository.NewMemoryEmployeeRepository(c.EmployeeStore)

	c.Skills = usecase.NewSkillUsecase(skillRepo, v, hooks)
	c.Projects = usecase.NewProjectUsecase(projectRepo, v, hooks)
	c.Employees = usecase.NewEmployeeUsecase(employeeRepo, v, hooks)
	c.Assignments = usecase.NewAssignmentUsecase(employeeRepo, projectRepo, skillRepo, v, hooks)

	if err := c.Checkpointer.LoadAll(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	logger.Debug("stores loaded",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("policy", string(policy)),
		zap.Int("skills", c.SkillStore.Len()),
		zap.Int("projects", c.ProjectStore.Len()),
		zap.Int("employees", c.EmployeeStore.Len()),
	)
	return c, nil
}

func (c *Container) openBackend(ctx context.Context) (snapshot.Backend, error) {
	cfg := c.Config
	switch cfg.Storage.Backend {
	case config.BackendFile, "":
		return snapshot.NewFileBackend(cfg.Storage.Dir, map[string]string{
			DocSkills:    cfg.Storage.SkillsPath,
			DocProjects:  cfg.Storage.ProjectsPath,
			DocEmployees: cfg.Storage.EmployeesPath,
		}), nil

	case config.BackendPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		db, err := dbpostgres.Connect(connectCtx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, db.Close)
		c.Pingers["postgres"] = db
		if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return snapshot.NewPostgresBackend(db), nil

	case config.BackendRedis:
		r, err := cache.NewRedis(ctx, cfg.Redis, c.Logger.Named("redis"))
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, r.Close)
		c.Pingers["redis"] = r
		return snapshot.NewRedisBackend(r, cfg.Redis.KeyPrefix), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Flush saves every changed store. Session and command checkpoints call
// it when they end.
func (c *Container) Flush(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.Checkpointer.Flush(ctx)
}

// Close releases backend connections. It does not flush.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
