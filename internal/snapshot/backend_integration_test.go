package snapshot

import (
	"context"
	"os"
	"testing"
	"time"

	"skill-manager/internal/config"
	"skill-manager/internal/database/migration"
	dbpostgres "skill-manager/internal/database/postgres"
	"skill-manager/internal/domain/skill"
	"skill-manager/internal/infrastructure/cache"
	"skill-manager/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()
	name := "skills-" + uuid.NewString()

	_, err := b.Read(ctx, name)
	require.ErrorIs(t, err, ErrNoSnapshot)

	c := NewCheckpointer(b, PolicyCommand, nil)
	s := repository.NewSkillStore()
	Register(c, name, s, skill.ParseID)
	require.NoError(t, c.LoadAll(ctx))
	added := s.Add(func(id skill.ID) skill.Skill { return skill.Skill{ID: id, Label: "Go"} })
	require.NoError(t, c.Flush(ctx))

	c2 := NewCheckpointer(b, PolicyCommand, nil)
	s2 := repository.NewSkillStore()
	Register(c2, name, s2, skill.ParseID)
	require.NoError(t, c2.LoadAll(ctx))

	got, ok := s2.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, added, got)
}

func TestPostgresBackend(t *testing.T) {
	host := os.Getenv("TEST_POSTGRES_HOST")
	if host == "" {
		t.Skip("TEST_POSTGRES_HOST not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     envOr("TEST_POSTGRES_PORT", "5432"),
		DBName:     envOr("TEST_POSTGRES_DB", "postgres"),
		DBUser:     envOr("TEST_POSTGRES_USER", "postgres"),
		DBPassword: os.Getenv("TEST_POSTGRES_PASSWORD"),
		DBSSLMode:  "disable",
	})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, migration.Runner{}.Run(ctx, db.SQLDB()))

	exerciseBackend(t, NewPostgresBackend(db))
}

func TestRedisBackend(t *testing.T) {
	host := os.Getenv("TEST_REDIS_HOST")
	if host == "" {
		t.Skip("TEST_REDIS_HOST not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	r, err := cache.NewRedis(ctx, config.RedisConfig{Host: host, Port: envOr("TEST_REDIS_PORT", "6379")}, nil)
	require.NoError(t, err)
	defer r.Close()

	exerciseBackend(t, NewRedisBackend(r, "skill-manager-test:"))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
