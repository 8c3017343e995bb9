package database

import (
	"context"
	"os"
	"testing"

	"github.com/codepilot-ai/codepilot/ent/job"
	"github.com/codepilot-ai/codepilot/ent/step"
	"github.com/codepilot-ai/codepilot/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient wraps the shared test harness in our client type.
func newTestClient(t *testing.T) *Client {
	entClient, db := util.SetupTestDatabase(t)
	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestJobsAndStepsRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.Job.Create().
		SetID("job-1").
		SetRepoURL("https://github.com/acme/billing.git").
		SetGitRef("main").
		SetWorkspaceRef("job-1").
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, job.StateInit, created.State)
	assert.Equal(t, 0, created.ConsecutiveTestFailures)

	_, err = client.Step.Create().
		SetID("step-1").
		SetJobID("job-1").
		SetRole(step.RoleRepoMapper).
		Save(ctx)
	require.NoError(t, err)

	pending, err := client.Step.Query().
		Where(step.StateEQ(step.StatePending)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, step.RoleRepoMapper, pending[0].Role)
	assert.Nil(t, pending[0].WorkerID)

	// Cascade: deleting the job removes its steps.
	err = client.Job.DeleteOneID("job-1").Exec(ctx)
	require.NoError(t, err)

	count, err := client.Step.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		t.Cleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "codepilot", cfg.User)
		assert.Equal(t, "codepilot", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_PASSWORD", "secret")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "secret", cfg.Password)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, 50, cfg.MaxOpenConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_PORT", "not-a-port")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "codepilot",
		Password: "secret",
		Database: "codepilot",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Equal(t, "host=localhost port=5432 user=codepilot password=secret dbname=codepilot sslmode=disable", dsn)
}
