package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}

func TestOTPRepository(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		repo := NewOTPRepository(client, time.Minute)

		require.NoError(t, repo.Set(ctx, "alice@example.com", "123456"))

		code, err := repo.Get(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, "123456", code)
	})

	t.Run("set replaces the previous code", func(t *testing.T) {
		repo := NewOTPRepository(client, time.Minute)

		require.NoError(t, repo.Set(ctx, "bob@example.com", "111111"))
		require.NoError(t, repo.Set(ctx, "bob@example.com", "222222"))

		code, err := repo.Get(ctx, "bob@example.com")
		require.NoError(t, err)
		require.Equal(t, "222222", code)
	})

	t.Run("missing code reads as empty", func(t *testing.T) {
		repo := NewOTPRepository(client, time.Minute)

		code, err := repo.Get(ctx, "ghost@example.com")
		require.NoError(t, err)
		require.Equal(t, "", code)
	})

	t.Run("delete clears the code", func(t *testing.T) {
		repo := NewOTPRepository(client, time.Minute)

		require.NoError(t, repo.Set(ctx, "carol@example.com", "123456"))
		require.NoError(t, repo.Delete(ctx, "carol@example.com"))

		code, err := repo.Get(ctx, "carol@example.com")
		require.NoError(t, err)
		require.Equal(t, "", code)
	})

	t.Run("code expires after the configured lifetime", func(t *testing.T) {
		repo := NewOTPRepository(client, time.Second)

		require.NoError(t, repo.Set(ctx, "dave@example.com", "123456"))

		time.Sleep(1500 * time.Millisecond)

		code, err := repo.Get(ctx, "dave@example.com")
		require.NoError(t, err)
		require.Equal(t, "", code)
	})
}
