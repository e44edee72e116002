package notify

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMemory_ExpiresOnClock(t *testing.T) {
	mock := clock.NewMock()
	m := NewMemory(mock, 5*time.Second)
	ctx := context.Background()

	require.NoError(t, m.Notify(ctx, "u1", Notification{Kind: "success", Title: "Submission Successful"}))

	n, err := m.Active(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "Submission Successful", n.Title)
	assert.Equal(t, mock.Now().Add(5*time.Second), n.ExpiresAt)

	mock.Add(4999 * time.Millisecond)
	n, err = m.Active(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, n)

	mock.Add(time.Millisecond)
	n, err = m.Active(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestMemory_ReplacesAndIsolates(t *testing.T) {
	mock := clock.NewMock()
	m := NewMemory(mock, 0)
	ctx := context.Background()

	require.NoError(t, m.Notify(ctx, "u1", Notification{Title: "first"}))
	mock.Add(3 * time.Second)
	require.NoError(t, m.Notify(ctx, "u1", Notification{Title: "second"}))
	mock.Add(3 * time.Second)

	n, err := m.Active(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "second", n.Title)

	n, err = m.Active(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestRedis_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	r := NewRedis(client, time.Second)
	defer r.Close()

	err := r.Notify(context.Background(), "u1", Notification{Title: "x"})
	assert.Error(t, err)

	_, err = r.Active(context.Background(), "u1")
	assert.Error(t, err)
}

func TestDialRedis_BadURL(t *testing.T) {
	_, err := DialRedis("postgres://nope", time.Second)
	assert.Error(t, err)
}

func TestRedis_Container(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=1 to run.")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	r, err := DialRedis("redis://"+endpoint, time.Second)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Ping(ctx))

	require.NoError(t, r.Notify(ctx, "u1", Notification{Kind: "success", Title: "Submission Successful"}))

	n, err := r.Active(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "Submission Successful", n.Title)

	ttl, err := r.client.TTL(ctx, key("u1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.Eventually(t, func() bool {
		n, err := r.Active(ctx, "u1")
		return err == nil && n == nil
	}, 5*time.Second, 100*time.Millisecond)
}
