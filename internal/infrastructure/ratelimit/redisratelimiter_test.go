package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	key := keyPrefix + "login:10.0.0.1"

	tests := []struct {
		name      string
		setup     func(mock redismock.ClientMock)
		wantAllow bool
		wantLeft  int
		wantRetry time.Duration
	}{
		{
			name: "first request starts the window",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectIncr(key).SetVal(1)
				mock.ExpectExpire(key, time.Minute).SetVal(true)
			},
			wantAllow: true,
			wantLeft:  2,
		},
		{
			name: "last request within limit",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectIncr(key).SetVal(3)
			},
			wantAllow: true,
			wantLeft:  0,
		},
		{
			name: "over the limit reports retry after",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectIncr(key).SetVal(4)
				mock.ExpectTTL(key).SetVal(42 * time.Second)
			},
			wantAllow: false,
			wantRetry: 42 * time.Second,
		},
		{
			name: "missing expiry restarts the window",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectIncr(key).SetVal(9)
				mock.ExpectTTL(key).SetVal(-1)
				mock.ExpectExpire(key, time.Minute).SetVal(true)
			},
			wantAllow: false,
			wantRetry: time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.setup(mock)

			limiter := NewRedisRateLimiter(client, 3, time.Minute)
			decision, err := limiter.Allow(ctx, "login:10.0.0.1")
			require.NoError(t, err)

			assert.Equal(t, tt.wantAllow, decision.Allowed)
			assert.Equal(t, 3, decision.Limit)
			assert.Equal(t, tt.wantLeft, decision.Remaining)
			assert.Equal(t, tt.wantRetry, decision.RetryAfter)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisRateLimiter_Allow_RedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectIncr(keyPrefix + "k").SetErr(errors.New("connection refused"))

	_, err := NewRedisRateLimiter(client, 3, time.Minute).Allow(context.Background(), "k")
	assert.ErrorContains(t, err, "connection refused")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectDel(keyPrefix + "k").SetVal(1)

	require.NoError(t, NewRedisRateLimiter(client, 3, time.Minute).Reset(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
