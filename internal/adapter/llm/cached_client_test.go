package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"dsa-tutor/internal/adapter"
	"dsa-tutor/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func TestNewCachedClient(t *testing.T) {
	db, _ := redismock.NewClientMock()
	c := adapter.NewRedisCacheAdapter(db)

	_, err := NewCachedClient(nil, c, "m", time.Hour)
	assert.Error(t, err)
	_, err = NewCachedClient(new(MockModelClient), nil, "m", time.Hour)
	assert.Error(t, err)

	client, err := NewCachedClient(new(MockModelClient), c, "m", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultCompletionTTL, client.ttl)
}

func TestCompletionKey(t *testing.T) {
	k1 := CompletionKey("gemini-1.5-pro", "prompt")
	assert.Contains(t, k1, "dsatutor:llm:completion:")
	assert.Equal(t, k1, CompletionKey("gemini-1.5-pro", "prompt"))
	assert.NotEqual(t, k1, CompletionKey("gemini-1.5-pro", "other prompt"))
	assert.NotEqual(t, k1, CompletionKey("other-model", "prompt"))
}

func TestCachedClient_Complete(t *testing.T) {
	ctx := context.Background()
	prompt := "explain heaps"
	key := CompletionKey("m", prompt)

	t.Run("hit skips the model", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		next := new(MockModelClient)
		client, err := NewCachedClient(next, adapter.NewRedisCacheAdapter(db), "m", time.Hour)
		require.NoError(t, err)

		redisMock.ExpectGet(key).SetVal("cached lesson")
		out, err := client.Complete(ctx, prompt)
		require.NoError(t, err)
		assert.Equal(t, "cached lesson", out)
		next.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("miss calls the model and stores the reply", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		next := new(MockModelClient)
		client, err := NewCachedClient(next, adapter.NewRedisCacheAdapter(db), "m", time.Hour)
		require.NoError(t, err)

		redisMock.ExpectGet(key).SetErr(redis.Nil)
		next.On("Complete", mock.Anything, prompt).Return("fresh lesson", nil).Once()
		redisMock.ExpectSet(key, "fresh lesson", time.Hour).SetVal("OK")

		out, err := client.Complete(ctx, prompt)
		require.NoError(t, err)
		assert.Equal(t, "fresh lesson", out)
		next.AssertExpectations(t)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache errors do not fail the call", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		next := new(MockModelClient)
		client, err := NewCachedClient(next, adapter.NewRedisCacheAdapter(db), "m", time.Hour)
		require.NoError(t, err)

		redisMock.ExpectGet(key).SetErr(errors.New("connection refused"))
		next.On("Complete", mock.Anything, prompt).Return("fresh lesson", nil).Once()
		redisMock.ExpectSet(key, "fresh lesson", time.Hour).SetErr(errors.New("connection refused"))

		out, err := client.Complete(ctx, prompt)
		require.NoError(t, err)
		assert.Equal(t, "fresh lesson", out)
	})

	t.Run("invalidate deletes the stored reply", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		client, err := NewCachedClient(new(MockModelClient), adapter.NewRedisCacheAdapter(db), "m", time.Hour)
		require.NoError(t, err)

		redisMock.ExpectDel(key).SetVal(1)
		require.NoError(t, client.Invalidate(ctx, prompt))

		redisMock.ExpectDel(key).SetErr(errors.New("connection refused"))
		assert.ErrorContains(t, client.Invalidate(ctx, prompt), "connection refused")
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("model errors are returned and not cached", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		next := new(MockModelClient)
		client, err := NewCachedClient(next, adapter.NewRedisCacheAdapter(db), "m", time.Hour)
		require.NoError(t, err)

		upstream := domain.NewLLMServiceError(errors.New("quota exceeded"))
		redisMock.ExpectGet(key).SetErr(redis.Nil)
		next.On("Complete", mock.Anything, prompt).Return("", upstream).Once()

		_, err = client.Complete(ctx, prompt)
		assert.ErrorIs(t, err, upstream)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
