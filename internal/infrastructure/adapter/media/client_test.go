package media

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/transform-studio/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/config"
	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	operations []string
	failures   int
}

func (r *recordingObserver) ObserveMediaRequest(operation string, err error, _ time.Duration) {
	r.operations = append(r.operations, operation)
	if err != nil {
		r.failures++
	}
}

func newTestClient(serverURL string, retries int, observer RequestObserver) *Client {
	cfg := config.MediaConfig{
		CloudName:       "demo",
		APIKey:          "key",
		APISecret:       "secret",
		Folder:          "imaginify",
		APIBaseURL:      serverURL,
		DeliveryBaseURL: "https://res.cloudinary.com",
		Timeout:         2 * time.Second,
		RetryAttempts:   retries,
	}
	return NewClient(cfg, nil, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger(), observer)
}

func TestClient_SearchPublicIDs_FollowsCursor(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		assert.Equal(t, "/v1_1/demo/resources/search", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)

		raw, _ := io.ReadAll(r.Body)
		var payload map[string]any
		assert.NoError(t, json.Unmarshal(raw, &payload))
		assert.Equal(t, "folder=imaginify AND cat", payload["expression"])

		w.Header().Set("Content-Type", "application/json")
		if payload["next_cursor"] == nil {
			_, _ = w.Write([]byte(`{"resources":[{"public_id":"imaginify/a"},{"public_id":"imaginify/b"}],"next_cursor":"c1"}`))
			return
		}
		assert.Equal(t, "c1", payload["next_cursor"])
		_, _ = w.Write([]byte(`{"resources":[{"public_id":"imaginify/c"}]}`))
	}))
	defer server.Close()

	observer := &recordingObserver{}
	client := newTestClient(server.URL, 0, observer)

	ids, err := client.SearchPublicIDs(context.Background(), "folder=imaginify AND cat")

	require.NoError(t, err)
	assert.Equal(t, []string{"imaginify/a", "imaginify/b", "imaginify/c"}, ids)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, []string{"search"}, observer.operations)
	assert.Zero(t, observer.failures)
}

func TestClient_SearchPublicIDs_NoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"resources":[],"total_count":0}`))
	}))
	defer server.Close()

	ids, err := newTestClient(server.URL, 0, nil).SearchPublicIDs(context.Background(), "x")

	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestClient_SearchPublicIDs_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"resources":[{"public_id":"imaginify/a"}]}`))
	}))
	defer server.Close()

	ids, err := newTestClient(server.URL, 1, nil).SearchPublicIDs(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, []string{"imaginify/a"}, ids)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_SearchPublicIDs_BacksOffOnInjectedClock(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"resources":[{"public_id":"imaginify/a"}]}`))
	}))
	defer server.Close()

	var waits []coreport.Duration
	timeMock := coremocks.NewMockTimeProvider(t)
	timeMock.EXPECT().Now().Return(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	timeMock.EXPECT().WithTimeout(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, d coreport.Duration) (context.Context, context.CancelFunc) {
			if d == coreport.Duration(2*time.Second) {
				return context.WithCancel(ctx)
			}
			// backoff waits elapse immediately
			waits = append(waits, d)
			expired, cancel := context.WithCancel(ctx)
			cancel()
			return expired, cancel
		})

	cfg := newTestClient(server.URL, 2, nil).cfg
	client := NewClient(cfg, nil, timeMock, logger.NewNoopLogger(), nil)

	ids, err := client.SearchPublicIDs(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, []string{"imaginify/a"}, ids)
	assert.Equal(t, []coreport.Duration{
		coreport.Duration(baseRetryDelay),
		coreport.Duration(2 * baseRetryDelay),
	}, waits)
}

func TestClient_SearchPublicIDs_CancelledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	timeMock := coremocks.NewMockTimeProvider(t)
	timeMock.EXPECT().Now().Return(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	timeMock.EXPECT().WithTimeout(mock.Anything, mock.Anything).RunAndReturn(
		func(parent context.Context, d coreport.Duration) (context.Context, context.CancelFunc) {
			if d == coreport.Duration(baseRetryDelay) {
				cancel()
			}
			return context.WithCancel(parent)
		})

	cfg := newTestClient(server.URL, 3, nil).cfg
	client := NewClient(cfg, nil, timeMock, logger.NewNoopLogger(), nil)

	_, err := client.SearchPublicIDs(ctx, "x")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_SearchPublicIDs_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid api_key"}}`))
	}))
	defer server.Close()

	observer := &recordingObserver{}
	_, err := newTestClient(server.URL, 3, observer).SearchPublicIDs(context.Background(), "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrExternalService)
	assert.Contains(t, err.Error(), "Invalid api_key")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, observer.failures)
}

func TestClient_SearchPublicIDs_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 0, nil).SearchPublicIDs(context.Background(), "x")

	assert.ErrorIs(t, err, errs.ErrExternalService)
}

func TestClient_FolderAndURL(t *testing.T) {
	client := newTestClient("http://unused", 0, nil)

	assert.Equal(t, "imaginify", client.Folder())

	got, err := client.BuildTransformationURL("imaginify/cat", 0, 0, map[string]any{"restore": true})
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/e_gen_restore/imaginify/cat", got)
}
