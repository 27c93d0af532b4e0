package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/jobscout-api/api/types"
	"github.com/killallgit/jobscout-api/internal/database"
	"github.com/killallgit/jobscout-api/internal/services/cache"
)

type unreachableCache struct {
	cache.Cache
}

func (unreachableCache) Ping(ctx context.Context) error {
	return errors.New("connection refused")
}

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupDeps      func(t *testing.T) *types.Dependencies
		expectedStatus int
		expectedBody   types.HealthResponse
	}{
		{
			name: "healthy with database and memory cache",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				t.Cleanup(func() { _ = db.Close() })
				return &types.Dependencies{DB: db, Cache: cache.NewMemoryCache(time.Minute, 10)}
			},
			expectedStatus: http.StatusOK,
			expectedBody: types.HealthResponse{
				Status: "ok",
				Services: map[string]map[string]string{
					"database": {"status": "healthy"},
					"cache":    {"status": "healthy", "backend": "memory"},
				},
			},
		},
		{
			name: "nothing configured",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			expectedStatus: http.StatusOK,
			expectedBody: types.HealthResponse{
				Status: "ok",
				Services: map[string]map[string]string{
					"database": {"status": "not configured"},
					"cache":    {"status": "disabled"},
				},
			},
		},
		{
			name: "closed database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				require.NoError(t, db.Close())
				return &types.Dependencies{DB: db}
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "unreachable redis",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{Cache: unreachableCache{}}
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			Get(tt.setupDeps(t))(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response types.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.NotEmpty(t, response.Timestamp)

			if tt.expectedStatus != http.StatusOK {
				assert.Equal(t, "error", response.Status)
				return
			}
			assert.Equal(t, tt.expectedBody.Status, response.Status)
			assert.Equal(t, tt.expectedBody.Services, response.Services)
		})
	}
}
