package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/jobscout-api/internal/models"
	"github.com/killallgit/jobscout-api/internal/services/jsearch"
	apperrors "github.com/killallgit/jobscout-api/pkg/errors"
)

func testConfig() Config {
	return Config{
		Country:           "India",
		CountryCode:       "IN",
		DefaultLocation:   "India",
		MaxQueries:        3,
		EnhancedThreshold: 10,
		RequestTimeout:    5 * time.Second,
		MatchScore:        85,
		Source:            "JSearch",
		CacheTTL:          time.Minute,
	}
}

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string][]byte{}
	}
	c.data[key] = value
	return nil
}

type recordingLogger struct {
	entries []*models.SearchLog
	err     error
}

func (l *recordingLogger) Record(ctx context.Context, entry *models.SearchLog) error {
	l.entries = append(l.entries, entry)
	return l.err
}

func TestService_MumbaiScenario(t *testing.T) {
	var records []jsearch.RawRecord
	records = append(records, indiaRecords("mum", "Mumbai", "Maharashtra", 6)...)
	for _, city := range []string{"Pune", "Delhi", "Chennai", "Hyderabad", "Kolkata", "Jaipur", "Ahmedabad", "Kochi", "Indore"} {
		records = append(records, indiaRecords(city, city, "", 1)...)
	}
	require.Len(t, records, 15)

	provider := &fakeProvider{fallback: records}
	svc := NewService(provider, testConfig())

	result, err := svc.Search(context.Background(), models.SearchRequest{
		Title:    "software engineer",
		Location: "Mumbai",
		Keywords: "React",
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)

	assert.Len(t, result.Jobs, 6)
	assert.Equal(t, 6, result.Pagination.TotalJobs)
	assert.Equal(t, 1, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNextPage)
	assert.False(t, result.Enhanced)
	assert.Equal(t, "Found 6 jobs", result.Message)
	assert.Equal(t, 1, provider.callCount())
	assert.Equal(t, "software engineer React", provider.calls[0].Text)
	for _, job := range result.Jobs {
		assert.Equal(t, "Mumbai, Maharashtra, India", job.Location)
	}
}

func TestService_EnhancedDedupScenario(t *testing.T) {
	provider := &fakeProvider{
		responses: map[string][]jsearch.RawRecord{
			"golang developer":     indiaRecords("a", "Pune", "", 5),
			"golang India":         append(indiaRecords("b", "Delhi", "", 4), indiaRecords("a", "Pune", "", 2)...),
			"developer jobs India": append(indiaRecords("c", "Noida", "", 3), indiaRecords("b", "Delhi", "", 1)...),
		},
	}
	svc := NewService(provider, testConfig())

	result, err := svc.Search(context.Background(), models.SearchRequest{
		Title:    "golang",
		Keywords: "developer",
		Location: "India",
		Page:     1,
		PageSize: 100,
		Enhanced: true,
	})
	require.NoError(t, err)

	assert.True(t, result.Enhanced)
	assert.Equal(t, 3, provider.callCount())
	assert.Equal(t, 15, result.Stats.RawCount)
	assert.Equal(t, 12, result.Stats.UniqueCount)
	assert.Equal(t, 12, result.Pagination.TotalJobs)
	assert.Len(t, result.Jobs, 12)
}

func TestService_PartialFailure(t *testing.T) {
	provider := &fakeProvider{
		responses: map[string][]jsearch.RawRecord{
			"golang developer": indiaRecords("ok", "Pune", "", 7),
		},
		failures: map[string]bool{"golang India": true, "developer jobs India": true},
	}
	svc := NewService(provider, testConfig())

	result, err := svc.Search(context.Background(), models.SearchRequest{
		Title: "golang", Keywords: "developer", PageSize: 20, Enhanced: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.QueriesFailed)
	assert.Equal(t, 7, result.Pagination.TotalJobs)
	assert.Len(t, result.Jobs, 7)
}

func TestService_AllProvidersFailed(t *testing.T) {
	provider := &fakeProvider{failures: map[string]bool{"sre": true}}
	logger := &recordingLogger{}
	svc := NewService(provider, testConfig(), WithSearchLogger(logger))

	result, err := svc.Search(context.Background(), models.SearchRequest{Title: "sre"})

	assert.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.Equal(t, apperrors.ErrCodeExternalService, apperrors.GetCode(err))
	require.NotNil(t, result)
	assert.NotNil(t, result.Jobs)
	assert.Empty(t, result.Jobs)
	assert.Equal(t, models.Pagination{}, result.Pagination)
	require.Len(t, logger.entries, 1)
	assert.Equal(t, 1, logger.entries[0].QueriesFailed)
}

func TestService_Validation(t *testing.T) {
	svc := NewService(&fakeProvider{}, testConfig())

	tests := []struct {
		name string
		req  models.SearchRequest
		code apperrors.ErrorCode
	}{
		{"empty query", models.SearchRequest{Location: "Delhi"}, apperrors.ErrCodeEmptyQuery},
		{"negative page", models.SearchRequest{Title: "go", Page: -1}, apperrors.ErrCodeValidation},
		{"unsupported page size", models.SearchRequest{Title: "go", PageSize: 15}, apperrors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Search(context.Background(), tt.req)
			assert.Nil(t, result)
			assert.Equal(t, tt.code, apperrors.GetCode(err))
		})
	}
}

func TestService_DefaultsAndPaging(t *testing.T) {
	provider := &fakeProvider{fallback: indiaRecords("j", "Pune", "", 12)}
	svc := NewService(provider, testConfig())

	result, err := svc.Search(context.Background(), models.SearchRequest{Title: "analyst", Page: 2, PageSize: 5})
	require.NoError(t, err)

	assert.Equal(t, "India", provider.calls[0].Location)
	assert.Equal(t, models.Pagination{
		CurrentPage: 2, PageSize: 5, TotalJobs: 12, TotalPages: 3,
		HasNextPage: true, HasPrevPage: true, StartIndex: 6, EndIndex: 10,
	}, result.Pagination)
	assert.Equal(t, "j-5", result.Jobs[0].ID)

	result, err = svc.Search(context.Background(), models.SearchRequest{Title: "analyst", Page: 9, PageSize: 5})
	require.NoError(t, err)
	assert.Empty(t, result.Jobs)
	assert.False(t, result.Pagination.HasNextPage)
	assert.Equal(t, "Found 12 jobs", result.Message)
}

func TestService_NoJobsMessage(t *testing.T) {
	svc := NewService(&fakeProvider{}, testConfig())

	result, err := svc.Search(context.Background(), models.SearchRequest{Title: "astronaut"})
	require.NoError(t, err)
	assert.Equal(t, "No jobs found", result.Message)
	assert.NotNil(t, result.Jobs)
}

func TestService_CacheServesLaterPages(t *testing.T) {
	provider := &fakeProvider{fallback: indiaRecords("c", "Pune", "", 8)}
	cache := &mapCache{}
	logger := &recordingLogger{}
	svc := NewService(provider, testConfig(), WithCache(cache), WithSearchLogger(logger))

	first, err := svc.Search(context.Background(), models.SearchRequest{Title: "tester", Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.False(t, first.Stats.CacheHit)

	second, err := svc.Search(context.Background(), models.SearchRequest{Title: "tester", Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.True(t, second.Stats.CacheHit)
	assert.Len(t, second.Jobs, 3)
	assert.Equal(t, 1, provider.callCount())

	var cached []models.Job
	for _, v := range cache.data {
		require.NoError(t, json.Unmarshal(v, &cached))
	}
	assert.Len(t, cached, 8)

	assert.Equal(t, 1, first.Stats.QueriesIssued)
	assert.Zero(t, second.Stats.QueriesIssued)
	require.Len(t, logger.entries, 2)
	assert.Equal(t, 1, logger.entries[0].QueriesIssued)
	assert.False(t, logger.entries[0].CacheHit)
	assert.Zero(t, logger.entries[1].QueriesIssued)
	assert.True(t, logger.entries[1].CacheHit)
}

func TestService_PartialResultsAreNotCached(t *testing.T) {
	provider := &fakeProvider{
		fallback: indiaRecords("p", "Pune", "", 3),
		failures: map[string]bool{"ml India": true},
	}
	cache := &mapCache{}
	svc := NewService(provider, testConfig(), WithCache(cache))

	_, err := svc.Search(context.Background(), models.SearchRequest{Title: "ml", Keywords: "ops", Location: "India", PageSize: 20, Enhanced: true})
	require.NoError(t, err)
	assert.Empty(t, cache.data)
}

func TestService_SearchLogFailureIsIgnored(t *testing.T) {
	logger := &recordingLogger{err: errors.New("disk full")}
	svc := NewService(&fakeProvider{fallback: indiaRecords("l", "Pune", "", 2)}, testConfig(), WithSearchLogger(logger))

	result, err := svc.Search(context.Background(), models.SearchRequest{Title: "devops", Location: "Pune"})
	require.NoError(t, err)
	assert.Len(t, result.Jobs, 2)

	require.Len(t, logger.entries, 1)
	entry := logger.entries[0]
	assert.Equal(t, "devops", entry.Query)
	assert.Equal(t, "Pune", entry.Location)
	assert.Equal(t, 1, entry.QueriesIssued)
	assert.Equal(t, 2, entry.TotalJobs)
}

func TestCacheKey(t *testing.T) {
	base := models.SearchRequest{Title: "Go", Location: "Pune", PageSize: 10, Page: 1}
	other := base
	other.Page = 3

	assert.Equal(t, cacheKey(base, false), cacheKey(other, false))
	assert.NotEqual(t, cacheKey(base, false), cacheKey(base, true))

	bigger := base
	bigger.PageSize = 20
	assert.NotEqual(t, cacheKey(base, false), cacheKey(bigger, false))
}

// stallingProvider blocks the stall query until its context ends and answers
// every other query immediately
type stallingProvider struct {
	stall   string
	records []jsearch.RawRecord
}

func (p *stallingProvider) Search(ctx context.Context, q jsearch.Query) ([]jsearch.RawRecord, error) {
	if q.Text == p.stall {
		<-ctx.Done()
		return nil, &jsearch.ProviderError{Query: q.Text, Err: ctx.Err()}
	}
	return p.records, nil
}

func TestService_TimedOutCallIsProviderFailure(t *testing.T) {
	provider := &stallingProvider{stall: "sre", records: indiaRecords("p", "Pune", "", 3)}
	cfg := testConfig()
	cfg.RequestTimeout = 50 * time.Millisecond
	svc := NewService(provider, cfg)

	start := time.Now()
	result, err := svc.Search(context.Background(), models.SearchRequest{Title: "sre", Location: "Pune", PageSize: 20, Enhanced: true})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, 3, result.Stats.QueriesIssued)
	assert.Equal(t, 1, result.Stats.QueriesFailed)
	assert.Equal(t, 3, result.Pagination.TotalJobs)
}
