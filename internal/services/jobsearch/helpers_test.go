package jobsearch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/killallgit/jobscout-api/internal/services/jsearch"
)

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }

func record(id, city, state, country string) jsearch.RawRecord {
	r := jsearch.RawRecord{Title: str("Software Engineer"), EmployerName: str("Acme")}
	if id != "" {
		r.JobID = str(id)
	}
	if city != "" {
		r.City = str(city)
	}
	if state != "" {
		r.State = str(state)
	}
	if country != "" {
		r.Country = str(country)
	}
	return r
}

// indiaRecords returns n records in the given city with ids prefix-0..prefix-(n-1)
func indiaRecords(prefix, city, state string, n int) []jsearch.RawRecord {
	records := make([]jsearch.RawRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, record(fmt.Sprintf("%s-%d", prefix, i), city, state, "IN"))
	}
	return records
}

// fakeProvider answers each query text from a fixed table and records every call
type fakeProvider struct {
	mu        sync.Mutex
	responses map[string][]jsearch.RawRecord
	failures  map[string]bool
	fallback  []jsearch.RawRecord
	calls     []jsearch.Query
}

func (p *fakeProvider) Search(ctx context.Context, q jsearch.Query) ([]jsearch.RawRecord, error) {
	p.mu.Lock()
	p.calls = append(p.calls, q)
	p.mu.Unlock()

	if p.failures[q.Text] {
		return nil, &jsearch.ProviderError{Query: q.Text, StatusCode: 503, Err: errors.New("unavailable")}
	}
	if records, ok := p.responses[q.Text]; ok {
		return records, nil
	}
	return p.fallback, nil
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}
