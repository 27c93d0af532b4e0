package models

import "time"

// SearchLog records the outcome of one executed search. Only request
// metadata and counts are stored, never the jobs themselves.
type SearchLog struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Query         string    `json:"query" gorm:"not null"`
	Location      string    `json:"location"`
	Enhanced      bool      `json:"enhanced"`
	Page          int       `json:"page"`
	PageSize      int       `json:"pageSize"`
	QueriesIssued int       `json:"queriesIssued"`
	QueriesFailed int       `json:"queriesFailed"`
	RawCount      int       `json:"rawCount"`
	UniqueCount   int       `json:"uniqueCount"`
	TotalJobs     int       `json:"totalJobs"`
	CacheHit      bool      `json:"cacheHit"`
	DurationMS    int64     `json:"durationMs"`
	CreatedAt     time.Time `json:"createdAt" gorm:"index"`
}

// TableName overrides the default table name
func (SearchLog) TableName() string {
	return "search_logs"
}
