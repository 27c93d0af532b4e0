package jobsearch

import (
	"github.com/google/uuid"

	"github.com/killallgit/jobscout-api/internal/services/jsearch"
)

const generatedIDPrefix = "gen-"

// Deduplicate keeps the first record seen for each provider id. Records
// without an id receive a generated one and are always kept.
func Deduplicate(records []jsearch.RawRecord) []jsearch.RawRecord {
	seen := make(map[string]struct{}, len(records))
	unique := make([]jsearch.RawRecord, 0, len(records))

	for _, record := range records {
		id, ok := record.ID()
		if !ok {
			record = record.WithID(generatedIDPrefix + uuid.NewString())
			id, _ = record.ID()
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, record)
	}
	return unique
}
