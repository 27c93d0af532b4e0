package types

import (
	"github.com/killallgit/jobscout-api/internal/database"
	"github.com/killallgit/jobscout-api/internal/services/cache"
	"github.com/killallgit/jobscout-api/internal/services/jobsearch"
	"github.com/killallgit/jobscout-api/internal/services/searchlog"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB         *database.DB
	Searcher   jobsearch.Searcher
	SearchLogs searchlog.Repository
	Cache      cache.Cache
}
