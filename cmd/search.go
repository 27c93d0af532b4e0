package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/killallgit/jobscout-api/api/types"
	"github.com/killallgit/jobscout-api/internal/models"
	"github.com/killallgit/jobscout-api/internal/services/jobsearch"
	"github.com/killallgit/jobscout-api/pkg/config"
)

// searchCmd runs one aggregated search and prints the response
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a single job search",
	Long: `Run one aggregated job search from the command line and print the
same JSON document the HTTP endpoint returns.

Example:
  jobscout-api search --title "software engineer" --location Mumbai
  jobscout-api search --keywords React --page-size 50 --enhanced`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("title", "", "job title")
	searchCmd.Flags().String("location", "", "city, region or country (defaults to the configured country)")
	searchCmd.Flags().String("keywords", "", "additional keywords")
	searchCmd.Flags().Int("page", models.DefaultPage, "page number (1-based)")
	searchCmd.Flags().Int("page-size", models.DefaultPageSize, "page size (5, 10, 20, 50 or 100)")
	searchCmd.Flags().Bool("enhanced", false, "issue extra query variants for large pages")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	req := models.SearchRequest{}
	req.Title, _ = cmd.Flags().GetString("title")
	req.Location, _ = cmd.Flags().GetString("location")
	req.Keywords, _ = cmd.Flags().GetString("keywords")
	req.Page, _ = cmd.Flags().GetInt("page")
	req.PageSize, _ = cmd.Flags().GetInt("page-size")
	req.Enhanced, _ = cmd.Flags().GetBool("enhanced")

	app, err := newApplication(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.searcher.Search(cmd.Context(), req)
	resp := searchResponse(result, err)
	if err != nil && !errors.Is(err, jobsearch.ErrAllProvidersFailed) {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func searchResponse(result *jobsearch.Result, err error) types.JobSearchResponse {
	if errors.Is(err, jobsearch.ErrAllProvidersFailed) {
		return types.JobSearchResponse{
			Success:  false,
			Jobs:     []models.Job{},
			Enhanced: result != nil && result.Enhanced,
			Error:    "Unable to fetch jobs right now. Please try again.",
		}
	}
	if result == nil {
		return types.JobSearchResponse{Jobs: []models.Job{}}
	}
	return types.JobSearchResponse{
		Success:    true,
		Jobs:       result.Jobs,
		Pagination: result.Pagination,
		Message:    result.Message,
		Enhanced:   result.Enhanced,
	}
}
