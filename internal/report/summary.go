package report

import (
	"fmt"
	"sort"

	"github.com/m-zajac/vsometrics/internal/app"
	"github.com/montanaflynn/stats"
)

// ProjectSummary describes distribution of commits among project's members.
type ProjectSummary struct {
	Project       string  `json:"project"`
	Members       int     `json:"members"`
	TotalCommits  int     `json:"totalCommits"`
	MeanCommits   float64 `json:"meanCommits"`
	MedianCommits float64 `json:"medianCommits"`
}

// Summarize returns one summary per project found in commit report rows, sorted by project name.
func Summarize(rows []app.CommitReportRow) ([]ProjectSummary, error) {
	commits := make(map[string]stats.Float64Data)
	for _, r := range rows {
		commits[r.Project] = append(commits[r.Project], float64(r.Commits))
	}

	summaries := make([]ProjectSummary, 0, len(commits))
	for project, data := range commits {
		sum, err := stats.Sum(data)
		if err != nil {
			return nil, fmt.Errorf("summing commits of %s: %w", project, err)
		}
		mean, err := stats.Mean(data)
		if err != nil {
			return nil, fmt.Errorf("calculating mean commits of %s: %w", project, err)
		}
		median, err := stats.Median(data)
		if err != nil {
			return nil, fmt.Errorf("calculating median commits of %s: %w", project, err)
		}

		summaries = append(summaries, ProjectSummary{
			Project:       project,
			Members:       len(data),
			TotalCommits:  int(sum),
			MeanCommits:   mean,
			MedianCommits: median,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Project < summaries[j].Project
	})

	return summaries, nil
}
