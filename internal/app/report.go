package app

import (
	"fmt"
	"sort"
)

// GroupBy tells how commit report rows are keyed within a project.
type GroupBy string

const (
	// GroupByName merges members sharing a display name into one row.
	GroupByName GroupBy = "name"
	// GroupByID keeps one row per member id.
	GroupByID GroupBy = "id"
)

// ParseGroupBy validates group by option.
func ParseGroupBy(s string) (GroupBy, error) {
	switch g := GroupBy(s); g {
	case GroupByName, GroupByID:
		return g, nil
	default:
		return "", fmt.Errorf("unknown group by option %q, want %q or %q", s, GroupByName, GroupByID)
	}
}

// MergeBuildReport returns one row per project, sorted by project name.
func MergeBuildReport(projects []Project) []BuildReportRow {
	rows := make([]BuildReportRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, BuildReportRow{
			Project:    p.Name,
			BuildCount: p.BuildCount,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Project < rows[j].Project
	})

	return rows
}

// MergeCommitReport outer joins commit tallies with project rosters.
//
// Every member found in a roster or in the tallies is reported once per project.
// Roster members without commits in the project are reported with zero commits.
// Rows are sorted by project, then by commits descending.
func MergeCommitReport(projects []Project, tallies []CommitTally, groupBy GroupBy) []CommitReportRow {
	type key struct {
		project string
		member  string
	}
	keyOf := func(project string, m Member) key {
		if groupBy == GroupByID {
			return key{project: project, member: m.ID}
		}
		return key{project: project, member: m.Name}
	}

	index := make(map[key]int)
	rows := make([]CommitReportRow, 0, len(tallies))
	add := func(project string, m Member, commits int) {
		k := keyOf(project, m)
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, CommitReportRow{
				Project: project,
				Member:  m.Name,
				Email:   m.Email,
			})
		}
		rows[i].Commits += commits
	}

	for _, t := range tallies {
		add(t.Project, t.Member, t.Commits)
	}
	for _, p := range projects {
		for _, pm := range p.Members {
			add(pm.Project, pm.Member, 0)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Project != b.Project {
			return a.Project < b.Project
		}
		if a.Commits != b.Commits {
			return a.Commits > b.Commits
		}
		if a.Member != b.Member {
			return a.Member < b.Member
		}
		return a.Email < b.Email
	})

	return rows
}
