package app

// Member entity. ID is stable across teams and commits.
type Member struct {
	ID    string
	Name  string
	Email string
}

// ProjectMember is a member found in one of the project's teams.
type ProjectMember struct {
	Project string
	Member  Member
}

// Project entity
type Project struct {
	Name       string
	BuildCount int
	Members    []ProjectMember
}

// Repository entity. Every repository belongs to exactly one project.
type Repository struct {
	ID      string
	Name    string
	Project string
}

// Commit entity
type Commit struct {
	ID     string
	Author Member
}

// CommitTally is the number of commits by one author in one project.
type CommitTally struct {
	Project string
	Member  Member
	Commits int
}

// BuildReportRow is a single row of the build report.
type BuildReportRow struct {
	Project    string `json:"project"`
	BuildCount int    `json:"buildCount"`
}

// CommitReportRow is a single row of the member commits report.
type CommitReportRow struct {
	Project string `json:"project"`
	Member  string `json:"member"`
	Email   string `json:"email"`
	Commits int    `json:"commits"`
}

// Reports holds results of a single run.
type Reports struct {
	Builds  []BuildReportRow
	Commits []CommitReportRow
}
