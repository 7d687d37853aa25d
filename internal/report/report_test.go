package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-zajac/vsometrics/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testReports = &app.Reports{
	Builds: []app.BuildReportRow{
		{Project: "Alpha", BuildCount: 5},
		{Project: "Beta, Inc", BuildCount: 0},
	},
	Commits: []app.CommitReportRow{
		{Project: "Alpha", Member: "Anna", Email: "anna@example.com", Commits: 3},
		{Project: "Alpha", Member: "Carol", Email: "carol@example.com", Commits: 2},
		{Project: "Alpha", Member: "Dave", Email: "dave@example.com", Commits: 1},
		{Project: "Alpha", Member: "Bob", Email: "bob@example.com", Commits: 0},
		{Project: "Beta, Inc", Member: "Eve", Email: "eve@example.com", Commits: 0},
	},
}

func TestWriteBuildsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBuildsCSV(&buf, testReports.Builds))
	assert.Equal(t, "Project,BuildCount\nAlpha,5\n\"Beta, Inc\",0\n", buf.String())
}

func TestWriteCommitsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCommitsCSV(&buf, testReports.Commits))
	assert.Equal(t, "Project,Member,Email,Commits\n"+
		"Alpha,Anna,anna@example.com,3\n"+
		"Alpha,Carol,carol@example.com,2\n"+
		"Alpha,Dave,dave@example.com,1\n"+
		"Alpha,Bob,bob@example.com,0\n"+
		"\"Beta, Inc\",Eve,eve@example.com,0\n", buf.String())
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteFiles(dir, testReports)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, BuildsFileName),
		filepath.Join(dir, CommitsFileName),
	}, paths)

	builds, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "Project,BuildCount\nAlpha,5\n\"Beta, Inc\",0\n", string(builds))

	// Writing same reports again gives identical files.
	commits, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	_, err = WriteFiles(dir, testReports)
	require.NoError(t, err)
	again, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, commits, again)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files left behind")
}

func TestSummarize(t *testing.T) {
	got, err := Summarize(testReports.Commits)
	require.NoError(t, err)
	assert.Equal(t, []ProjectSummary{
		{Project: "Alpha", Members: 4, TotalCommits: 6, MeanCommits: 1.5, MedianCommits: 1.5},
		{Project: "Beta, Inc", Members: 1, TotalCommits: 0, MeanCommits: 0, MedianCommits: 0},
	}, got)

	got, err = Summarize(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
