// Package report writes report datasets to files.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/m-zajac/vsometrics/internal/app"
)

// Report file names.
const (
	BuildsFileName  = "ProjectBuilds.csv"
	CommitsFileName = "MemberCommits.csv"
)

// WriteBuildsCSV writes build report rows as csv with header.
func WriteBuildsCSV(w io.Writer, rows []app.BuildReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Project", "BuildCount"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Project, strconv.Itoa(r.BuildCount)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCommitsCSV writes commit report rows as csv with header.
func WriteCommitsCSV(w io.Writer, rows []app.CommitReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Project", "Member", "Email", "Commits"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Project, r.Member, r.Email, strconv.Itoa(r.Commits)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteFiles writes both reports into dir. Returns paths of written files.
//
// Each file is written to a temporary file first and renamed when complete,
// so readers never see partial reports.
func WriteFiles(dir string, reports *app.Reports) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	buildsPath := filepath.Join(dir, BuildsFileName)
	if err := writeFile(buildsPath, func(w io.Writer) error {
		return WriteBuildsCSV(w, reports.Builds)
	}); err != nil {
		return nil, fmt.Errorf("writing builds report: %w", err)
	}

	commitsPath := filepath.Join(dir, CommitsFileName)
	if err := writeFile(commitsPath, func(w io.Writer) error {
		return WriteCommitsCSV(w, reports.Commits)
	}); err != nil {
		return nil, fmt.Errorf("writing commits report: %w", err)
	}

	return []string{buildsPath, commitsPath}, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), path)
}
