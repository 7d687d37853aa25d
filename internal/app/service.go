package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// VSOClient returns details about vso projects, teams, repositories and builds.
//go:generate mockgen -destination mock/vsoclient.go -package mock github.com/m-zajac/vsometrics/internal/app VSOClient
type VSOClient interface {
	Projects(ctx context.Context) ([]string, error)
	Teams(ctx context.Context, project string) ([]string, error)
	TeamMembers(ctx context.Context, project string, team string) ([]Member, error)
	BuildCount(ctx context.Context, project string) (int, error)
	Repositories(ctx context.Context) ([]Repository, error)
	CommitIDs(ctx context.Context, repositoryID string) ([]string, error)
	CommitAuthor(ctx context.Context, repositoryID string, commitID string) (Member, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	roster  *RosterAggregator
	commits *CommitAggregator
	groupBy GroupBy
	timeout time.Duration
	l       logrus.FieldLogger
}

// NewService creates new Service instance.
// Zero timeout means a run is not time limited.
func NewService(client VSOClient, groupBy GroupBy, timeout time.Duration, l logrus.FieldLogger) *Service {
	return &Service{
		roster:  NewRosterAggregator(client, l),
		commits: NewCommitAggregator(client, l),
		groupBy: groupBy,
		timeout: timeout,
		l:       l,
	}
}

// Reports collects rosters, build counts and commit tallies, then merges them into reports.
// Any error aborts the whole run, no partial reports are returned.
func (s *Service) Reports(ctx context.Context) (*Reports, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	runID := uuid.New().String()
	l := s.l.WithField("run", runID)
	start := time.Now()

	var (
		projects []Project
		tallies  []CommitTally
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Info("Getting members")
		var err error
		projects, err = s.roster.Projects(gctx)
		if err != nil {
			return errors.Wrap(err, "retrieving projects")
		}
		return nil
	})
	g.Go(func() error {
		l.Info("Getting repositories")
		var err error
		tallies, err = s.commits.Tallies(gctx)
		if err != nil {
			return errors.Wrap(err, "retrieving commit stats")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := Reports{
		Builds:  MergeBuildReport(projects),
		Commits: MergeCommitReport(projects, tallies, s.groupBy),
	}
	l.WithFields(logrus.Fields{
		"projects": len(reports.Builds),
		"rows":     len(reports.Commits),
		"took":     time.Since(start).Round(time.Millisecond),
	}).Info("Reports ready")

	return &reports, nil
}
