package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// CommitAggregator counts commits per author in every project, independently of team rosters.
type CommitAggregator struct {
	client VSOClient
	l      logrus.FieldLogger
}

// NewCommitAggregator creates new CommitAggregator instance.
func NewCommitAggregator(client VSOClient, l logrus.FieldLogger) *CommitAggregator {
	return &CommitAggregator{
		client: client,
		l:      l,
	}
}

// Tallies returns commit counts per (project, author).
//
// Only the first page of commits is read for each repository, so repositories
// with more commits than the api's default page size are undercounted.
func (a *CommitAggregator) Tallies(ctx context.Context) ([]CommitTally, error) {
	repositories, err := a.client.Repositories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing repositories")
	}

	repoTallies := make([][]CommitTally, len(repositories))
	g, ctx := errgroup.WithContext(ctx)
	for i, repo := range repositories {
		i, repo := i, repo
		g.Go(func() error {
			tallies, err := a.repositoryTallies(ctx, repo)
			if err != nil {
				return errors.Wrapf(err, "repository %s", repo.Name)
			}
			repoTallies[i] = tallies
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sumTallies(repoTallies), nil
}

func (a *CommitAggregator) repositoryTallies(ctx context.Context, repo Repository) ([]CommitTally, error) {
	a.l.Debugf("Going through repository %s", repo.Name)

	commits, err := a.commits(ctx, repo.ID)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	tallies := make([]CommitTally, 0)
	for _, c := range commits {
		i, ok := index[c.Author.ID]
		if !ok {
			i = len(tallies)
			index[c.Author.ID] = i
			tallies = append(tallies, CommitTally{
				Project: repo.Project,
				Member:  c.Author,
			})
		}
		tallies[i].Commits++
	}

	return tallies, nil
}

// commits returns repository's commits with resolved authors.
// There's no batch endpoint, so every commit's author costs one request.
func (a *CommitAggregator) commits(ctx context.Context, repositoryID string) ([]Commit, error) {
	ids, err := a.client.CommitIDs(ctx, repositoryID)
	if err != nil {
		return nil, errors.Wrap(err, "listing commits")
	}

	commits := make([]Commit, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			author, err := a.client.CommitAuthor(ctx, repositoryID, id)
			if err != nil {
				return errors.Wrapf(err, "resolving author of commit %s", id)
			}
			commits[i] = Commit{ID: id, Author: author}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return commits, nil
}

// sumTallies merges per repository tallies into one tally per (project, author id).
func sumTallies(repoTallies [][]CommitTally) []CommitTally {
	type key struct {
		project string
		id      string
	}

	index := make(map[key]int)
	result := make([]CommitTally, 0)
	for _, tallies := range repoTallies {
		for _, t := range tallies {
			k := key{project: t.Project, id: t.Member.ID}
			i, ok := index[k]
			if !ok {
				i = len(result)
				index[k] = i
				result = append(result, CommitTally{
					Project: t.Project,
					Member:  t.Member,
				})
			}
			result[i].Commits += t.Commits
		}
	}

	return result
}
