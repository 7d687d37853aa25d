package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RosterAggregator collects build counts and deduplicated team members of every project.
type RosterAggregator struct {
	client VSOClient
	l      logrus.FieldLogger
}

// NewRosterAggregator creates new RosterAggregator instance.
func NewRosterAggregator(client VSOClient, l logrus.FieldLogger) *RosterAggregator {
	return &RosterAggregator{
		client: client,
		l:      l,
	}
}

// Projects returns all projects with build count and members filled.
// Projects are returned in the order the api lists them.
func (a *RosterAggregator) Projects(ctx context.Context) ([]Project, error) {
	names, err := a.client.Projects(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing projects")
	}

	projects := make([]Project, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			p, err := a.project(ctx, name)
			if err != nil {
				return errors.Wrapf(err, "project %s", name)
			}
			projects[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return projects, nil
}

func (a *RosterAggregator) project(ctx context.Context, name string) (Project, error) {
	a.l.Debugf("Going through project %s", name)

	// Build history is subject to the server's retention window, so the count is bounded.
	p := Project{Name: name}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := a.client.BuildCount(ctx, name)
		if err != nil {
			return errors.Wrap(err, "counting builds")
		}
		p.BuildCount = count
		return nil
	})
	g.Go(func() error {
		members, err := a.members(ctx, name)
		if err != nil {
			return err
		}
		p.Members = members
		return nil
	})
	if err := g.Wait(); err != nil {
		return Project{}, err
	}

	return p, nil
}

func (a *RosterAggregator) members(ctx context.Context, project string) ([]ProjectMember, error) {
	teams, err := a.client.Teams(ctx, project)
	if err != nil {
		return nil, errors.Wrap(err, "listing teams")
	}

	teamMembers := make([][]Member, len(teams))
	g, ctx := errgroup.WithContext(ctx)
	for i, team := range teams {
		i, team := i, team
		g.Go(func() error {
			a.l.Debugf("Going through team %s", team)
			members, err := a.client.TeamMembers(ctx, project, team)
			if err != nil {
				return errors.Wrapf(err, "listing members of team %s", team)
			}
			teamMembers[i] = members
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dedupeMembers(project, teamMembers), nil
}

// dedupeMembers flattens team member lists and keeps the first record of every member id.
func dedupeMembers(project string, teamMembers [][]Member) []ProjectMember {
	seen := make(map[string]bool)
	result := make([]ProjectMember, 0)
	for _, members := range teamMembers {
		for _, m := range members {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			result = append(result, ProjectMember{
				Project: project,
				Member:  m,
			})
		}
	}

	return result
}
