package vso

import (
	"fmt"

	"github.com/m-zajac/vsometrics/internal/app"
)

// Required fields are pointers, so missing fields can be told apart from empty ones.

type namedListResponse struct {
	Value *[]namedItem `json:"value"`
}

type namedItem struct {
	Name *string `json:"name"`
}

func (r namedListResponse) ToNames() ([]string, error) {
	if r.Value == nil {
		return nil, missingField("value")
	}

	names := make([]string, 0, len(*r.Value))
	for i, item := range *r.Value {
		if item.Name == nil {
			return nil, missingField(fmt.Sprintf("value[%d].name", i))
		}
		names = append(names, *item.Name)
	}

	return names, nil
}

type membersResponse struct {
	Value *[]identityRef `json:"value"`
}

type identityRef struct {
	ID          *string `json:"id"`
	DisplayName *string `json:"displayName"`
	UniqueName  *string `json:"uniqueName"`
}

func (r identityRef) toMember(field string) (app.Member, error) {
	switch {
	case r.ID == nil:
		return app.Member{}, missingField(field + ".id")
	case r.DisplayName == nil:
		return app.Member{}, missingField(field + ".displayName")
	case r.UniqueName == nil:
		return app.Member{}, missingField(field + ".uniqueName")
	}

	return app.Member{
		ID:    *r.ID,
		Name:  *r.DisplayName,
		Email: *r.UniqueName,
	}, nil
}

func (r membersResponse) ToMembers() ([]app.Member, error) {
	if r.Value == nil {
		return nil, missingField("value")
	}

	members := make([]app.Member, 0, len(*r.Value))
	for i, item := range *r.Value {
		m, err := item.toMember(fmt.Sprintf("value[%d]", i))
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}

type buildsResponse struct {
	Count *int `json:"count"`
}

func (r buildsResponse) ToCount() (int, error) {
	if r.Count == nil {
		return 0, missingField("count")
	}
	if *r.Count < 0 {
		return 0, &app.MalformedResponseError{Field: "count", Reason: "is negative"}
	}

	return *r.Count, nil
}

type repositoriesResponse struct {
	Value *[]repositoryItem `json:"value"`
}

type repositoryItem struct {
	ID      *string `json:"id"`
	Name    string  `json:"name"`
	Project *struct {
		Name *string `json:"name"`
	} `json:"project"`
}

func (r repositoriesResponse) ToRepositories() ([]app.Repository, error) {
	if r.Value == nil {
		return nil, missingField("value")
	}

	repos := make([]app.Repository, 0, len(*r.Value))
	for i, item := range *r.Value {
		switch {
		case item.ID == nil:
			return nil, missingField(fmt.Sprintf("value[%d].id", i))
		case item.Project == nil || item.Project.Name == nil:
			return nil, missingField(fmt.Sprintf("value[%d].project.name", i))
		}

		name := item.Name
		if name == "" {
			name = *item.ID
		}
		repos = append(repos, app.Repository{
			ID:      *item.ID,
			Name:    name,
			Project: *item.Project.Name,
		})
	}

	return repos, nil
}

type commitsResponse struct {
	Value *[]struct {
		CommitID *string `json:"commitId"`
	} `json:"value"`
}

func (r commitsResponse) ToCommitIDs() ([]string, error) {
	if r.Value == nil {
		return nil, missingField("value")
	}

	ids := make([]string, 0, len(*r.Value))
	for i, item := range *r.Value {
		if item.CommitID == nil {
			return nil, missingField(fmt.Sprintf("value[%d].commitId", i))
		}
		ids = append(ids, *item.CommitID)
	}

	return ids, nil
}

type commitResponse struct {
	Push *struct {
		PushedBy *identityRef `json:"pushedBy"`
	} `json:"push"`
}

func (r commitResponse) ToAuthor() (app.Member, error) {
	if r.Push == nil {
		return app.Member{}, missingField("push")
	}
	if r.Push.PushedBy == nil {
		return app.Member{}, missingField("push.pushedBy")
	}

	return r.Push.PushedBy.toMember("push.pushedBy")
}

func missingField(field string) error {
	return &app.MalformedResponseError{Field: field, Reason: "is missing"}
}
