package vso

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/vsometrics/internal/app"
)

// CachedClient wraps vso client with in memory caching layer for commit authors.
//
// Commit authorship never changes, so entries don't expire.
// All other calls go straight to the wrapped client.
type CachedClient struct {
	app.VSOClient
	authorsCache *lru.Cache
}

var _ app.VSOClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.VSOClient, size int) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	authorsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for commit authors: %w", err)
	}

	return &CachedClient{
		VSOClient:    client,
		authorsCache: authorsCache,
	}, nil
}

// CommitAuthor returns member that pushed given commit.
func (c *CachedClient) CommitAuthor(ctx context.Context, repositoryID string, commitID string) (app.Member, error) {
	key := c.authorsCacheKey(repositoryID, commitID)
	if val, ok := c.authorsCache.Get(key); ok {
		return val.(app.Member), nil
	}

	author, err := c.VSOClient.CommitAuthor(ctx, repositoryID, commitID)
	if err != nil {
		return author, err
	}
	c.authorsCache.Add(key, author)

	return author, nil
}

func (c *CachedClient) authorsCacheKey(repositoryID string, commitID string) string {
	return repositoryID + "/" + commitID
}
