package vso

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-zajac/vsometrics/internal/app"
	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// StoreClient wraps vso client and keeps commit authors in persistent store,
// so consecutive runs only ask the api about new commits.
// All other calls go straight to the wrapped client.
type StoreClient struct {
	app.VSOClient
	store KVStore
	l     logrus.FieldLogger
}

var _ app.VSOClient = &StoreClient{}

// NewStoreClient creates new StoreClient instance.
func NewStoreClient(client app.VSOClient, store KVStore, l logrus.FieldLogger) *StoreClient {
	return &StoreClient{
		VSOClient: client,
		store:     store,
		l:         l,
	}
}

// CommitAuthor returns member that pushed given commit.
//
// Returns data from store if available. Store errors are not fatal: data is then fetched from the api.
func (c *StoreClient) CommitAuthor(ctx context.Context, repositoryID string, commitID string) (app.Member, error) {
	key := c.authorDBKey(repositoryID, commitID)
	data, err := c.store.ReadKey(key)
	if err != nil {
		c.l.Warnf("StoreClient: reading commit author %s: %v", key, err)
	}
	if data != nil {
		entry, err := c.unserializeAuthor(data)
		if err == nil {
			return entry.Data, nil
		}
		c.l.Warnf("StoreClient: unserializing commit author %s: %v", key, err)
	}

	author, err := c.VSOClient.CommitAuthor(ctx, repositoryID, commitID)
	if err != nil {
		return author, err
	}
	if err := c.saveAuthor(key, author); err != nil {
		c.l.Warnf("StoreClient: saving commit author %s: %v", key, err)
	}

	return author, nil
}

func (c *StoreClient) saveAuthor(key []byte, author app.Member) error {
	dbdata, err := c.serializeAuthor(authorDBEntry{
		Created: time.Now().Unix(),
		Data:    author,
	})
	if err != nil {
		return fmt.Errorf("serializing data for save: %w", err)
	}

	return c.store.UpdateKey(key, dbdata)
}

func (c *StoreClient) authorDBKey(repositoryID string, commitID string) []byte {
	return []byte("ca/" + repositoryID + "/" + commitID)
}

func (c *StoreClient) serializeAuthor(entry authorDBEntry) ([]byte, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("marshalling json: %w", err)
	}

	return data, nil
}

func (c *StoreClient) unserializeAuthor(data []byte) (*authorDBEntry, error) {
	var entry authorDBEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshalling json: %w", err)
	}
	if entry.Data.ID == "" {
		return nil, fmt.Errorf("entry has no member id")
	}

	return &entry, nil
}

type authorDBEntry struct {
	Created int64
	Data    app.Member
}
