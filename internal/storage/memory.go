package storage

import (
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const tblRecords = "records"

var memorySchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tblRecords: {
			Name: tblRecords,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Key"},
				},
			},
		},
	},
}

type record struct {
	Key   string
	Value string
}

// MemoryGateway keeps records in an in-memory database. It backs tests and
// any environment without persistent storage; contents are lost when the
// process exits.
type MemoryGateway struct {
	db *memdb.MemDB
}

// NewMemoryGateway returns an empty in-memory gateway.
func NewMemoryGateway() (*MemoryGateway, error) {
	db, err := memdb.NewMemDB(memorySchema)
	if err != nil {
		return nil, fmt.Errorf("memory gateway: new memdb: %w", err)
	}
	return &MemoryGateway{db: db}, nil
}

// Read returns the stored value for key, or ok=false when absent.
func (g *MemoryGateway) Read(key string) (string, bool, error) {
	txn := g.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblRecords, "id", key)
	if err != nil {
		return "", false, fmt.Errorf("memory gateway: read %q: %w", key, err)
	}
	if raw == nil {
		return "", false, nil
	}
	return raw.(*record).Value, true, nil
}

// Write replaces the value for key.
func (g *MemoryGateway) Write(key, value string) error {
	txn := g.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(tblRecords, &record{Key: key, Value: value}); err != nil {
		return fmt.Errorf("memory gateway: write %q: %w", key, err)
	}
	txn.Commit()
	return nil
}

// Remove deletes the record for key. Removing a missing key is a no-op.
func (g *MemoryGateway) Remove(key string) error {
	txn := g.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblRecords, "id", key)
	if err != nil {
		return fmt.Errorf("memory gateway: remove %q: %w", key, err)
	}
	if raw == nil {
		return nil
	}
	if err := txn.Delete(tblRecords, raw); err != nil {
		return fmt.Errorf("memory gateway: remove %q: %w", key, err)
	}
	txn.Commit()
	return nil
}
