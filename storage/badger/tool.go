package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/toolscout/core"
	"github.com/poiesic/toolscout/storage"
)

// ToolRepository implements storage.ToolRepository for BadgerDB.
type ToolRepository struct {
	backend *Backend
}

var _ storage.ToolRepository = (*ToolRepository)(nil)

// NewToolRepository creates a new ToolRepository.
func NewToolRepository(backend *Backend) (storage.ToolRepository, error) {
	return &ToolRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ToolRepository has no resources to release.
func (r *ToolRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ToolRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddTools adds one or more tool records to storage.
func (r *ToolRepository) AddTools(ctx context.Context, records ...*core.ToolRecord) ([]*core.ToolRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			// Use content-based ID if not set
			if record.Id == 0 {
				record.Id = core.IDFromContent(record.Name)
			}

			// Set timestamps
			if record.InsertedAt.IsZero() {
				record.InsertedAt = time.Now().UTC()
			}
			record.UpdatedAt = record.InsertedAt

			// Store primary record
			key := makeToolRecordKey(record.Id)
			value := storage.MarshalToolRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store name index
			nameKey := makeToolNameKey(record.Name)
			if err := tx.Set(nameKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateTools updates existing tool records.
func (r *ToolRepository) UpdateTools(ctx context.Context, records ...*core.ToolRecord) ([]*core.ToolRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeToolRecordKey(record.Id)

			// Read old record to detect name changes
			old, err := readToolRecord(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			record.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalToolRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update name index if the name changed
			if old.Name != record.Name {
				if err := tx.Delete(makeToolNameKey(old.Name)); err != nil {
					return err
				}
				if err := tx.Set(makeToolNameKey(record.Name), storage.MarshalID(record.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// GetTool retrieves a single tool record by ID.
func (r *ToolRepository) GetTool(ctx context.Context, id core.ID) (*core.ToolRecord, error) {
	var result *core.ToolRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeToolRecordKey(id)
		var err error
		result, err = readToolRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetToolByName finds a tool record by its exact name.
func (r *ToolRepository) GetToolByName(ctx context.Context, name string) (*core.ToolRecord, error) {
	var result *core.ToolRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from name index
		item, err := tx.Get(makeToolNameKey(name))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var toolID core.ID
		err = item.Value(func(val []byte) error {
			toolID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		// Look up full record
		result, err = readToolRecord(tx, makeToolRecordKey(toolID))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListTools retrieves all tool records from storage.
func (r *ToolRepository) ListTools(ctx context.Context) ([]*core.ToolRecord, error) {
	var results []*core.ToolRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(toolRecordPrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			item := iter.Item()
			key := item.Key()

			// Stop if we've moved past tool record keys
			if !hasPrefix(key, prefix) {
				break
			}

			var record *core.ToolRecord
			err := item.Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalToolRecord(val)
				return err
			})
			if err != nil {
				return err
			}

			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// hasPrefix checks if a byte slice has a given prefix
func hasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix)
}

// readToolRecord reads a tool record from the transaction.
func readToolRecord(tx *badger.Txn, key []byte) (*core.ToolRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.ToolRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalToolRecord(val)
		return err
	})
	return record, err
}
