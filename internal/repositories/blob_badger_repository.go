package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"tamrah/internal/models"
)

// Key prefixes for blob storage in BadgerDB.
const (
	blobDataPrefix = "blob:data:"
	blobMetaPrefix = "blob:meta:"
)

type blobMeta struct {
	ContentType string `json:"content_type"`
	ETag        string `json:"etag"`
	Size        int64  `json:"size"`
}

// OpenBadger opens a BadgerDB at dir, or an in-memory instance when dir
// is empty.
func OpenBadger(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", dir, err)
	}
	return db, nil
}

// BadgerBlobRepository is a BadgerDB implementation of BlobRepository.
type BadgerBlobRepository struct {
	db *badger.DB
}

// NewBadgerBlobRepository creates a new instance of BadgerBlobRepository.
func NewBadgerBlobRepository(db *badger.DB) *BadgerBlobRepository {
	return &BadgerBlobRepository{db: db}
}

// PutIfAbsent stores the blob bytes and metadata in one transaction.
func (r *BadgerBlobRepository) PutIfAbsent(ctx context.Context, blob *models.Blob) error {
	meta, err := json.Marshal(blobMeta{
		ContentType: blob.ContentType,
		ETag:        blob.ETag,
		Size:        int64(len(blob.Data)),
	})
	if err != nil {
		return fmt.Errorf("marshal blob metadata: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		metaKey := []byte(blobMetaPrefix + blob.Key)
		_, err := txn.Get(metaKey)
		if err == nil {
			return models.ErrConflict
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("lookup blob %s: %w", blob.Key, err)
		}
		if err := txn.Set([]byte(blobDataPrefix+blob.Key), blob.Data); err != nil {
			return fmt.Errorf("set blob data: %w", err)
		}
		if err := txn.Set(metaKey, meta); err != nil {
			return fmt.Errorf("set blob metadata: %w", err)
		}
		return nil
	})
	switch {
	case err == nil:
		blob.Size = int64(len(blob.Data))
		return nil
	case errors.Is(err, models.ErrConflict), errors.Is(err, badger.ErrConflict):
		return fmt.Errorf("blob %s: %w", blob.Key, models.ErrConflict)
	default:
		return models.NewStorageError("put blob", err)
	}
}

// Get retrieves a blob and its metadata by key.
func (r *BadgerBlobRepository) Get(ctx context.Context, key string) (*models.Blob, error) {
	blob := &models.Blob{Key: key}
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(blobMetaPrefix + key))
		if err != nil {
			return err
		}
		var meta blobMeta
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		}); err != nil {
			return fmt.Errorf("decode blob metadata: %w", err)
		}
		blob.ContentType = meta.ContentType
		blob.ETag = meta.ETag
		blob.Size = meta.Size

		item, err = txn.Get([]byte(blobDataPrefix + key))
		if err != nil {
			return err
		}
		blob.Data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("blob %s: %w", key, models.ErrNotFound)
	}
	if err != nil {
		return nil, models.NewStorageError("get blob", err)
	}
	return blob, nil
}
