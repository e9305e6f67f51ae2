package store

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

var badgerSecretPrefix = []byte("secret/")

// badgerSecretStore keeps every blob under the key "secret/<name>".
type badgerSecretStore struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerSecretStore opens (creating when needed) a badger database in dir.
func NewBadgerSecretStore(dir string, log *logger.Logger) (SecretStore, error) {
	if dir == "" {
		return nil, storageErr("open badger", errors.New("badger directory is empty"))
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.SyncWrites = true
	opts.ValueLogFileSize = 1 << 24

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewBadgerSecretStore").Str("dir", dir).Msg("error opening badger database")
		return nil, storageErr("open badger", err)
	}

	return &badgerSecretStore{db: db, logger: log}, nil
}

func badgerKey(name string) []byte {
	key := make([]byte, 0, len(badgerSecretPrefix)+len(name))
	key = append(key, badgerSecretPrefix...)
	return append(key, name...)
}

func (b *badgerSecretStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageErr("list", err)
	}

	names := make([]string, 0)
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		// badger iterates keys in byte order, so names come out sorted
		for it.Seek(badgerSecretPrefix); it.ValidForPrefix(badgerSecretPrefix); it.Next() {
			key := it.Item().Key()
			names = append(names, string(key[len(badgerSecretPrefix):]))
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "badgerSecretStore.List").Msg("error iterating secrets")
		return nil, storageErr("list", err)
	}

	return names, nil
}

func (b *badgerSecretStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, storageErr("read", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, storageErr("read", err)
	}

	var ciphertext []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(name))
		if err != nil {
			return err
		}
		ciphertext, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, notFound(name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "badgerSecretStore.Read").Str("name", name).Msg("error reading secret")
		return nil, storageErr("read", err)
	}

	return ciphertext, nil
}

func (b *badgerSecretStore) Write(ctx context.Context, name string, ciphertext []byte) error {
	if err := ValidateName(name); err != nil {
		return storageErr("write", err)
	}
	if err := ctx.Err(); err != nil {
		return storageErr("write", err)
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(name), ciphertext)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "badgerSecretStore.Write").Str("name", name).Msg("error writing secret")
		return storageErr("write", err)
	}

	return nil
}

func (b *badgerSecretStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return storageErr("delete", err)
	}
	if err := ctx.Err(); err != nil {
		return storageErr("delete", err)
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		key := badgerKey(name)
		// txn.Delete succeeds for absent keys; check first to report not found
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return notFound(name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "badgerSecretStore.Delete").Str("name", name).Msg("error deleting secret")
		return storageErr("delete", err)
	}

	return nil
}

func (b *badgerSecretStore) Close() error {
	if err := b.db.Close(); err != nil {
		return storageErr("close badger", err)
	}
	return nil
}
