/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package bbolt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/aclman/pkg/acl"
	"github.com/voedger/aclman/pkg/iaclstore"
)

type aclStoreFactory struct {
	params ParamsType
}

func (f *aclStoreFactory) AclStore(name string) (iaclstore.IAclStore, error) {
	dbName := filepath.Join(f.params.DBDir, name+dbExt)
	if _, err := os.Stat(dbName); err != nil {
		if os.IsNotExist(err) {
			return nil, iaclstore.ErrStoreDoesNotExist
		}
		// notest
		return nil, err
	}
	db, err := bolt.Open(dbName, fileModeRW, bolt.DefaultOptions)
	if err != nil {
		// notest
		return nil, err
	}
	if err := initDB(db); err != nil {
		return nil, err
	}
	return &aclStorage{db: db}, nil
}

func (f *aclStoreFactory) Init(name string) error {
	dbName := filepath.Join(f.params.DBDir, name+dbExt)
	if _, err := os.Stat(dbName); err == nil {
		return iaclstore.ErrStoreAlreadyExists
	} else if !os.IsNotExist(err) {
		// notest
		return err
	}
	if err := os.MkdirAll(f.params.DBDir, dirModeRWX); err != nil {
		// notest
		return err
	}
	db, err := bolt.Open(dbName, fileModeRW, bolt.DefaultOptions)
	if err != nil {
		// notest
		return err
	}
	if err := initDB(db); err != nil {
		return err
	}
	return db.Close()
}

func initDB(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(aclsBucketName))
		return err
	})
}

type aclStorage struct {
	db *bolt.DB
}

// Close releases the exclusive file lock. Not part of iaclstore.IAclStore,
// one-shot callers reach it via an io.Closer assertion
func (s *aclStorage) Close() error {
	return s.db.Close()
}

func objectKey(object acl.ObjectIdentity) []byte {
	return []byte(object.ClassName + objectKeySep + object.ID)
}

func (s *aclStorage) CreateOrFind(object acl.ObjectIdentity) (*acl.AclRecord, error) {
	rec, err := s.create(object)
	if errors.Is(err, iaclstore.ErrAclAlreadyExists) {
		return s.Find(object)
	}
	return rec, err
}

func (s *aclStorage) create(object acl.ObjectIdentity) (rec *acl.AclRecord, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(aclsBucketName))
		if bucket == nil {
			return ErrAclsBucketNotFound
		}
		key := objectKey(object)
		if bucket.Get(key) != nil {
			return iaclstore.ErrAclAlreadyExists
		}
		rec = &acl.AclRecord{ID: uuid.New().String(), Object: object}
		data, err := cbor.Marshal(rec)
		if err != nil {
			// notest
			return err
		}
		return bucket.Put(key, data)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *aclStorage) Find(object acl.ObjectIdentity) (rec *acl.AclRecord, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(aclsBucketName))
		if bucket == nil {
			return ErrAclsBucketNotFound
		}
		data := bucket.Get(objectKey(object))
		if data == nil {
			return iaclstore.ErrAclNotFound
		}
		rec = &acl.AclRecord{}
		return cbor.Unmarshal(data, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *aclStorage) Delete(object acl.ObjectIdentity) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(aclsBucketName))
		if bucket == nil {
			return ErrAclsBucketNotFound
		}
		return bucket.Delete(objectKey(object))
	})
}

func (s *aclStorage) Persist(rec *acl.AclRecord) error {
	if rec == nil {
		return iaclstore.ErrNilAclRecord
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(aclsBucketName))
		if bucket == nil {
			return ErrAclsBucketNotFound
		}
		key := objectKey(rec.Object)
		if bucket.Get(key) == nil {
			return fmt.Errorf("%s: %w", rec.Object.ClassName+objectKeySep+rec.Object.ID, iaclstore.ErrAclNotFound)
		}
		data, err := cbor.Marshal(rec)
		if err != nil {
			// notest
			return err
		}
		return bucket.Put(key, data)
	})
}

func (s *aclStorage) FindMany(objects []acl.ObjectIdentity) (map[acl.ObjectIdentity]*acl.AclRecord, error) {
	res := make(map[acl.ObjectIdentity]*acl.AclRecord, len(objects))
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(aclsBucketName))
		if bucket == nil {
			return ErrAclsBucketNotFound
		}
		for _, object := range objects {
			data := bucket.Get(objectKey(object))
			if data == nil {
				continue
			}
			rec := &acl.AclRecord{}
			if err := cbor.Unmarshal(data, rec); err != nil {
				// notest
				return err
			}
			res[object] = rec
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
