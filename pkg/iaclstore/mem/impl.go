/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package mem

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/voedger/aclman/pkg/acl"
	"github.com/voedger/aclman/pkg/iaclstore"
)

type aclStoreFactory struct {
	lock   sync.Mutex
	stores map[string]*aclStorage
}

func (f *aclStoreFactory) AclStore(name string) (iaclstore.IAclStore, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	store, ok := f.stores[name]
	if !ok {
		return nil, iaclstore.ErrStoreDoesNotExist
	}
	return store, nil
}

func (f *aclStoreFactory) Init(name string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if _, ok := f.stores[name]; ok {
		return iaclstore.ErrStoreAlreadyExists
	}
	f.stores[name] = &aclStorage{acls: map[acl.ObjectIdentity]*acl.AclRecord{}}
	return nil
}

type aclStorage struct {
	lock sync.RWMutex
	acls map[acl.ObjectIdentity]*acl.AclRecord
}

func (s *aclStorage) CreateOrFind(object acl.ObjectIdentity) (*acl.AclRecord, error) {
	rec, err := s.create(object)
	if errors.Is(err, iaclstore.ErrAclAlreadyExists) {
		return s.Find(object)
	}
	return rec, err
}

func (s *aclStorage) create(object acl.ObjectIdentity) (*acl.AclRecord, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.acls[object]; ok {
		return nil, iaclstore.ErrAclAlreadyExists
	}
	rec := &acl.AclRecord{ID: uuid.New().String(), Object: object}
	s.acls[object] = rec
	return copyRecord(rec), nil
}

func (s *aclStorage) Find(object acl.ObjectIdentity) (*acl.AclRecord, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	rec, ok := s.acls[object]
	if !ok {
		return nil, iaclstore.ErrAclNotFound
	}
	return copyRecord(rec), nil
}

func (s *aclStorage) Delete(object acl.ObjectIdentity) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.acls, object)
	return nil
}

func (s *aclStorage) Persist(rec *acl.AclRecord) error {
	if rec == nil {
		return iaclstore.ErrNilAclRecord
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.acls[rec.Object]; !ok {
		return iaclstore.ErrAclNotFound
	}
	s.acls[rec.Object] = copyRecord(rec)
	return nil
}

func (s *aclStorage) FindMany(objects []acl.ObjectIdentity) (map[acl.ObjectIdentity]*acl.AclRecord, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	res := make(map[acl.ObjectIdentity]*acl.AclRecord, len(objects))
	for _, object := range objects {
		if rec, ok := s.acls[object]; ok {
			res[object] = copyRecord(rec)
		}
	}
	return res, nil
}

// callers get exclusively-held copies, stored records never alias them
func copyRecord(rec *acl.AclRecord) *acl.AclRecord {
	res := &acl.AclRecord{
		ID:     rec.ID,
		Object: rec.Object,
	}
	if len(rec.ObjectAces) > 0 {
		res.ObjectAces = append(acl.AceList{}, rec.ObjectAces...)
	}
	if len(rec.ClassAces) > 0 {
		res.ClassAces = append(acl.AceList{}, rec.ClassAces...)
	}
	return res
}
