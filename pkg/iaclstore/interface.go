/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iaclstore

import (
	"github.com/voedger/aclman/pkg/acl"
)

// Implemented by a certain driver (mem, bbolt, cas)
type IAclStoreFactory interface {
	// returns IAclStore for an existing store
	// returns ErrStoreDoesNotExist
	AclStore(name string) (IAclStore, error)

	// creates a new store
	// returns ErrStoreAlreadyExists
	Init(name string) error
}

// IAclStore persists AclRecords keyed by object identity.
//
// Records handed out are exclusively-held in-memory copies: the caller may
// mutate them freely, nothing reaches the store before Persist. The store
// serializes concurrent CreateOrFind/Persist per object.
type IAclStore interface {
	// Idempotent: creating an ACL that exists already transparently falls
	// back to fetching the existing one. ErrAclAlreadyExists never escapes
	CreateOrFind(object acl.ObjectIdentity) (*acl.AclRecord, error)

	// returns ErrAclNotFound
	Find(object acl.ObjectIdentity) (*acl.AclRecord, error)

	// No error when the ACL is absent
	Delete(object acl.ObjectIdentity) error

	// Write-back after in-memory mutation. Fails loudly: ErrNilAclRecord on
	// a nil record, ErrAclNotFound when the record's object has no stored
	// ACL (deleted concurrently or never created), storage errors propagate
	Persist(rec *acl.AclRecord) error

	// Advisory batch preload; objects without an ACL are simply missing
	// from the result
	FindMany(objects []acl.ObjectIdentity) (map[acl.ObjectIdentity]*acl.AclRecord, error)
}
