/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package aclmanager

import (
	"github.com/voedger/aclman/pkg/acl"
)

// IIdentityKeyDeriver maps an arbitrary protected domain object to the
// stable (id, class) pair used as the ACL key
type IIdentityKeyDeriver interface {
	DeriveObjectIdentity(obj interface{}) (acl.ObjectIdentity, error)
}

// IIdentifiableObject is understood by the default deriver: domain objects
// advertise their own ACL key
type IIdentifiableObject interface {
	ObjectKey() (id string, className string)
}

// IAclManager drives load -> mutate -> persist against the ACL store.
// Each operation is one logical unit: a mutation that fails to persist
// leaves no durable effect, the mutated record is discarded with the
// failed operation.
//
// identity arguments accept everything acl.ResolveSecurityIdentity does,
// obj arguments everything the configured IIdentityKeyDeriver does
type IAclManager interface {
	// Grants mask to identity on obj. With installDefaults the bootstrap
	// class-level defaults are installed within the same persist
	AddPermission(obj interface{}, identity interface{}, mask acl.Mask, kind acl.AceKindType, installDefaults bool) error

	// Revokes the exact (identity, mask) grant; if none existed an explicit
	// denial is persisted instead
	RevokePermission(obj interface{}, identity interface{}, mask acl.Mask, kind acl.AceKindType) error

	// Removes every entry of the identity from the kind's list
	RevokeAllPermissions(obj interface{}, identity interface{}, kind acl.AceKindType) error

	// Explicit bootstrap, called once at object creation time
	InstallDefaultPermissions(obj interface{}) error

	// Deletes the whole ACL record, no engine involvement
	DeleteAclFor(obj interface{}) error

	// Batch-fetch hint to the store. The returned count is advisory only
	PreloadAcls(objs []interface{}) (preloaded int, err error)
}
