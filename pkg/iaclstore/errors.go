/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iaclstore

import "errors"

var (
	ErrStoreAlreadyExists = errors.New("store already exists")
	ErrStoreDoesNotExist  = errors.New("store does not exist")

	// Internal control-flow signal at the store boundary: a driver's create
	// raced an existing record. CreateOrFind catches it and re-fetches, it
	// is never returned to the caller
	ErrAclAlreadyExists = errors.New("acl already exists")

	ErrAclNotFound  = errors.New("acl not found")
	ErrNilAclRecord = errors.New("nil acl record")
)
