/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package acl

import "errors"

var (
	ErrInvalidIdentityKind      = errors.New("input can not be classified into a user or role identity")
	ErrIdentityResolutionFailed = errors.New("no concrete security identity could be built")
	ErrUnknownPermissionName    = errors.New("unknown permission name")
	ErrUnknownAceKind           = errors.New("unknown ace kind")
)
