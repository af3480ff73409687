/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package aclmanager

import (
	"github.com/voedger/aclman/pkg/acl"
	"github.com/voedger/aclman/pkg/iaclstore"
)

// Provide creates an IAclManager over the given store. A nil deriver falls
// back to the default one (acl.ObjectIdentity and IIdentifiableObject inputs)
func Provide(store iaclstore.IAclStore, deriver IIdentityKeyDeriver) IAclManager {
	if deriver == nil {
		deriver = ProvideIdentityKeyDeriver()
	}
	return &implIAclManager{
		store:   store,
		engine:  acl.ProvidePermissionEngine(),
		deriver: deriver,
	}
}

func ProvideIdentityKeyDeriver() IIdentityKeyDeriver {
	return implIIdentityKeyDeriver{}
}
