/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/voedger/aclman/pkg/acl"
	"github.com/voedger/aclman/pkg/aclmanager"
	"github.com/voedger/aclman/pkg/iaclstore"
	"github.com/voedger/aclman/pkg/iaclstore/bbolt"
)

var (
	dbDir     string
	storeName string
)

var (
	objectID     string
	className    string
	roleName     string
	userKey      string
	maskNames    string
	aceKind      string
	withDefaults bool
)

func addObjectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&objectID, "id", "", "Object id, empty for a class-scoped acl")
	cmd.Flags().StringVar(&className, "class", "", "Object class name")
	// class is the mandatory half of the acl key
	_ = cmd.MarkFlagRequired("class")
}

func addIdentityFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&roleName, "role", "", "Role the permission applies to")
	cmd.Flags().StringVar(&userKey, "user", "", "Stable user account key the permission applies to")
}

func addKindFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&aceKind, "type", "object", `Ace kind: "object" or "class"`)
}

func objectArg() acl.ObjectIdentity {
	return acl.ObjectIdentity{ID: objectID, ClassName: className}
}

func identityArg() (interface{}, error) {
	switch {
	case len(roleName) > 0 && len(userKey) > 0:
		return nil, errors.New("--role and --user are mutually exclusive")
	case len(roleName) > 0:
		return acl.RoleName(roleName), nil
	case len(userKey) > 0:
		return acl.UserIdentity(userKey), nil
	}
	return nil, errors.New("either --role or --user is required")
}

// The store file is created on first use
func withStore(f func(store iaclstore.IAclStore) error) error {
	factory := bbolt.Provide(bbolt.ParamsType{DBDir: dbDir})
	store, err := factory.AclStore(storeName)
	if errors.Is(err, iaclstore.ErrStoreDoesNotExist) {
		if err = factory.Init(storeName); err != nil {
			return err
		}
		store, err = factory.AclStore(storeName)
	}
	if err != nil {
		return err
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}
	return f(store)
}

func withManager(f func(manager aclmanager.IAclManager) error) error {
	return withStore(func(store iaclstore.IAclStore) error {
		return f(aclmanager.Provide(store, nil))
	})
}
