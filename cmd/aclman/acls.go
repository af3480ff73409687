/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/voedger/aclman/pkg/acl"
	"github.com/voedger/aclman/pkg/aclmanager"
)

func newGrantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant a permission mask to a role or user on an object or class",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := identityArg()
			if err != nil {
				return err
			}
			mask, err := acl.ParseMask(maskNames)
			if err != nil {
				return err
			}
			kind, err := acl.ParseAceKind(aceKind)
			if err != nil {
				return err
			}
			return withManager(func(manager aclmanager.IAclManager) error {
				return manager.AddPermission(objectArg(), identity, mask, kind, withDefaults)
			})
		},
	}
	addObjectFlags(cmd)
	addIdentityFlags(cmd)
	addKindFlag(cmd)
	cmd.Flags().StringVar(&maskNames, "mask", "", `Permission mask, e.g. "view|edit" or "iddqd"`)
	_ = cmd.MarkFlagRequired("mask")
	cmd.Flags().BoolVar(&withDefaults, "with-defaults", false, "Also install the bootstrap class-level defaults")
	return cmd
}

func newRevokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke an exact permission grant; denies explicitly when no grant existed",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := identityArg()
			if err != nil {
				return err
			}
			mask, err := acl.ParseMask(maskNames)
			if err != nil {
				return err
			}
			kind, err := acl.ParseAceKind(aceKind)
			if err != nil {
				return err
			}
			return withManager(func(manager aclmanager.IAclManager) error {
				return manager.RevokePermission(objectArg(), identity, mask, kind)
			})
		},
	}
	addObjectFlags(cmd)
	addIdentityFlags(cmd)
	addKindFlag(cmd)
	cmd.Flags().StringVar(&maskNames, "mask", "", `Permission mask, e.g. "view|edit"`)
	_ = cmd.MarkFlagRequired("mask")
	return cmd
}

func newRevokeAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke-all",
		Short: "Remove every entry of a role or user from an acl",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := identityArg()
			if err != nil {
				return err
			}
			kind, err := acl.ParseAceKind(aceKind)
			if err != nil {
				return err
			}
			return withManager(func(manager aclmanager.IAclManager) error {
				return manager.RevokeAllPermissions(objectArg(), identity, kind)
			})
		},
	}
	addObjectFlags(cmd)
	addIdentityFlags(cmd)
	addKindFlag(cmd)
	return cmd
}

func newDefaultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Install the bootstrap class-level default permissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(manager aclmanager.IAclManager) error {
				return manager.InstallDefaultPermissions(objectArg())
			})
		},
	}
	addObjectFlags(cmd)
	return cmd
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the whole acl of an object",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(manager aclmanager.IAclManager) error {
				return manager.DeleteAclFor(objectArg())
			})
		},
	}
	addObjectFlags(cmd)
	return cmd
}
