/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package acl

import (
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"
)

type implIPermissionEngine struct{}

func (implIPermissionEngine) Apply(acl *AclRecord, ctx PermissionContext) {
	aces := acl.Aces(ctx.Kind)
	// scan from the most-recently-inserted entry down
	for i := len(*aces) - 1; i >= 0; i-- {
		if ctx.MatchesAce((*aces)[i]) {
			if logger.IsVerbose() {
				logger.Verbose("apply skipped, ace exists already:", ctx.String())
			}
			return
		}
	}
	// head insertion: the consuming evaluator takes the first match, a fresh
	// grant must win over prior entries for the same identity
	*aces = slices.Insert(*aces, 0, AccessControlEntry{
		Identity: ctx.Identity,
		Mask:     ctx.Mask,
		Granting: ctx.Granting,
	})
}

func (e implIPermissionEngine) Revoke(acl *AclRecord, ctx PermissionContext) {
	aces := acl.Aces(ctx.Kind)
	removed := false
	// delete by index from the top down, lower indices stay valid
	for i := len(*aces) - 1; i >= 0; i-- {
		if ctx.MatchesAce((*aces)[i]) {
			*aces = slices.Delete(*aces, i, i+1)
			removed = true
		}
	}
	if !removed {
		// nothing to revoke: materialize an explicit denial instead
		deny := ctx
		deny.Granting = false
		if logger.IsVerbose() {
			logger.Verbose("revoke found no matching ace, denying explicitly:", deny.String())
		}
		e.Apply(acl, deny)
	}
}

func (implIPermissionEngine) RevokeAllFor(acl *AclRecord, identity SecurityIdentity, kind AceKindType) {
	aces := acl.Aces(kind)
	for i := len(*aces) - 1; i >= 0; i-- {
		if identity.Equals((*aces)[i].Identity) {
			*aces = slices.Delete(*aces, i, i+1)
		}
	}
}

func (e implIPermissionEngine) InstallDefaults(acl *AclRecord) {
	for _, ctx := range []PermissionContext{
		{Kind: AceKind_Class, Identity: RoleIdentity(RoleSuperAdmin), Mask: Mask_IDDQD, Granting: true},
		{Kind: AceKind_Class, Identity: RoleIdentity(RoleAdmin), Mask: Mask_Master, Granting: true},
		{Kind: AceKind_Class, Identity: RoleIdentity(RoleAnonymous), Mask: Mask_View, Granting: true},
		{Kind: AceKind_Class, Identity: RoleIdentity(RoleUser), Mask: Mask_View | Mask_Create, Granting: true},
	} {
		e.Apply(acl, ctx)
	}
}
