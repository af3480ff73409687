/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package acl

// IPermissionEngine mutates the in-memory ACE lists of an AclRecord.
// It never touches the store: persistence is the caller's responsibility.
// Implemented in impl.go, provided by ProvidePermissionEngine()
type IPermissionEngine interface {
	// Inserts a new ACE built from ctx at the head of the ctx.Kind list.
	// No-op if an ACE matching ctx already exists (idempotent)
	Apply(acl *AclRecord, ctx PermissionContext)

	// Deletes every ACE matching ctx from the ctx.Kind list.
	// If nothing matched, applies ctx with Granting=false instead, so the
	// identity is explicitly denied rather than falling through to
	// defaults/inheritance in the consuming evaluator
	Revoke(acl *AclRecord, ctx PermissionContext)

	// Deletes every ACE of the given identity from the kind's list,
	// regardless of mask and granting flag. No denial fallback
	RevokeAllFor(acl *AclRecord, identity SecurityIdentity, kind AceKindType)

	// Applies the bootstrap class-kind grants:
	//   RoleSuperAdmin -> Mask_IDDQD
	//   RoleAdmin      -> Mask_Master
	//   RoleAnonymous  -> Mask_View
	//   RoleUser       -> Mask_View | Mask_Create
	// Safe to call repeatedly
	InstallDefaults(acl *AclRecord)
}
