/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package acl

// Permission bits, ascending significance. Masks compose by bitwise OR and
// are compared for exact equality only, no subset/superset matching.
const (
	Mask_View Mask = 1 << iota
	Mask_Create
	Mask_Edit
	Mask_Delete
	Mask_Undelete
	Mask_Operator
	Mask_Master
	Mask_Owner
)

// Mask_IDDQD grants every permission, including bits introduced later
const Mask_IDDQD = Mask(^uint32(0))

// Role names used by IPermissionEngine.InstallDefaults
const (
	RoleSuperAdmin = "administrator-superuser"
	RoleAdmin      = "administrator"
	RoleAnonymous  = "anonymous"
	RoleUser       = "user"
)
