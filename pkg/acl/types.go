/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package acl

// Mask is a bitfield of permission levels, see Mask_* consts
type Mask uint32

type SecurityIdentityKindType byte

const (
	SecurityIdentityKind_null SecurityIdentityKindType = iota
	SecurityIdentityKind_User
	SecurityIdentityKind_Role
	SecurityIdentityKind_FakeLast
)

// SecurityIdentity is the resolved principal an ACE refers to.
// Immutable once constructed, use UserIdentity() or RoleIdentity().
type SecurityIdentity struct {
	Kind SecurityIdentityKindType

	// SecurityIdentityKind_User - stable account key
	Key string

	// SecurityIdentityKind_Role - role name
	Role string
}

func UserIdentity(key string) SecurityIdentity {
	return SecurityIdentity{Kind: SecurityIdentityKind_User, Key: key}
}

func RoleIdentity(role string) SecurityIdentity {
	return SecurityIdentity{Kind: SecurityIdentityKind_Role, Role: role}
}

// Equals returns true for same kind and same key/role name
func (si SecurityIdentity) Equals(other SecurityIdentity) bool {
	return si.Kind == other.Kind && si.Key == other.Key && si.Role == other.Role
}

// AccessControlEntry is one (identity, mask, granting) record of an AclRecord.
// Its position within the owning list is its precedence: the consuming
// evaluator takes the first match.
type AccessControlEntry struct {
	Identity SecurityIdentity
	Mask     Mask
	Granting bool
}

type AceKindType byte

// Selects which of the two ordered ACE lists of an AclRecord to operate on
const (
	AceKind_null AceKindType = iota
	AceKind_Object
	AceKind_Class
	AceKind_FakeLast
)

// PermissionContext is a transient permission change request
type PermissionContext struct {
	Kind     AceKindType
	Identity SecurityIdentity
	Mask     Mask
	Granting bool
}

// MatchesAce is the sole matching rule driving dedup, skip-if-exists and
// revoke-match logic: same identity AND same mask AND same granting flag.
// The ACE kind is implicit from which list is searched.
func (ctx PermissionContext) MatchesAce(ace AccessControlEntry) bool {
	return ctx.Identity.Equals(ace.Identity) && ctx.Mask == ace.Mask && ctx.Granting == ace.Granting
}

// ObjectIdentity is the stable (id, class) key of a protected domain object.
// Empty ID means a class-scoped ACL.
type ObjectIdentity struct {
	ID        string
	ClassName string
}

type AceList []AccessControlEntry

// AclRecord holds the two ordered ACE lists of one protected object.
// Created, fetched and persisted by an iaclstore implementation; mutated
// in place by IPermissionEngine. The record is borrowed for the duration of
// one manager operation and must not be retained beyond it.
type AclRecord struct {
	ID         string
	Object     ObjectIdentity
	ObjectAces AceList
	ClassAces  AceList
}

func (acl *AclRecord) Aces(kind AceKindType) *AceList {
	switch kind {
	case AceKind_Object:
		return &acl.ObjectAces
	case AceKind_Class:
		return &acl.ClassAces
	}
	// notest
	panic("unsupported ace kind")
}
