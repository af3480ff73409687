/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package acl

import (
	"github.com/voedger/aclman/pkg/itokens"
)

// IAccountHolder is implemented by user-account-like values that resolve to
// a user security identity
type IAccountHolder interface {
	AccountKey() string
}

// RoleName resolves to a role security identity, same as a raw string
type RoleName string

// ResolveSecurityIdentity converges the accepted input shapes on the
// SecurityIdentity tagged union:
//   - SecurityIdentity: returned unchanged
//   - IAccountHolder: user identity keyed by the stable account key
//   - itokens.PrincipalPayload (validated session token): user identity
//     keyed by the payload's account key
//   - RoleName, string: role identity
//
// Anything else fails with ErrInvalidIdentityKind
func ResolveSecurityIdentity(input interface{}) (si SecurityIdentity, err error) {
	switch v := input.(type) {
	case SecurityIdentity:
		si = v
	case IAccountHolder:
		si = UserIdentity(v.AccountKey())
	case *itokens.PrincipalPayload:
		si = UserIdentity(v.AccountKey)
	case itokens.PrincipalPayload:
		si = UserIdentity(v.AccountKey)
	case RoleName:
		si = RoleIdentity(string(v))
	case string:
		si = RoleIdentity(v)
	default:
		return si, ErrInvalidIdentityKind
	}
	if si.Kind == SecurityIdentityKind_null || si.Kind >= SecurityIdentityKind_FakeLast || (len(si.Key) == 0 && len(si.Role) == 0) {
		return SecurityIdentity{}, ErrIdentityResolutionFailed
	}
	return si, nil
}
