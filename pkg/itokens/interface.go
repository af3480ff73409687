/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package itokens

import "time"

// PrincipalPayload is the payload of an issued principal token.
// A validated payload is accepted by acl.ResolveSecurityIdentity as a
// user-identity input.
type PrincipalPayload struct {
	// Stable account key, survives login renames
	AccountKey string
	Login      string
}

// Implemented in itokensjwt
type ITokens interface {
	IssuePrincipalToken(duration time.Duration, payload *PrincipalPayload) (token string, err error)

	// Returns ErrInvalidToken on a malformed, forged or wrong-audience token,
	// ErrTokenExpired on an outdated one
	ValidatePrincipalToken(token string) (*PrincipalPayload, error)
}
