/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package itokensjwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/aclman/pkg/acl"
	"github.com/voedger/aclman/pkg/itokens"
)

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	signer := ProvideITokens(SecretKeyExample)

	pp := &itokens.PrincipalPayload{AccountKey: "acc-1", Login: "testlogin"}
	token, err := signer.IssuePrincipalToken(time.Minute, pp)
	require.NoError(err)

	validated, err := signer.ValidatePrincipalToken(token)
	require.NoError(err)
	require.Equal(pp, validated)

	// a validated payload resolves to the user identity
	si, err := acl.ResolveSecurityIdentity(validated)
	require.NoError(err)
	require.Equal(acl.UserIdentity("acc-1"), si)
}

func TestValidateErrors(t *testing.T) {
	require := require.New(t)
	signer := ProvideITokens(SecretKeyExample)

	t.Run("expired token", func(t *testing.T) {
		token, err := signer.IssuePrincipalToken(-time.Minute, &itokens.PrincipalPayload{AccountKey: "acc-1"})
		require.NoError(err)
		_, err = signer.ValidatePrincipalToken(token)
		require.ErrorIs(err, itokens.ErrTokenExpired)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := signer.ValidatePrincipalToken("not.a.token")
		require.ErrorIs(err, itokens.ErrInvalidToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		otherKey := append(SecretKeyType{}, SecretKeyExample...)
		otherKey[0]++
		token, err := ProvideITokens(otherKey).IssuePrincipalToken(time.Minute, &itokens.PrincipalPayload{AccountKey: "acc-1"})
		require.NoError(err)
		_, err = signer.ValidatePrincipalToken(token)
		require.ErrorIs(err, itokens.ErrInvalidToken)
	})

	t.Run("nil payload", func(t *testing.T) {
		_, err := signer.IssuePrincipalToken(time.Minute, nil)
		require.ErrorIs(err, itokens.ErrInvalidPayload)
	})
}

func TestShortSecretKeyPanics(t *testing.T) {
	require.Panics(t, func() { NewJWTSigner(SecretKeyType("short")) })
}
