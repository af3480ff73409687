/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package itokensjwt

import (
	"github.com/voedger/aclman/pkg/itokens"
)

// ProvideITokens implementation by provided interface.
// To receive implementation you must provide a Secret Key, min length 64 bytes, panic otherwise
func ProvideITokens(secretKey SecretKeyType) itokens.ITokens {
	return NewJWTSigner(secretKey)
}
