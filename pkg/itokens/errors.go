/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package itokens

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidPayload = errors.New("invalid token payload")
	ErrSignerError    = errors.New("token signing failed")
)
