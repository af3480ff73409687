/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package itokensjwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/voedger/aclman/pkg/itokens"
)

func (j *JWTSigner) IssuePrincipalToken(duration time.Duration, payload *itokens.PrincipalPayload) (token string, err error) {
	if payload == nil || len(payload.AccountKey) == 0 {
		return "", itokens.ErrInvalidPayload
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"iat":        now.Unix(),
		"exp":        now.Add(duration).Unix(),
		"aud":        audiencePrincipal,
		"AccountKey": payload.AccountKey,
		"Login":      payload.Login,
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = jwtToken.SignedString(j.secretKey)
	if err != nil {
		// notest
		return "", fmt.Errorf("cannot issue token: %w", itokens.ErrSignerError)
	}
	return token, nil
}

func (j *JWTSigner) ValidatePrincipalToken(token string) (*itokens.PrincipalPayload, error) {
	jwtToken, err := jwt.Parse(token,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, itokens.ErrInvalidToken
			}
			return j.secretKey, nil
		},
		jwt.WithAudience(audiencePrincipal),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", err.Error(), itokens.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%s: %w", err.Error(), itokens.ErrInvalidToken)
	}
	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok || !jwtToken.Valid {
		// notest
		return nil, itokens.ErrInvalidToken
	}
	accountKey, _ := claims["AccountKey"].(string)
	if len(accountKey) == 0 {
		return nil, itokens.ErrInvalidPayload
	}
	login, _ := claims["Login"].(string)
	return &itokens.PrincipalPayload{AccountKey: accountKey, Login: login}, nil
}

func NewJWTSigner(secretKey SecretKeyType) *JWTSigner {
	if len(secretKey) < SecretKeyLength {
		panic(fmt.Errorf("invalid key length: must be at least %d chars", SecretKeyLength))
	}
	return &JWTSigner{secretKey: secretKey}
}
