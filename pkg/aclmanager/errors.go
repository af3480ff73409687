/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package aclmanager

import "errors"

var ErrObjectIdentityUnderivable = errors.New("object identity can not be derived")
