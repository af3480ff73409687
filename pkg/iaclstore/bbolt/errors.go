/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package bbolt

import "errors"

var ErrAclsBucketNotFound = errors.New("acls bucket not found")
