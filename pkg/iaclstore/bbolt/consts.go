/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package bbolt

import "os"

const (
	aclsBucketName = "acls"
	dbExt          = ".db"

	fileModeRW   = os.FileMode(0644)
	dirModeRWX   = os.FileMode(0755)
	objectKeySep = "|"
)
