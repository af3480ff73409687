/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package bbolt

import (
	"github.com/voedger/aclman/pkg/iaclstore"
)

func Provide(params ParamsType) iaclstore.IAclStoreFactory {
	return &aclStoreFactory{params: params}
}
