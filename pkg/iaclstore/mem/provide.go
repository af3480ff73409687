/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package mem

import (
	"github.com/voedger/aclman/pkg/iaclstore"
)

func Provide() iaclstore.IAclStoreFactory {
	return &aclStoreFactory{stores: map[string]*aclStorage{}}
}
