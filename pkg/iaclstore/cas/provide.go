/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package cas

import (
	"errors"

	"github.com/voedger/aclman/pkg/iaclstore"
)

func Provide(params CassandraParamsType) (iaclstore.IAclStoreFactory, error) {
	if len(params.KeyspaceWithReplication) == 0 {
		return nil, errors.New("params.KeyspaceWithReplication can not be empty")
	}
	return newCasStoreFactory(params)
}
