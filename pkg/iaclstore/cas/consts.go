/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package cas

// SimpleWithReplication is the keyspace replication used by tests and
// single-node deployments
const SimpleWithReplication = "{ 'class' : 'SimpleStrategy', 'replication_factor' : 1 }"

const retryAttempt = 3
