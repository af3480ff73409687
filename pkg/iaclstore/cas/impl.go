/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package cas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/aclman/pkg/acl"
	"github.com/voedger/aclman/pkg/iaclstore"
)

type aclStoreFactory struct {
	params  CassandraParamsType
	session *gocql.Session
}

func newCasStoreFactory(params CassandraParamsType) (*aclStoreFactory, error) {
	cluster := gocql.NewCluster(strings.Split(params.Hosts, ",")...)
	if params.Port > 0 {
		cluster.Port = params.Port
	}
	if params.ProtoVersion > 0 {
		cluster.ProtoVersion = params.ProtoVersion
	}
	if params.NumRetries > 0 {
		cluster.RetryPolicy = &gocql.SimpleRetryPolicy{NumRetries: params.NumRetries}
	}
	if params.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{Username: params.Username, Password: params.Pwd}
	}
	cluster.CQLVersion = params.cqlVersion()
	cluster.Consistency = gocql.Quorum

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("can't connect to cluster: %w", err)
	}

	logger.Info("creating keyspace", params.keyspace())
	if err := session.Query(fmt.Sprintf(
		"create keyspace if not exists %s with replication = %s",
		params.keyspace(), params.KeyspaceWithReplication)).Exec(); err != nil {
		return nil, fmt.Errorf("can't create keyspace %s: %w", params.keyspace(), err)
	}

	return &aclStoreFactory{params: params, session: session}, nil
}

// Cassandra identifiers allow [a-z0-9_] only
func tableName(storeName string) string {
	var sb strings.Builder
	sb.WriteString("acls_")
	for _, r := range strings.ToLower(storeName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

func (f *aclStoreFactory) tableExists(table string) (bool, error) {
	var name string
	err := f.session.Query(
		"select table_name from system_schema.tables where keyspace_name = ? and table_name = ?",
		f.params.keyspace(), table).Scan(&name)
	if err == gocql.ErrNotFound {
		return false, nil
	}
	if err != nil {
		// notest
		return false, err
	}
	return true, nil
}

func (f *aclStoreFactory) AclStore(name string) (iaclstore.IAclStore, error) {
	table := tableName(name)
	exists, err := f.tableExists(table)
	if err != nil {
		// notest
		return nil, err
	}
	if !exists {
		return nil, iaclstore.ErrStoreDoesNotExist
	}
	return &aclStorage{
		session: f.session,
		table:   f.params.keyspace() + "." + table,
	}, nil
}

func (f *aclStoreFactory) Init(name string) error {
	table := tableName(name)
	exists, err := f.tableExists(table)
	if err != nil {
		// notest
		return err
	}
	if exists {
		return iaclstore.ErrStoreAlreadyExists
	}
	return f.session.Query(fmt.Sprintf(
		`create table %s.%s (class_name text, object_id text, data blob, primary key ((class_name, object_id)))`,
		f.params.keyspace(), table)).Exec()
}

type aclStorage struct {
	session *gocql.Session
	table   string
}

func (s *aclStorage) CreateOrFind(object acl.ObjectIdentity) (*acl.AclRecord, error) {
	rec := &acl.AclRecord{ID: uuid.New().String(), Object: object}
	data, err := cbor.Marshal(rec)
	if err != nil {
		// notest
		return nil, err
	}
	applied, err := s.session.Query(fmt.Sprintf(
		"insert into %s (class_name, object_id, data) values (?, ?, ?) if not exists", s.table),
		object.ClassName, object.ID, data).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return nil, err
	}
	if !applied {
		// lost the race to an existing record, fetch it instead
		return s.Find(object)
	}
	return rec, nil
}

func (s *aclStorage) Find(object acl.ObjectIdentity) (*acl.AclRecord, error) {
	data := []byte{}
	err := s.session.Query(fmt.Sprintf(
		"select data from %s where class_name = ? and object_id = ?", s.table),
		object.ClassName, object.ID).Scan(&data)
	if err == gocql.ErrNotFound {
		return nil, iaclstore.ErrAclNotFound
	}
	if err != nil {
		return nil, err
	}
	rec := &acl.AclRecord{}
	if err := cbor.Unmarshal(data, rec); err != nil {
		// notest
		return nil, err
	}
	return rec, nil
}

func (s *aclStorage) Delete(object acl.ObjectIdentity) error {
	return s.session.Query(fmt.Sprintf(
		"delete from %s where class_name = ? and object_id = ?", s.table),
		object.ClassName, object.ID).Exec()
}

func (s *aclStorage) Persist(rec *acl.AclRecord) error {
	if rec == nil {
		return iaclstore.ErrNilAclRecord
	}
	data, err := cbor.Marshal(rec)
	if err != nil {
		// notest
		return err
	}
	applied, err := s.session.Query(fmt.Sprintf(
		"update %s set data = ? where class_name = ? and object_id = ? if exists", s.table),
		data, rec.Object.ClassName, rec.Object.ID).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return err
	}
	if !applied {
		return fmt.Errorf("%s/%s: %w", rec.Object.ClassName, rec.Object.ID, iaclstore.ErrAclNotFound)
	}
	return nil
}

func (s *aclStorage) FindMany(objects []acl.ObjectIdentity) (map[acl.ObjectIdentity]*acl.AclRecord, error) {
	res := make(map[acl.ObjectIdentity]*acl.AclRecord, len(objects))
	for _, object := range objects {
		rec, err := s.Find(object)
		if err == nil {
			res[object] = rec
			continue
		}
		if !errors.Is(err, iaclstore.ErrAclNotFound) {
			// notest
			return nil, err
		}
	}
	return res, nil
}
