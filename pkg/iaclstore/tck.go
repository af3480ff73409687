/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iaclstore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/voedger/aclman/pkg/acl"
)

// TechnologyCompatibilityKit test suit
func TechnologyCompatibilityKit(t *testing.T, factory IAclStoreFactory) {
	store := testAclStoreFactory(t, factory)
	t.Run("TestAclStore_CreateOrFind", func(t *testing.T) { testAclStore_CreateOrFind(t, store) })
	t.Run("TestAclStore_Persist", func(t *testing.T) { testAclStore_Persist(t, store) })
	t.Run("TestAclStore_Delete", func(t *testing.T) { testAclStore_Delete(t, store) })
	t.Run("TestAclStore_FindMany", func(t *testing.T) { testAclStore_FindMany(t, store) })
	t.Run("TestAclStore_BorrowedRecords", func(t *testing.T) { testAclStore_BorrowedRecords(t, store) })
}

func testAclStoreFactory(t *testing.T, factory IAclStoreFactory) IAclStore {
	require := require.New(t)
	name := "tck" + uuid.New().String()

	t.Run("ErrStoreDoesNotExist", func(t *testing.T) {
		s, err := factory.AclStore(name)
		require.ErrorIs(err, ErrStoreDoesNotExist)
		require.Nil(s)
	})

	t.Run("ErrStoreAlreadyExists", func(t *testing.T) {
		require.NoError(factory.Init(name))
		require.ErrorIs(factory.Init(name), ErrStoreAlreadyExists)
	})

	store, err := factory.AclStore(name)
	require.NoError(err)
	return store
}

func tckObject(class string) acl.ObjectIdentity {
	return acl.ObjectIdentity{ID: uuid.New().String(), ClassName: class}
}

func testAclStore_CreateOrFind(t *testing.T, store IAclStore) {
	require := require.New(t)

	object := tckObject("article")
	rec, err := store.CreateOrFind(object)
	require.NoError(err)
	require.NotNil(rec)
	require.NotEmpty(rec.ID)
	require.Equal(object, rec.Object)
	require.Empty(rec.ObjectAces)
	require.Empty(rec.ClassAces)

	t.Run("existing acl is fetched, not recreated", func(t *testing.T) {
		again, err := store.CreateOrFind(object)
		require.NoError(err)
		require.Equal(rec.ID, again.ID)
	})

	t.Run("class-scoped acl, empty object id", func(t *testing.T) {
		classObject := acl.ObjectIdentity{ClassName: "invoice" + uuid.New().String()}
		rec, err := store.CreateOrFind(classObject)
		require.NoError(err)
		require.Equal(classObject, rec.Object)
	})
}

func testAclStore_Persist(t *testing.T, store IAclStore) {
	require := require.New(t)

	object := tckObject("article")
	rec, err := store.CreateOrFind(object)
	require.NoError(err)

	rec.ObjectAces = append(rec.ObjectAces, acl.AccessControlEntry{
		Identity: acl.RoleIdentity("editor"),
		Mask:     acl.Mask_View | acl.Mask_Edit,
		Granting: true,
	})
	rec.ClassAces = append(rec.ClassAces, acl.AccessControlEntry{
		Identity: acl.UserIdentity("u1"),
		Mask:     acl.Mask_IDDQD,
		Granting: false,
	})
	require.NoError(store.Persist(rec))

	loaded, err := store.Find(object)
	require.NoError(err)
	require.Equal(rec.ID, loaded.ID)
	require.Equal(rec.ObjectAces, loaded.ObjectAces)
	require.Equal(rec.ClassAces, loaded.ClassAces)

	t.Run("ErrNilAclRecord", func(t *testing.T) {
		require.ErrorIs(store.Persist(nil), ErrNilAclRecord)
	})

	t.Run("ErrAclNotFound for a never-created object", func(t *testing.T) {
		foreign := &acl.AclRecord{ID: uuid.New().String(), Object: tckObject("ghost")}
		require.ErrorIs(store.Persist(foreign), ErrAclNotFound)
	})
}

func testAclStore_Delete(t *testing.T, store IAclStore) {
	require := require.New(t)

	object := tckObject("article")
	_, err := store.CreateOrFind(object)
	require.NoError(err)

	require.NoError(store.Delete(object))
	_, err = store.Find(object)
	require.ErrorIs(err, ErrAclNotFound)

	t.Run("second delete is not an error", func(t *testing.T) {
		require.NoError(store.Delete(object))
	})

	t.Run("find of a deleted acl", func(t *testing.T) {
		_, err := store.Find(object)
		require.ErrorIs(err, ErrAclNotFound)
	})
}

func testAclStore_FindMany(t *testing.T, store IAclStore) {
	require := require.New(t)

	known1 := tckObject("article")
	known2 := tckObject("invoice")
	unknown := tckObject("ghost")
	_, err := store.CreateOrFind(known1)
	require.NoError(err)
	_, err = store.CreateOrFind(known2)
	require.NoError(err)

	recs, err := store.FindMany([]acl.ObjectIdentity{known1, known2, unknown})
	require.NoError(err)
	require.Len(recs, 2)
	require.Equal(known1, recs[known1].Object)
	require.Equal(known2, recs[known2].Object)
	require.NotContains(recs, unknown)
}

// records are borrowed for one operation: mutations must not reach the
// store before Persist
func testAclStore_BorrowedRecords(t *testing.T, store IAclStore) {
	require := require.New(t)

	object := tckObject("article")
	rec, err := store.CreateOrFind(object)
	require.NoError(err)

	rec.ObjectAces = append(rec.ObjectAces, acl.AccessControlEntry{
		Identity: acl.RoleIdentity("editor"),
		Mask:     acl.Mask_View,
		Granting: true,
	})

	loaded, err := store.Find(object)
	require.NoError(err)
	require.Empty(loaded.ObjectAces)
}
