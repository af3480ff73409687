/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package aclmanager

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/aclman/pkg/acl"
	"github.com/voedger/aclman/pkg/iaclstore"
	"github.com/voedger/aclman/pkg/iaclstore/mem"
)

type article struct {
	id string
}

func (a article) ObjectKey() (string, string) { return a.id, "article" }

func newTestStore(t *testing.T) iaclstore.IAclStore {
	require := require.New(t)
	factory := mem.Provide()
	require.NoError(factory.Init("app"))
	store, err := factory.AclStore("app")
	require.NoError(err)
	return store
}

func TestBasicUsage_AclManager(t *testing.T) {
	require := require.New(t)
	store := newTestStore(t)
	manager := Provide(store, nil)

	doc := article{id: "42"}

	require.NoError(manager.AddPermission(doc, "editor", acl.Mask_View|acl.Mask_Edit, acl.AceKind_Object, false))

	rec, err := store.Find(acl.ObjectIdentity{ID: "42", ClassName: "article"})
	require.NoError(err)
	require.Len(rec.ObjectAces, 1)
	require.Equal(acl.RoleIdentity("editor"), rec.ObjectAces[0].Identity)
	require.True(rec.ObjectAces[0].Granting)

	require.NoError(manager.RevokePermission(doc, "editor", acl.Mask_View|acl.Mask_Edit, acl.AceKind_Object))
	rec, err = store.Find(acl.ObjectIdentity{ID: "42", ClassName: "article"})
	require.NoError(err)
	require.Empty(rec.ObjectAces)

	// revoking what is not granted persists an explicit denial
	require.NoError(manager.RevokePermission(doc, "editor", acl.Mask_View|acl.Mask_Edit, acl.AceKind_Object))
	rec, err = store.Find(acl.ObjectIdentity{ID: "42", ClassName: "article"})
	require.NoError(err)
	require.Len(rec.ObjectAces, 1)
	require.False(rec.ObjectAces[0].Granting)

	require.NoError(manager.DeleteAclFor(doc))
	_, err = store.Find(acl.ObjectIdentity{ID: "42", ClassName: "article"})
	require.ErrorIs(err, iaclstore.ErrAclNotFound)
}

func TestAclManager_AddPermission(t *testing.T) {

	t.Run("with defaults installation", func(t *testing.T) {
		require := require.New(t)
		store := newTestStore(t)
		manager := Provide(store, nil)

		doc := article{id: "1"}
		require.NoError(manager.AddPermission(doc, acl.UserIdentity("u1"), acl.Mask_Owner, acl.AceKind_Object, true))

		rec, err := store.Find(acl.ObjectIdentity{ID: "1", ClassName: "article"})
		require.NoError(err)
		require.Len(rec.ObjectAces, 1)
		require.Len(rec.ClassAces, 4)

		// a repeated grant with defaults changes nothing
		require.NoError(manager.AddPermission(doc, acl.UserIdentity("u1"), acl.Mask_Owner, acl.AceKind_Object, true))
		rec, err = store.Find(acl.ObjectIdentity{ID: "1", ClassName: "article"})
		require.NoError(err)
		require.Len(rec.ObjectAces, 1)
		require.Len(rec.ClassAces, 4)
	})

	t.Run("identity resolution failure, nothing persisted", func(t *testing.T) {
		require := require.New(t)
		store := newTestStore(t)
		manager := Provide(store, nil)

		err := manager.AddPermission(article{id: "2"}, 42, acl.Mask_View, acl.AceKind_Object, false)
		require.ErrorIs(err, acl.ErrInvalidIdentityKind)
	})

	t.Run("underivable object", func(t *testing.T) {
		require := require.New(t)
		manager := Provide(newTestStore(t), nil)

		err := manager.AddPermission(struct{}{}, "editor", acl.Mask_View, acl.AceKind_Object, false)
		require.ErrorIs(err, ErrObjectIdentityUnderivable)
	})
}

func TestAclManager_RevokeAllPermissions(t *testing.T) {
	require := require.New(t)
	store := newTestStore(t)
	manager := Provide(store, nil)

	doc := article{id: "3"}
	require.NoError(manager.AddPermission(doc, "editor", acl.Mask_View, acl.AceKind_Object, false))
	require.NoError(manager.AddPermission(doc, "editor", acl.Mask_Edit, acl.AceKind_Object, false))
	require.NoError(manager.AddPermission(doc, "reviewer", acl.Mask_View, acl.AceKind_Object, false))

	require.NoError(manager.RevokeAllPermissions(doc, "editor", acl.AceKind_Object))

	rec, err := store.Find(acl.ObjectIdentity{ID: "3", ClassName: "article"})
	require.NoError(err)
	require.Len(rec.ObjectAces, 1)
	require.Equal(acl.RoleIdentity("reviewer"), rec.ObjectAces[0].Identity)
}

func TestAclManager_InstallDefaultPermissions(t *testing.T) {
	require := require.New(t)
	store := newTestStore(t)
	manager := Provide(store, nil)

	doc := article{id: "4"}
	require.NoError(manager.InstallDefaultPermissions(doc))
	require.NoError(manager.InstallDefaultPermissions(doc))

	rec, err := store.Find(acl.ObjectIdentity{ID: "4", ClassName: "article"})
	require.NoError(err)
	require.Empty(rec.ObjectAces)
	require.Len(rec.ClassAces, 4)
	require.Equal(acl.RoleIdentity(acl.RoleUser), rec.ClassAces[0].Identity)
}

func TestAclManager_PreloadAcls(t *testing.T) {
	require := require.New(t)
	store := newTestStore(t)
	manager := Provide(store, nil)

	require.NoError(manager.AddPermission(article{id: "5"}, "editor", acl.Mask_View, acl.AceKind_Object, false))
	require.NoError(manager.AddPermission(article{id: "6"}, "editor", acl.Mask_View, acl.AceKind_Object, false))

	preloaded, err := manager.PreloadAcls([]interface{}{article{id: "5"}, article{id: "6"}, article{id: "7"}})
	require.NoError(err)
	require.Equal(2, preloaded)

	_, err = manager.PreloadAcls([]interface{}{struct{}{}})
	require.ErrorIs(err, ErrObjectIdentityUnderivable)
}

// a store whose Persist always fails
type brokenStore struct {
	iaclstore.IAclStore
	persistErr error
}

func (s brokenStore) Persist(*acl.AclRecord) error { return s.persistErr }

func TestAclManager_PersistFailurePropagates(t *testing.T) {
	require := require.New(t)
	store := newTestStore(t)
	persistErr := errors.New("disk full")
	manager := Provide(brokenStore{IAclStore: store, persistErr: persistErr}, nil)

	doc := article{id: "8"}
	require.ErrorIs(manager.AddPermission(doc, "editor", acl.Mask_View, acl.AceKind_Object, false), persistErr)

	// the mutation was discarded together with the failed operation
	rec, err := store.Find(acl.ObjectIdentity{ID: "8", ClassName: "article"})
	require.NoError(err)
	require.Empty(rec.ObjectAces)
}

func TestIdentityKeyDeriver(t *testing.T) {
	require := require.New(t)
	deriver := ProvideIdentityKeyDeriver()

	object, err := deriver.DeriveObjectIdentity(acl.ObjectIdentity{ID: "1", ClassName: "article"})
	require.NoError(err)
	require.Equal(acl.ObjectIdentity{ID: "1", ClassName: "article"}, object)

	object, err = deriver.DeriveObjectIdentity(article{id: "2"})
	require.NoError(err)
	require.Equal(acl.ObjectIdentity{ID: "2", ClassName: "article"}, object)

	// class-scoped identity, no object id
	object, err = deriver.DeriveObjectIdentity(acl.ObjectIdentity{ClassName: "article"})
	require.NoError(err)
	require.Empty(object.ID)

	_, err = deriver.DeriveObjectIdentity("just a string")
	require.ErrorIs(err, ErrObjectIdentityUnderivable)

	_, err = deriver.DeriveObjectIdentity(acl.ObjectIdentity{ID: "1"})
	require.ErrorIs(err, ErrObjectIdentityUnderivable)
}
