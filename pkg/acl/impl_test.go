/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package acl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_PermissionEngine(t *testing.T) {
	require := require.New(t)
	engine := ProvidePermissionEngine()

	rec := &AclRecord{Object: ObjectIdentity{ID: "42", ClassName: "article"}}

	grantEdit := PermissionContext{
		Kind:     AceKind_Object,
		Identity: RoleIdentity("editor"),
		Mask:     Mask_View | Mask_Edit,
		Granting: true,
	}

	engine.Apply(rec, grantEdit)
	require.Len(rec.ObjectAces, 1)
	require.Equal(RoleIdentity("editor"), rec.ObjectAces[0].Identity)
	require.Equal(Mask_View|Mask_Edit, rec.ObjectAces[0].Mask)
	require.True(rec.ObjectAces[0].Granting)
	require.Empty(rec.ClassAces)

	engine.Revoke(rec, grantEdit)
	require.Empty(rec.ObjectAces)

	// second revoke finds nothing to delete and materializes a denial
	engine.Revoke(rec, grantEdit)
	require.Len(rec.ObjectAces, 1)
	require.False(rec.ObjectAces[0].Granting)
	require.Equal(Mask_View|Mask_Edit, rec.ObjectAces[0].Mask)
}

func TestPermissionEngine_Apply(t *testing.T) {
	engine := ProvidePermissionEngine()

	t.Run("idempotent", func(t *testing.T) {
		require := require.New(t)
		rec := &AclRecord{}
		ctx := PermissionContext{Kind: AceKind_Object, Identity: UserIdentity("u1"), Mask: Mask_View, Granting: true}
		engine.Apply(rec, ctx)
		engine.Apply(rec, ctx)
		require.Len(rec.ObjectAces, 1)
	})

	t.Run("head precedence", func(t *testing.T) {
		require := require.New(t)
		rec := &AclRecord{}
		engine.Apply(rec, PermissionContext{Kind: AceKind_Object, Identity: UserIdentity("u1"), Mask: Mask_View, Granting: true})
		engine.Apply(rec, PermissionContext{Kind: AceKind_Object, Identity: UserIdentity("u2"), Mask: Mask_Edit, Granting: true})
		engine.Apply(rec, PermissionContext{Kind: AceKind_Object, Identity: UserIdentity("u3"), Mask: Mask_Delete, Granting: false})
		require.Len(rec.ObjectAces, 3)
		require.Equal(UserIdentity("u3"), rec.ObjectAces[0].Identity)
		require.Equal(UserIdentity("u1"), rec.ObjectAces[2].Identity)
	})

	t.Run("same mask, different granting flag is a distinct ace", func(t *testing.T) {
		require := require.New(t)
		rec := &AclRecord{}
		engine.Apply(rec, PermissionContext{Kind: AceKind_Object, Identity: UserIdentity("u1"), Mask: Mask_View, Granting: true})
		engine.Apply(rec, PermissionContext{Kind: AceKind_Object, Identity: UserIdentity("u1"), Mask: Mask_View, Granting: false})
		require.Len(rec.ObjectAces, 2)
	})

	t.Run("class kind goes to the class list", func(t *testing.T) {
		require := require.New(t)
		rec := &AclRecord{}
		engine.Apply(rec, PermissionContext{Kind: AceKind_Class, Identity: RoleIdentity("r"), Mask: Mask_View, Granting: true})
		require.Empty(rec.ObjectAces)
		require.Len(rec.ClassAces, 1)
	})
}

func TestPermissionEngine_Revoke(t *testing.T) {
	engine := ProvidePermissionEngine()

	t.Run("fallback denial on empty list", func(t *testing.T) {
		require := require.New(t)
		rec := &AclRecord{}
		engine.Revoke(rec, PermissionContext{Kind: AceKind_Object, Identity: UserIdentity("u1"), Mask: Mask_Edit, Granting: true})
		require.Len(rec.ObjectAces, 1)
		require.False(rec.ObjectAces[0].Granting)
		require.Equal(Mask_Edit, rec.ObjectAces[0].Mask)
		require.Equal(UserIdentity("u1"), rec.ObjectAces[0].Identity)
	})

	t.Run("removes all matches, keeps the rest", func(t *testing.T) {
		require := require.New(t)
		match := AccessControlEntry{Identity: UserIdentity("u1"), Mask: Mask_View, Granting: true}
		other := AccessControlEntry{Identity: UserIdentity("u2"), Mask: Mask_View, Granting: true}
		// duplicate entries bypass Apply's dedup on purpose
		rec := &AclRecord{ObjectAces: AceList{match, other, match}}
		engine.Revoke(rec, PermissionContext{Kind: AceKind_Object, Identity: UserIdentity("u1"), Mask: Mask_View, Granting: true})
		require.Len(rec.ObjectAces, 1)
		require.Equal(other, rec.ObjectAces[0])
	})

	t.Run("exact triple match only", func(t *testing.T) {
		require := require.New(t)
		rec := &AclRecord{ObjectAces: AceList{
			{Identity: UserIdentity("u1"), Mask: Mask_View, Granting: true},
			{Identity: UserIdentity("u1"), Mask: Mask_Delete, Granting: false},
		}}
		engine.Revoke(rec, PermissionContext{Kind: AceKind_Object, Identity: UserIdentity("u1"), Mask: Mask_View, Granting: true})
		require.Len(rec.ObjectAces, 1)
		require.Equal(Mask_Delete, rec.ObjectAces[0].Mask)
		require.False(rec.ObjectAces[0].Granting)
	})
}

func TestPermissionEngine_RevokeAllFor(t *testing.T) {
	require := require.New(t)
	engine := ProvidePermissionEngine()

	a := UserIdentity("a")
	b := RoleIdentity("b")
	rec := &AclRecord{ObjectAces: AceList{
		{Identity: a, Mask: Mask_View, Granting: true},
		{Identity: b, Mask: Mask_View, Granting: true},
		{Identity: a, Mask: Mask_Edit, Granting: false},
		{Identity: b, Mask: Mask_Owner, Granting: false},
		{Identity: a, Mask: Mask_IDDQD, Granting: true},
	}}

	engine.RevokeAllFor(rec, a, AceKind_Object)

	require.Len(rec.ObjectAces, 2)
	for _, ace := range rec.ObjectAces {
		require.Equal(b, ace.Identity)
	}

	// blanket removal synthesizes no denial
	engine.RevokeAllFor(rec, UserIdentity("absent"), AceKind_Object)
	require.Len(rec.ObjectAces, 2)
}

func TestPermissionEngine_InstallDefaults(t *testing.T) {
	require := require.New(t)
	engine := ProvidePermissionEngine()

	rec := &AclRecord{}
	engine.InstallDefaults(rec)

	require.Empty(rec.ObjectAces)
	require.Len(rec.ClassAces, 4)

	// Apply inserts at head, so the last-applied context has highest precedence
	require.Equal(RoleIdentity(RoleUser), rec.ClassAces[0].Identity)
	require.Equal(Mask_View|Mask_Create, rec.ClassAces[0].Mask)
	require.Equal(RoleIdentity(RoleAnonymous), rec.ClassAces[1].Identity)
	require.Equal(Mask_View, rec.ClassAces[1].Mask)
	require.Equal(RoleIdentity(RoleAdmin), rec.ClassAces[2].Identity)
	require.Equal(Mask_Master, rec.ClassAces[2].Mask)
	require.Equal(RoleIdentity(RoleSuperAdmin), rec.ClassAces[3].Identity)
	require.Equal(Mask_IDDQD, rec.ClassAces[3].Mask)
	for _, ace := range rec.ClassAces {
		require.True(ace.Granting)
	}

	t.Run("idempotent", func(t *testing.T) {
		engine.InstallDefaults(rec)
		require.Len(rec.ClassAces, 4)
	})

	t.Run("additive over pre-existing entries", func(t *testing.T) {
		rec := &AclRecord{ClassAces: AceList{{Identity: RoleIdentity("custom"), Mask: Mask_Owner, Granting: true}}}
		engine.InstallDefaults(rec)
		require.Len(rec.ClassAces, 5)
		require.Equal(RoleIdentity("custom"), rec.ClassAces[4].Identity)
	})
}
