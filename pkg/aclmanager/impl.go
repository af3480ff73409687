/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package aclmanager

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/aclman/pkg/acl"
	"github.com/voedger/aclman/pkg/iaclstore"
)

type implIAclManager struct {
	store   iaclstore.IAclStore
	engine  acl.IPermissionEngine
	deriver IIdentityKeyDeriver
}

func (m *implIAclManager) AddPermission(obj interface{}, identity interface{}, mask acl.Mask, kind acl.AceKindType, installDefaults bool) error {
	rec, ctx, err := m.load(obj, identity, mask, kind)
	if err != nil {
		return err
	}
	m.engine.Apply(rec, ctx)
	if installDefaults {
		m.engine.InstallDefaults(rec)
	}
	return m.persist(rec)
}

func (m *implIAclManager) RevokePermission(obj interface{}, identity interface{}, mask acl.Mask, kind acl.AceKindType) error {
	rec, ctx, err := m.load(obj, identity, mask, kind)
	if err != nil {
		return err
	}
	m.engine.Revoke(rec, ctx)
	return m.persist(rec)
}

func (m *implIAclManager) RevokeAllPermissions(obj interface{}, identity interface{}, kind acl.AceKindType) error {
	rec, ctx, err := m.load(obj, identity, 0, kind)
	if err != nil {
		return err
	}
	m.engine.RevokeAllFor(rec, ctx.Identity, kind)
	return m.persist(rec)
}

func (m *implIAclManager) InstallDefaultPermissions(obj interface{}) error {
	object, err := m.deriver.DeriveObjectIdentity(obj)
	if err != nil {
		return err
	}
	rec, err := m.store.CreateOrFind(object)
	if err != nil {
		return err
	}
	m.engine.InstallDefaults(rec)
	return m.persist(rec)
}

func (m *implIAclManager) DeleteAclFor(obj interface{}) error {
	object, err := m.deriver.DeriveObjectIdentity(obj)
	if err != nil {
		return err
	}
	return m.store.Delete(object)
}

func (m *implIAclManager) PreloadAcls(objs []interface{}) (preloaded int, err error) {
	objects := make([]acl.ObjectIdentity, 0, len(objs))
	for _, obj := range objs {
		object, err := m.deriver.DeriveObjectIdentity(obj)
		if err != nil {
			return 0, err
		}
		objects = append(objects, object)
	}
	recs, err := m.store.FindMany(objects)
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

// load materializes the borrowed record and the requested context
func (m *implIAclManager) load(obj interface{}, identity interface{}, mask acl.Mask, kind acl.AceKindType) (*acl.AclRecord, acl.PermissionContext, error) {
	ctx := acl.PermissionContext{Kind: kind, Mask: mask, Granting: true}
	object, err := m.deriver.DeriveObjectIdentity(obj)
	if err != nil {
		return nil, ctx, err
	}
	ctx.Identity, err = acl.ResolveSecurityIdentity(identity)
	if err != nil {
		return nil, ctx, err
	}
	rec, err := m.store.CreateOrFind(object)
	if err != nil {
		return nil, ctx, err
	}
	return rec, ctx, nil
}

func (m *implIAclManager) persist(rec *acl.AclRecord) error {
	if err := m.store.Persist(rec); err != nil {
		return fmt.Errorf("can't persist acl for %s/%s: %w", rec.Object.ClassName, rec.Object.ID, err)
	}
	if logger.IsVerbose() {
		logger.Verbose("acl persisted:", rec.Object.ClassName+"/"+rec.Object.ID,
			"object aces:", len(rec.ObjectAces), "class aces:", len(rec.ClassAces))
	}
	return nil
}

type implIIdentityKeyDeriver struct{}

func (implIIdentityKeyDeriver) DeriveObjectIdentity(obj interface{}) (acl.ObjectIdentity, error) {
	switch v := obj.(type) {
	case acl.ObjectIdentity:
		if len(v.ClassName) > 0 {
			return v, nil
		}
	case IIdentifiableObject:
		id, className := v.ObjectKey()
		if len(className) > 0 {
			return acl.ObjectIdentity{ID: id, ClassName: className}, nil
		}
	}
	return acl.ObjectIdentity{}, fmt.Errorf("%T: %w", obj, ErrObjectIdentityUnderivable)
}
