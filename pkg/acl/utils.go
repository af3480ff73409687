/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package acl

import (
	"fmt"
	"strings"
)

var maskBits = []struct {
	bit  Mask
	name string
}{
	{Mask_View, "view"},
	{Mask_Create, "create"},
	{Mask_Edit, "edit"},
	{Mask_Delete, "delete"},
	{Mask_Undelete, "undelete"},
	{Mask_Operator, "operator"},
	{Mask_Master, "master"},
	{Mask_Owner, "owner"},
}

func (m Mask) String() string {
	if m == Mask_IDDQD {
		return "iddqd"
	}
	if m == 0 {
		return "none"
	}
	names := []string{}
	rest := m
	for _, mb := range maskBits {
		if m&mb.bit != 0 {
			names = append(names, mb.name)
			rest &^= mb.bit
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// ParseMask parses a composed mask like "view|edit".
// "iddqd" is the all-bits sentinel
func ParseMask(s string) (m Mask, err error) {
	for _, name := range strings.Split(s, "|") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "iddqd" {
			m |= Mask_IDDQD
			continue
		}
		found := false
		for _, mb := range maskBits {
			if mb.name == name {
				m |= mb.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%s: %w", name, ErrUnknownPermissionName)
		}
	}
	return m, nil
}

func (k AceKindType) String() string {
	switch k {
	case AceKind_Object:
		return "object"
	case AceKind_Class:
		return "class"
	}
	return fmt.Sprintf("AceKindType(%d)", byte(k))
}

// ParseAceKind parses "object" or "class"
func ParseAceKind(s string) (AceKindType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "object":
		return AceKind_Object, nil
	case "class":
		return AceKind_Class, nil
	}
	return AceKind_null, fmt.Errorf("%s: %w", s, ErrUnknownAceKind)
}

func (si SecurityIdentity) String() string {
	switch si.Kind {
	case SecurityIdentityKind_User:
		return "user " + si.Key
	case SecurityIdentityKind_Role:
		return "role " + si.Role
	}
	return fmt.Sprintf("SecurityIdentity(%d)", byte(si.Kind))
}

func (ctx PermissionContext) String() string {
	verb := "grant"
	if !ctx.Granting {
		verb = "deny"
	}
	return fmt.Sprintf("%s %s to %s (%s)", verb, ctx.Mask, ctx.Identity, ctx.Kind)
}
