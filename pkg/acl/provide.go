/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package acl

func ProvidePermissionEngine() IPermissionEngine {
	return implIPermissionEngine{}
}
