/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package bbolt

type ParamsType struct {
	// Directory the per-store .db files live in
	DBDir string
}
