/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	_ "embed"
	"os"

	"github.com/untillpro/goutils/cobrau"
	"github.com/untillpro/goutils/logger"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"aclman",
		"Object/class ACL management utility",
		args,
		ver,
		newGrantCmd(),
		newRevokeCmd(),
		newRevokeAllCmd(),
		newDefaultsCmd(),
		newDeleteCmd(),
		newListCmd(),
	)
	rootCmd.PersistentFlags().StringVar(&dbDir, "db-dir", ".", "Directory the store .db files live in")
	rootCmd.PersistentFlags().StringVar(&storeName, "store", "aclman", "Store name")
	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
