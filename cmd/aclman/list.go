/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/voedger/aclman/pkg/acl"
	"github.com/voedger/aclman/pkg/iaclstore"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the acl of an object",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store iaclstore.IAclStore) error {
				rec, err := store.Find(objectArg())
				if errors.Is(err, iaclstore.ErrAclNotFound) {
					fmt.Printf("no acl for %s/%s\n", className, objectID)
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Printf("acl %s for %s/%s\n", rec.ID, rec.Object.ClassName, rec.Object.ID)
				printAces("object aces", rec.ObjectAces)
				printAces("class aces", rec.ClassAces)
				return nil
			})
		},
	}
	addObjectFlags(cmd)
	return cmd
}

func printAces(caption string, aces acl.AceList) {
	if len(aces) == 0 {
		fmt.Printf("%s: none\n", caption)
		return
	}
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	fmt.Printf("%s:\n", caption)
	for i, ace := range aces {
		verdict := green("grant")
		if !ace.Granting {
			verdict = red("deny")
		}
		fmt.Printf("  %d: %s %s to %s\n", i, verdict, ace.Mask, ace.Identity)
	}
}
