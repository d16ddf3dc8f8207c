// This file is part of efibootvars
// Copyright 2022 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/canonical/efibootvars/bootvars"
)

var log = logrus.New()

var efivarfsPath string

var rootCmd = &cobra.Command{
	Use:           "bootvarsctl",
	Short:         "View and edit the UEFI boot configuration variables",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if efivarfsPath != "" {
			bootvars.UseEFIVariables(bootvars.NewFilesystemEFIVariables(afero.NewOsFs(), efivarfsPath))
		}
	},
}

var bootNextCmd = &cobra.Command{
	Use:   "bootnext [bootnum]",
	Short: "View or edit the UEFI BootNext variable",
	Long: "By default, prints the value of BootNext. To edit, provide a " +
		"boot entry in hexadecimal form (e.g. 001F).",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return bootvars.SetBootNext(args[0])
		}

		value, ok, err := bootvars.GetBootNext()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("BootNext: not set.")
			return nil
		}
		fmt.Printf("BootNext: %s\n", bootvars.FormatEntryNumber(value))
		return nil
	},
}

var bootOrderCmd = &cobra.Command{
	Use:   "bootorder [bootnum]...",
	Short: "View or edit the UEFI boot order",
	Long: "By default, prints the current boot order. To edit, provide a " +
		"space-separated list of boot entries in hexadecimal form " +
		"(e.g. 001F 0020 000A).",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return bootvars.SetBootOrder(args)
		}

		order, err := bootvars.GetBootOrder()
		if err != nil {
			return err
		}
		fmt.Println(bootvars.FormatBootOrder(order))
		return nil
	},
}

var bootEntriesCmd = &cobra.Command{
	Use:   "bootentries",
	Short: "Print UEFI boot entries with their description",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := bootvars.ListBootEntries()
		fmt.Println("Boot entries:")
		for _, entry := range entries {
			fmt.Printf("%s: %s\n", entry.Name, entry.Description)
		}
		// Entries printed before a decode failure stand; the failure
		// itself is still reported.
		return err
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&efivarfsPath, "efivarfs", "",
		"operate on a directory of Name-GUID variable files instead of the system store")
	rootCmd.AddCommand(bootNextCmd, bootOrderCmd, bootEntriesCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
