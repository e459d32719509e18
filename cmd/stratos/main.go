// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// stratos is a debugging shell for the engine's extension core: it
// loads the ipnet extension the same way the engine would and exposes
// the CIDR casts and subnet functions on the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stratosdb/stratos/pkg/col/coldata"
	"github.com/stratosdb/stratos/pkg/sql/colexec/colexecbase"
	"github.com/stratosdb/stratos/pkg/sql/extension"
	"github.com/stratosdb/stratos/pkg/sql/exts/ipnet"
	"github.com/stratosdb/stratos/pkg/sql/sem/tree"
	"github.com/stratosdb/stratos/pkg/sql/typeext"
	"github.com/stratosdb/stratos/pkg/sql/types"
	"github.com/stratosdb/stratos/pkg/util/ipaddr"
)

var skipErrorDetails bool

func main() {
	root := &cobra.Command{
		Use:          "stratos",
		Short:        "debugging shell for the stratos extension core",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			colexecbase.SetSkipErrorDetailsDefault(skipErrorDetails)
			// The ipnet extension is linked in; loading it by name runs its
			// entry point against the process-wide registries.
			_, err := extension.NewLoader().Load(context.Background(), "ipnet")
			return err
		},
	}
	root.PersistentFlags().BoolVar(&skipErrorDetails, "skip-error-details", false,
		"suppress row-level error message detail")

	cidr := &cobra.Command{Use: "cidr", Short: "CIDR parsing and subnet math"}
	cidr.AddCommand(parseCmd(), rangeCmd(), containsCmd())

	ext := &cobra.Command{Use: "ext", Short: "extension loading"}
	ext.AddCommand(extLoadCmd())

	root.AddCommand(cidr, ext)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseCmd pushes the arguments through the vectorized string ->
// IPPREFIX -> string casts, demonstrating per-row error isolation.
func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <cidr>...",
		Short: "batch-parse CIDR strings through the IPPREFIX cast",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := len(args)
			input := coldata.NewMemColumn(types.String, n)
			for i, arg := range args {
				input.Bytes().SetString(i, arg)
			}

			op, _, err := typeext.Default.ResolveCast(types.String, ipnet.IPPrefixType)
			if err != nil {
				return err
			}
			evalCtx := colexecbase.NewEvalCtx()
			prefixes, err := op.CastInto(evalCtx, input, coldata.AllRows(n), ipnet.IPPrefixType)
			if err != nil {
				return err
			}
			strs, err := op.CastFrom(colexecbase.NewEvalCtx(), prefixes, coldata.AllRows(n), types.String)
			if err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if rowErr := evalCtx.RowError(i); rowErr != nil {
					fmt.Printf("%s\terror: %v\n", args[i], rowErr)
					continue
				}
				fmt.Printf("%s\t%s\n", args[i], strs.Bytes().GetString(i))
			}
			return nil
		},
	}
}

func rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <cidr>",
		Short: "print the [min, max] address range of a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ipaddr.ParseIPPrefix(args[0])
			if err != nil {
				return err
			}
			res, err := tree.FunDefs.Call("ip_subnet_range",
				tree.Datums{ipnet.DIPPrefix{Prefix: p}})
			if err != nil {
				return err
			}
			fmt.Println(res)
			return nil
		},
	}
}

func containsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <outer-cidr> <address-or-cidr>",
		Short: "test whether an address or network falls inside a network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outer, err := ipaddr.ParseIPPrefix(args[0])
			if err != nil {
				return err
			}
			var inner tree.Datum
			if strings.Contains(args[1], "/") {
				p, err := ipaddr.ParseIPPrefix(args[1])
				if err != nil {
					return err
				}
				inner = ipnet.DIPPrefix{Prefix: p}
			} else {
				ip, err := ipaddr.ParseIP(args[1])
				if err != nil {
					return err
				}
				inner = ipnet.DIPAddr{IP: ip}
			}
			res, err := tree.FunDefs.Call("is_subnet_of",
				tree.Datums{ipnet.DIPPrefix{Prefix: outer}, inner})
			if err != nil {
				return err
			}
			fmt.Println(res)
			return nil
		},
	}
}

func extLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <library>...",
		Short: "load extension libraries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := extension.NewLoader()
			for _, path := range args {
				rec, err := loader.Load(context.Background(), path)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n", rec.ID, rec.Path)
			}
			return nil
		},
	}
}
