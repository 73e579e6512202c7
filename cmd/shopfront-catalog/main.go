// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

// shopfront-catalog is the operator's read-only view of a catalog
// file: a styled table of every product, and a --validate mode that
// checks the invariants the service relies on.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/shopfront-foundation/shopfront/lib/catalog"
	"github.com/shopfront-foundation/shopfront/lib/process"
	"github.com/shopfront-foundation/shopfront/lib/version"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	var (
		catalogPath string
		validate    bool
		showVersion bool
	)
	pflag.StringVar(&catalogPath, "catalog", "", "path to the catalog JSON file")
	pflag.BoolVar(&validate, "validate", false, "check catalog invariants and exit")
	pflag.BoolVar(&showVersion, "version", false, "print version information and exit")
	pflag.Parse()

	if showVersion {
		fmt.Println("shopfront-catalog " + version.Info())
		return nil
	}
	if catalogPath == "" {
		return fmt.Errorf("--catalog is required")
	}

	store, err := catalog.Open(catalogPath, nil)
	if err != nil {
		return err
	}
	items := store.List()

	if validate {
		problems := validateItems(items)
		for _, problem := range problems {
			fmt.Fprintln(os.Stderr, "invalid:", problem)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d invariant violation(s) in %s", len(problems), catalogPath)
		}
		fmt.Printf("%s: %d item(s), all invariants hold\n", catalogPath, len(items))
		return nil
	}

	fmt.Print(renderTable(items))
	return nil
}
