package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "tagscan",
		Short: "Inspect package tag cache artifacts",
	}

	root.PersistentFlags().String("cache", "", "path to the cache artifact (overrides config)")
	root.PersistentFlags().String("config", "", "path to a TOML config file")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newRefsCmd())
	root.AddCommand(newTopCmd())
	root.AddCommand(newNamesCmd())
	root.AddCommand(newVerifyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
