package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/tagscan/persistence"
	"github.com/hupe1980/tagscan/references"
	"github.com/hupe1980/tagscan/tag"
)

func loadCache(cmd *cobra.Command) (tag.Cache, string, error) {
	path, err := resolveCachePath(cmd)
	if err != nil {
		return nil, "", err
	}
	cache, err := persistence.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", path, err)
	}
	return cache, path, nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print summary statistics for a cache artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, path, err := loadCache(cmd)
			if err != nil {
				return err
			}

			var hashes, hashes64, strings, refs int
			for _, r := range cache {
				hashes += len(r.FileHashes)
				hashes64 += len(r.FileHashes64)
				strings += len(r.StringHashes)
				refs += len(r.References)
			}

			fmt.Printf("artifact:        %s\n", path)
			fmt.Printf("entries:         %d\n", len(cache))
			fmt.Printf("tag matches:     %d\n", hashes)
			fmt.Printf("tag64 matches:   %d\n", hashes64)
			fmt.Printf("string matches:  %d\n", strings)
			fmt.Printf("reference edges: %d\n", refs)
			return nil
		},
	}
}

func newRefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refs <hash>",
		Short: "List the entries that reference the given tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 16, 32)
			if err != nil {
				return fmt.Errorf("parse hash %q: %w", args[0], err)
			}
			h := tag.TagHash(uint32(v))

			cache, _, err := loadCache(cmd)
			if err != nil {
				return err
			}

			r, ok := cache[h]
			if !ok {
				return fmt.Errorf("tag %s not in cache", h)
			}

			for _, ref := range r.References {
				fmt.Printf("%s  pkg=%04X entry=%d\n", ref, ref.PkgID(), ref.EntryIndex())
			}
			fmt.Printf("%d reference(s)\n", len(r.References))
			return nil
		},
	}
}

func newTopCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the most-referenced entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, _, err := loadCache(cmd)
			if err != nil {
				return err
			}

			type ranked struct {
				hash tag.TagHash
				refs int
			}
			all := make([]ranked, 0, len(cache))
			for h, r := range cache {
				if len(r.References) > 0 {
					all = append(all, ranked{hash: h, refs: len(r.References)})
				}
			}
			sort.Slice(all, func(a, b int) bool {
				if all[a].refs != all[b].refs {
					return all[a].refs > all[b].refs
				}
				return all[a].hash < all[b].hash
			})

			if n < len(all) {
				all = all[:n]
			}
			for _, e := range all {
				fmt.Printf("%s  %6d refs\n", e.hash, e.refs)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 20, "number of entries to list")
	return cmd
}

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the known type-tag names",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := references.Names()

			values := make([]uint32, 0, len(names))
			for v := range names {
				values = append(values, v)
			}
			sort.Slice(values, func(a, b int) bool { return values[a] < values[b] })

			for _, v := range values {
				fmt.Printf("%08X  %s\n", v, names[v])
			}
			return nil
		},
	}
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Validate an artifact and cross-check its reference graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, path, err := loadCache(cmd)
			if err != nil {
				return err
			}

			// Every recorded reference edge must point at an entry
			// that is itself in the cache.
			var dangling int
			for _, r := range cache {
				for _, ref := range r.References {
					if _, ok := cache[ref]; !ok {
						dangling++
					}
				}
			}

			fmt.Printf("artifact %s: %d entries, %d dangling reference(s)\n", path, len(cache), dangling)
			if dangling > 0 {
				return fmt.Errorf("%d dangling reference(s)", dangling)
			}
			return nil
		},
	}
}
