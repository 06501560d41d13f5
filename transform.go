package tagscan

import "github.com/hupe1980/tagscan/tag"

// Transform enriches the flat cache with reverse references: after it
// returns, every scan result lists the entries whose forward scan contained
// a match for it.
//
// References are discovered forward (entry X contains identifier Y) but
// consumed backward (Y is referenced by X), so this runs in two passes: the
// gather pass builds a complete reverse-adjacency map, the apply pass hands
// each entry its own list. No list is read before the gather pass has seen
// every referencer.
//
// A referencer appears in a list once per reference site, so duplicates are
// meaningful: they count multiplicity. Unresolvable 64-bit matches point
// outside the hash universe and are dropped without diagnostics.
func Transform(cache TagCache, hash64Table map[uint64]tag.TagHash) TagCache {
	setProgress(Status{Phase: PhaseGatheringReferences})

	referencers := make(map[tag.TagHash][]tag.TagHash)
	for referencer, result := range cache {
		for _, m := range result.FileHashes {
			referencers[m.Hash] = append(referencers[m.Hash], referencer)
		}

		for _, m := range result.FileHashes64 {
			if t32, ok := hash64Table[uint64(m.Hash)]; ok {
				referencers[t32] = append(referencers[t32], referencer)
			}
		}
	}

	setProgress(Status{Phase: PhaseApplyingReferences})

	for h, result := range cache {
		if refs, ok := referencers[h]; ok {
			result.References = refs
		}
	}

	return cache
}
