package tagscan

import (
	"fmt"
	"sync"
)

// Phase identifies the active stage of a cache build or load.
type Phase int

const (
	// PhaseIdle means no build or load is in flight.
	PhaseIdle Phase = iota
	// PhaseCreatingContext covers hash-universe construction.
	PhaseCreatingContext
	// PhaseScanning covers the parallel package walk.
	PhaseScanning
	// PhaseGatheringReferences is the first transform pass.
	PhaseGatheringReferences
	// PhaseApplyingReferences is the second transform pass.
	PhaseApplyingReferences
	// PhaseWritingCache covers serialization and the disk write.
	PhaseWritingCache
	// PhaseLoadingCache covers reading an existing artifact.
	PhaseLoadingCache
)

// Status describes cache-build progress. CurrentPackage and TotalPackages
// are only meaningful during PhaseScanning.
type Status struct {
	Phase          Phase
	CurrentPackage int
	TotalPackages  int
}

func (s Status) String() string {
	switch s.Phase {
	case PhaseCreatingContext:
		return "Creating scanner"
	case PhaseScanning:
		return fmt.Sprintf("Creating new cache %d/%d", s.CurrentPackage+1, s.TotalPackages)
	case PhaseGatheringReferences:
		return "Transforming cache (gathering references)"
	case PhaseApplyingReferences:
		return "Transforming cache (applying references)"
	case PhaseWritingCache:
		return "Writing cache"
	case PhaseLoadingCache:
		return "Loading cache"
	default:
		return ""
	}
}

// progressCell is the single process-wide status cell. The build pipeline
// writes it at phase boundaries; any goroutine may poll it through
// Progress. The lock is held only for the copy, never across I/O or a scan.
var progressCell = struct {
	sync.RWMutex
	status Status
}{}

// Progress returns the current build/load status. Safe to call from any
// goroutine at any time, including during an active build.
func Progress() Status {
	progressCell.RLock()
	defer progressCell.RUnlock()
	return progressCell.status
}

func setProgress(s Status) {
	progressCell.Lock()
	progressCell.status = s
	progressCell.Unlock()
}

// bumpScanProgress increments the completed-package counter and returns the
// count before the increment.
func bumpScanProgress(total int) int {
	progressCell.Lock()
	defer progressCell.Unlock()

	current := 0
	if progressCell.status.Phase == PhaseScanning {
		current = progressCell.status.CurrentPackage
	}
	progressCell.status = Status{
		Phase:          PhaseScanning,
		CurrentPackage: current + 1,
		TotalPackages:  total,
	}
	return current
}
