package tagscan

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{"Idle", Status{Phase: PhaseIdle}, ""},
		{"CreatingContext", Status{Phase: PhaseCreatingContext}, "Creating scanner"},
		{"Scanning", Status{Phase: PhaseScanning, CurrentPackage: 2, TotalPackages: 120}, "Creating new cache 3/120"},
		{"Gathering", Status{Phase: PhaseGatheringReferences}, "Transforming cache (gathering references)"},
		{"Applying", Status{Phase: PhaseApplyingReferences}, "Transforming cache (applying references)"},
		{"Writing", Status{Phase: PhaseWritingCache}, "Writing cache"},
		{"Loading", Status{Phase: PhaseLoadingCache}, "Loading cache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestProgressConcurrentPolling(t *testing.T) {
	setProgress(Status{Phase: PhaseIdle})
	defer setProgress(Status{Phase: PhaseIdle})

	var wg sync.WaitGroup

	// Writers mimic the build pipeline, readers mimic a UI polling it.
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				bumpScanProgress(1000)
			}
		}()
	}
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				s := Progress()
				_ = s.String()
			}
		}()
	}

	wg.Wait()

	s := Progress()
	assert.Equal(t, PhaseScanning, s.Phase)
	assert.Equal(t, 4000, s.CurrentPackage)
}
