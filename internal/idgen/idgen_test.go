package idgen

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_FixedClockStillUnique(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	g := New("APT", func() time.Time { return fixed })

	assert.Equal(t, "APT-1700000000000", g.Next())
	assert.Equal(t, "APT-1700000000001", g.Next())
	assert.Equal(t, "APT-1700000000002", g.Next())
}

func TestNext_Concurrent(t *testing.T) {
	g := NewAppointmentIDs()

	var (
		mu   sync.Mutex
		seen = map[string]struct{}{}
		wg   sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Next()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, 50)
}
