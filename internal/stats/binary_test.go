package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryAggregator_RecordTallies(t *testing.T) {
	b := NewBinary()
	b.Record(true)
	b.Record(false)
	b.Record(true)

	snap := b.Snapshot()
	assert.Equal(t, 3, snap.Total)
	assert.Equal(t, 2, snap.OfInterest)
}

func TestBinaryAggregator_Reset(t *testing.T) {
	b := NewBinary()
	b.Record(true)
	b.Reset()

	snap := b.Snapshot()
	assert.Zero(t, snap.Total)
	assert.Zero(t, snap.OfInterest)
}

func TestBinaryAggregator_PercentageOfEmptyIsZero(t *testing.T) {
	b := NewBinary()
	assert.Zero(t, b.Snapshot().Percentage())
}

func TestBinaryAggregator_PercentageReflectsRatio(t *testing.T) {
	b := NewBinary()
	b.Record(true)
	b.Record(true)
	b.Record(true)
	b.Record(false)

	assert.InDelta(t, 75.0, b.Snapshot().Percentage(), 1e-9)
}

func TestBinaryAggregator_ConcurrentRecordIsRaceFree(t *testing.T) {
	b := NewBinary()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b.Record(n%2 == 0)
		}(i)
	}
	wg.Wait()

	snap := b.Snapshot()
	assert.Equal(t, 100, snap.Total)
	assert.Equal(t, 50, snap.OfInterest)
}
