/* diff_test.go
 * Contains unit tests for diff.go functions
 * Authors: Zachary Bower
 */

package diff

import (
	"testing"

	"bracket-engine/api/team"

	"github.com/stretchr/testify/assert"
)

// TestLedger_DefaultZero tests that unseen teams default to zero
func TestLedger_DefaultZero(t *testing.T) {
	l := NewLedger()
	teamA := team.New(1, "Team A")

	assert.Equal(t, 0, l.Get(teamA))
}

// TestLedger_SetAdd tests basic counter updates
func TestLedger_SetAdd(t *testing.T) {
	l := NewLedger()
	teamA := team.New(1, "Team A")

	l.Set(teamA, 3)
	assert.Equal(t, 3, l.Get(teamA))

	l.Add(teamA, -5)
	assert.Equal(t, -2, l.Get(teamA))
}

// TestLedger_Apply tests merging another ledger additively
func TestLedger_Apply(t *testing.T) {
	teamA := team.New(1, "Team A")
	teamB := team.New(2, "Team B")

	l := NewLedger()
	l.Set(teamA, 2)

	other := NewLedger()
	other.Set(teamA, 3)
	other.Set(teamB, -1)

	l.Apply(other)
	assert.Equal(t, 5, l.Get(teamA))
	assert.Equal(t, -1, l.Get(teamB))
}

// TestLedger_CopyIndependence tests that a copy does not share state
func TestLedger_CopyIndependence(t *testing.T) {
	teamA := team.New(1, "Team A")
	l := NewLedger()
	l.Set(teamA, 4)

	cp := l.Copy()
	cp.Add(teamA, 1)

	assert.Equal(t, 4, l.Get(teamA))
	assert.Equal(t, 5, cp.Get(teamA))
}

// TestLedger_Reset tests clearing counters
func TestLedger_Reset(t *testing.T) {
	teamA := team.New(1, "Team A")
	l := NewLedger()
	l.Set(teamA, 4)

	l.Reset()
	assert.Equal(t, 0, l.Get(teamA))
}

// TestLedger_SortKey tests that a ledger contributes its counter as a sort key
func TestLedger_SortKey(t *testing.T) {
	teamA := team.New(1, "Team A")
	l := NewLedger()
	l.Set(teamA, -3)

	key, err := l.SortKey(teamA)
	assert.NoError(t, err)
	assert.Equal(t, -3, key)
}

// TestDifferentials_AddRaw tests that the four buckets stay independent
func TestDifferentials_AddRaw(t *testing.T) {
	teamA := team.New(1, "Team A")
	d := New()

	d.AddRaw(teamA, 2, 5, 1, -1)

	assert.Equal(t, 2, d.RealGame.Get(teamA))
	assert.Equal(t, 5, d.VirtualGame.Get(teamA))
	assert.Equal(t, 1, d.RealSeries.Get(teamA))
	assert.Equal(t, -1, d.VirtualSeries.Get(teamA))
}

// TestDifferentials_Combine tests merging several differentials bucket by bucket
func TestDifferentials_Combine(t *testing.T) {
	teamA := team.New(1, "Team A")
	teamB := team.New(2, "Team B")

	total := New()
	first := New()
	first.AddRaw(teamA, 1, 1, 1, 1)
	second := New()
	second.AddRaw(teamA, 2, 0, 1, 0)
	second.AddRaw(teamB, -2, 0, -1, 0)

	total.Combine(first, second, nil)

	assert.Equal(t, 3, total.RealGame.Get(teamA))
	assert.Equal(t, 1, total.VirtualGame.Get(teamA))
	assert.Equal(t, 2, total.RealSeries.Get(teamA))
	assert.Equal(t, -2, total.RealGame.Get(teamB))
	assert.Equal(t, -1, total.RealSeries.Get(teamB))
}

// TestDifferentials_Copy tests that copied differentials do not share ledgers
func TestDifferentials_Copy(t *testing.T) {
	teamA := team.New(1, "Team A")
	d := New()
	d.AddRaw(teamA, 1, 1, 1, 1)

	cp := d.Copy()
	cp.AddRaw(teamA, 1, 1, 1, 1)

	assert.Equal(t, 1, d.RealGame.Get(teamA))
	assert.Equal(t, 2, cp.RealGame.Get(teamA))
}
