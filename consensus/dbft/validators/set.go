// Package validators implements the Validator Set View (spec component
// 4.A): a snapshot of the ordered validator public keys for the pending
// height, and the quorum arithmetic derived from it.
package validators

import "github.com/OnBlockIO/neo-modules/consensus/dbft/ledger"

// Set is an ordered, immutable validator-key list plus the derived F/M
// quorum constants (spec invariant 1: 0 <= F < N/3, M = N - F).
type Set struct {
	keys []ledger.PublicKey
	f    int
	m    int
}

// New builds a Set from an ordered key list.
func New(keys []ledger.PublicKey) *Set {
	n := len(keys)
	f := (n - 1) / 3
	return &Set{
		keys: append([]ledger.PublicKey(nil), keys...),
		f:    f,
		m:    n - f,
	}
}

// FromLedger refreshes the validator set for the pending height H+1,
// honoring ShouldRefreshCommittee as spec §4.A describes: a binary,
// deterministic decision the core does not negotiate.
func FromLedger(l ledger.Ledger, committeeSize int) (*Set, error) {
	height := l.CurrentIndex()
	var keys []ledger.PublicKey
	var err error
	if l.ShouldRefreshCommittee(height+1, committeeSize) {
		keys, err = l.ComputeNextBlockValidators()
	} else {
		keys, err = l.GetNextBlockValidators()
	}
	if err != nil {
		return nil, err
	}
	return New(keys), nil
}

// N is the committee size.
func (s *Set) N() int { return len(s.keys) }

// F is the maximum tolerated faulty validator count.
func (s *Set) F() int { return s.f }

// M is the quorum size (N - F).
func (s *Set) M() int { return s.m }

// Keys returns the ordered validator key list; callers must not mutate
// the returned slice.
func (s *Set) Keys() []ledger.PublicKey { return s.keys }

// IndexOf returns the committee index of pub, or -1 if absent.
func (s *Set) IndexOf(pub ledger.PublicKey) int {
	for i, k := range s.keys {
		if k == pub {
			return i
		}
	}
	return -1
}

// PriorityPrimary returns the priority-primary index for (height, view):
// (H - V) mod N, per spec invariant 3.
func (s *Set) PriorityPrimary(height uint32, view byte) int {
	return mod(int(height)-int(view), s.N())
}

// FallbackPrimary returns the fallback-primary index: (H - V - 1) mod N,
// meaningful only while V = 0 per spec invariant 3.
func (s *Set) FallbackPrimary(height uint32, view byte) int {
	return mod(int(height)-int(view)-1, s.N())
}

func mod(a, n int) int {
	if n == 0 {
		return 0
	}
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
