package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFrozenIntSet(t *testing.T) {
	tests := []struct {
		name       string
		values     []int
		state      int
		hashCode   uint64
		wantValues []int
	}{
		{
			name:       "Normal case",
			values:     []int{1, 2, 3},
			state:      0,
			hashCode:   123456789,
			wantValues: []int{1, 2, 3},
		},
		{
			name:       "Nil slice",
			values:     nil,
			state:      -1,
			hashCode:   0,
			wantValues: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFrozenIntSet(tt.values, tt.hashCode, tt.state)
			assert.Equal(t, tt.wantValues, got.GetArray())
			assert.Equal(t, len(tt.wantValues), got.Size())
			assert.Equal(t, tt.state, got.State())
			assert.Equal(t, tt.hashCode, got.Hash())
		})
	}
}

func TestFrozenIntSet_Equals(t *testing.T) {
	values := []int{1, 2, 3}
	tests := []struct {
		name     string
		f        *FrozenIntSet
		other    Hashable
		expected bool
	}{
		{
			name:     "both nil",
			f:        nil,
			other:    (*FrozenIntSet)(nil),
			expected: true,
		},
		{
			name:     "f not nil, other nil",
			f:        NewFrozenIntSet(nil, hashInts(nil), 0),
			other:    nil,
			expected: false,
		},
		{
			name:     "f not nil, other typed nil",
			f:        NewFrozenIntSet(nil, hashInts(nil), 0),
			other:    (*StateSet)(nil),
			expected: false,
		},
		{
			name:     "different type",
			f:        NewFrozenIntSet(values, hashInts(values), 1),
			other:    AnotherKey(hashInts(values)),
			expected: false,
		},
		{
			name:     "values differ",
			f:        NewFrozenIntSet(values, hashInts(values), 1),
			other:    NewFrozenIntSet([]int{1, 2}, hashInts([]int{1, 2}), 1),
			expected: false,
		},
		{
			name:     "same hash, values differ",
			f:        NewFrozenIntSet([]int{1, 2, 3}, 123, 1),
			other:    NewFrozenIntSet([]int{1, 2, 4}, 123, 1),
			expected: false,
		},
		{
			name:     "state differs",
			f:        NewFrozenIntSet(values, hashInts(values), 1),
			other:    NewFrozenIntSet(values, hashInts(values), 2),
			expected: true,
		},
		{
			name:     "all fields equal",
			f:        NewFrozenIntSet(values, hashInts(values), 1),
			other:    NewFrozenIntSet(values, hashInts(values), 1),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.f.Equals(tt.other))
		})
	}
}

func TestStateSet(t *testing.T) {
	s := NewStateSet(10)
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, []int{}, s.GetArray())

	s.Add(7)
	s.Add(2)
	s.Add(7)
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))
	assert.Equal(t, []int{2, 7}, s.GetArray())
	assert.Equal(t, hashInts([]int{2, 7}), s.Hash())

	other := NewStateSet(10)
	other.Add(4)
	other.Add(2)
	s.AddAll(other)
	assert.Equal(t, []int{2, 4, 7}, s.GetArray())
	assert.Equal(t, hashInts([]int{2, 4, 7}), s.Hash())

	frozen := s.Freeze(5)
	assert.Equal(t, 5, frozen.State())
	assert.True(t, frozen.Equals(s))
	assert.True(t, s.Equals(frozen))

	s.Reset()
	assert.Equal(t, 0, s.Size())
	assert.False(t, frozen.Equals(s))
	assert.Equal(t, []int{2, 4, 7}, frozen.GetArray())
}

func TestHashInts_OrderIndependent(t *testing.T) {
	assert.Equal(t, hashInts([]int{3, 1, 2}), hashInts([]int{1, 2, 3}))
	assert.NotEqual(t, hashInts([]int{1}), hashInts([]int{1, 1}))
}
