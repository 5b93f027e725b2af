package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	d := threeStates(t)

	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"accepted", "aab", true},
		{"rejected", "ba", false},
		{"empty", "", false},
		{"outside alphabet", "abz", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, Run(d, tt.s), "Run(%v)", tt.s)
		})
	}
}
