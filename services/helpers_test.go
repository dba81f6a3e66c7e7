package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankKeyBeats(t *testing.T) {
	tests := []struct {
		name string
		a, b rankKey
		want bool
	}{
		{"more points wins", rankKey{6, 0, 1}, rankKey{4, 5, 9}, true},
		{"fewer points loses", rankKey{3, 9, 9}, rankKey{4, 0, 0}, false},
		{"goal difference breaks points tie", rankKey{6, 3, 1}, rankKey{6, 2, 9}, true},
		{"goals for breaks difference tie", rankKey{6, 3, 5}, rankKey{6, 3, 4}, true},
		{"full tie beats nothing", rankKey{6, 3, 5}, rankKey{6, 3, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.beats(tt.b))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, round2(100.0/3.0))
	assert.Equal(t, 66.67, round2(200.0/3.0))
	assert.Equal(t, 1.25, round2(1.25))
	assert.Equal(t, 0.0, round2(0))
	assert.Equal(t, 2.0, round2(1.995))
}
