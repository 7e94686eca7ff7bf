// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"
)

func TestConfig_BranchLimit(t *testing.T) {
	tests := []struct {
		name string
		fold FoldConfig
		want int
	}{
		{
			name: "default is unbounded",
			fold: FoldConfig{},
			want: 0,
		},
		{
			name: "serial forces one branch at a time",
			fold: FoldConfig{Serial: true, BranchLimit: 3},
			want: 1,
		},
		{
			name: "explicit limit passes through",
			fold: FoldConfig{BranchLimit: 2},
			want: 2,
		},
		{
			name: "negative limit clamps to unbounded",
			fold: FoldConfig{BranchLimit: -4},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{Fold: tt.fold}

			if got := c.BranchLimit(); got != tt.want {
				t.Errorf("BranchLimit() = %d, want %d", got, tt.want)
			}
		})
	}
}
