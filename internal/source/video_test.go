package source

import "testing"

func TestNormalizeFPS(t *testing.T) {
	tests := []struct {
		name string
		fps  float64
		want float64
	}{
		{
			name: "zero falls back",
			fps:  0,
			want: FallbackFPS,
		},
		{
			name: "negative falls back",
			fps:  -1,
			want: FallbackFPS,
		},
		{
			name: "positive rate kept",
			fps:  29.97,
			want: 29.97,
		},
		{
			name: "low but valid rate kept",
			fps:  1,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeFPS(tt.fps); got != tt.want {
				t.Errorf("normalizeFPS(%g) = %g, want %g", tt.fps, got, tt.want)
			}
		})
	}
}
