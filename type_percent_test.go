package cookiecost

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		ratio Quantity
		want  string
	}{
		{Q(0), "0.0%"},
		{Q(0.25), "25.0%"},
		{Q(1), "100.0%"},
		{Q(1).Div(Q(3)), "33.3%"},
	}
	for _, tc := range tests {
		if got := PercentOf(tc.ratio).String(); got != tc.want {
			t.Errorf("PercentOf(%v) = %q, want %q", tc.ratio, got, tc.want)
		}
	}
	if !PercentOf(Q(0.5)).Equal(50) {
		t.Errorf("PercentOf(0.5) != 50")
	}
}
