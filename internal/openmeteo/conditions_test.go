package openmeteo

import "testing"

func TestDescribe(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{3, "Overcast"},
		{61, "Slight rain"},
		{95, "Thunderstorm"},
		{99, "Thunderstorm with heavy hail"},
		{4, "Unknown (4)"},
		{-1, "Unknown (-1)"},
		{12345, "Unknown (12345)"},
	}

	for _, tt := range tests {
		if got := Describe(tt.code); got != tt.want {
			t.Errorf("Describe(%d): expected %q, got %q", tt.code, tt.want, got)
		}
	}
}
