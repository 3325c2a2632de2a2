package tr064

import "testing"

func TestNormalizeServiceName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare service name", "WLANConfiguration", "WLANConfiguration1"},
		{"colon notation", "WLANConfiguration:2", "WLANConfiguration2"},
		{"already numbered", "WLANConfiguration2", "WLANConfiguration2"},
		{"colon notation for first instance", "WANIPConnection:1", "WANIPConnection1"},
		{"single word", "Hosts", "Hosts1"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeServiceName(tt.input); got != tt.want {
				t.Errorf("NormalizeServiceName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
