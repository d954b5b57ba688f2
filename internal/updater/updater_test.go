package updater

import "testing"

func TestIsNewer(t *testing.T) {
	tests := []struct {
		current, latest string
		want            bool
		wantErr         bool
	}{
		{"v0.3.0", "v0.4.0", true, false},
		{"v0.3.0", "0.3.0", false, false},
		{"v0.3.0", "v0.2.9", false, false},
		{"v0.3.0", "v1.0.0-rc.1", true, false},
		{"v0.3.0", "latest", false, true},
	}
	for _, tt := range tests {
		got, err := IsNewer(tt.current, tt.latest)
		if (err != nil) != tt.wantErr {
			t.Errorf("IsNewer(%q, %q) error = %v, wantErr %v", tt.current, tt.latest, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
		}
	}
}

func TestAssetName(t *testing.T) {
	if got := AssetName("windows", "amd64"); got != "pagecraft-windows-amd64.exe" {
		t.Errorf("AssetName(windows) = %q", got)
	}
	if got := AssetName("linux", "arm64"); got != "pagecraft-linux-arm64" {
		t.Errorf("AssetName(linux) = %q", got)
	}
}
