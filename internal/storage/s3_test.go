package storage

import "testing"

func TestLogoObjectKey(t *testing.T) {
	tests := []struct {
		companyID string
		filename  string
		wantKey   string
		wantMime  string
	}{
		{"abc123", "apple.png", "logos/abc123.png", "image/png"},
		{"abc123", "logo.jpeg", "logos/abc123.jpeg", "image/jpeg"},
		{"abc123", "assets.v2/acme.logo.svg", "logos/abc123.svg", "image/svg+xml"},
	}

	for _, tt := range tests {
		key, mimeType := logoObjectKey(tt.companyID, tt.filename)
		if key != tt.wantKey {
			t.Fatalf("logoObjectKey(%q, %q) key = %q, want %q", tt.companyID, tt.filename, key, tt.wantKey)
		}
		if mimeType != tt.wantMime {
			t.Fatalf("logoObjectKey(%q, %q) mime = %q, want %q", tt.companyID, tt.filename, mimeType, tt.wantMime)
		}
	}
}
