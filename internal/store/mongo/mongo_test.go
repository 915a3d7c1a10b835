package mongo

import (
	"errors"
	"testing"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid hex", "507f1f77bcf86cd799439011", false},
		{"too short", "507f1f77", true},
		{"not hex", "zzzzzzzzzzzzzzzzzzzzzzzz", true},
		{"empty", "", true},
		{"uuid shaped", "cde4a587-9c2b-4d0a-8f31-000000000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidID) {
				t.Errorf("parseID(%q) error = %v, want ErrInvalidID", tt.id, err)
			}
		})
	}
}
