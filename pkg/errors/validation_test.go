package errors

import (
	"strings"
	"testing"
)

func TestValidatePlanName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "attic-office", false},
		{"valid with spaces", "Kitchen North Wall", false},
		{"empty", "", true},
		{"control char", "plan\x01name", true},
		{"too long", strings.Repeat("a", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlanName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlanName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWallName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false}, // unnamed walls are fine
		{"south", false},
		{"wall_2", false},
		{"north-east", false},
		{"2nd", true},   // must start with a letter
		{"so uth", true}, // no spaces
	}

	for _, tt := range tests {
		err := ValidateWallName(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateWallName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "plans/room.toml", false},
		{"absolute", "/tmp/room.toml", false},
		{"empty", "", true},
		{"traversal", "../../etc/passwd", true},
		{"null byte", "room\x00.toml", true},
		{"too long", strings.Repeat("a/", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
