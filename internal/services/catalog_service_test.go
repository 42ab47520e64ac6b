package services

import (
	"errors"
	"testing"
)

func TestFormatCutOff(t *testing.T) {
	tests := []struct {
		day, timeOfDay, want string
	}{
		{"Friday", "14:00:00", "Friday at 2:00 PM"},
		{"Friday", "14:00", "Friday at 2:00 PM"},
		{"Monday", "09:30:00", "Monday at 9:30 AM"},
		{"Wednesday", "00:15:00", "Wednesday at 12:15 AM"},
		{"Friday", "whenever", "Friday at whenever"},
	}
	for _, tt := range tests {
		if got := FormatCutOff(tt.day, tt.timeOfDay); got != tt.want {
			t.Errorf("FormatCutOff(%q, %q) = %q, want %q", tt.day, tt.timeOfDay, got, tt.want)
		}
	}
}

func TestGetItemByIDNotFound(t *testing.T) {
	svc := NewCatalogService(newFakeItemRepo())
	if _, err := svc.GetItemByID(42); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("got %v, want ErrItemNotFound", err)
	}
}
