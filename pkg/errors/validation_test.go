package errors

import (
	"testing"
)

func TestValidateDay(t *testing.T) {
	tests := []struct {
		name    string
		day     int
		wantErr bool
	}{
		{"first", 1, false},
		{"crates", 5, false},
		{"last", 25, false},

		{"zero", 0, true},
		{"negative", -3, true},
		{"after calendar", 26, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDay(tt.day)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDay(%d) error = %v, wantErr %v", tt.day, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDay) {
				t.Errorf("ValidateDay(%d) code = %v, want %v", tt.day, GetCode(err), ErrCodeInvalidDay)
			}
		})
	}
}

func TestValidatePart(t *testing.T) {
	for _, part := range []int{1, 2} {
		if err := ValidatePart(part); err != nil {
			t.Errorf("ValidatePart(%d) unexpected error: %v", part, err)
		}
	}
	for _, part := range []int{0, 3, -1} {
		if err := ValidatePart(part); err == nil {
			t.Errorf("ValidatePart(%d) should fail", part)
		}
	}
}

func TestValidateInputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "inputs/day5.txt", false},
		{"absolute", "/tmp/day5.txt", false},
		{"stdin", "-", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 5000)), true},
		{"null byte", "day\x005.txt", true},
		{"newline", "day5\n.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"yaml", false},
		{"xml", true},
		{"JSON", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateOutputFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}
