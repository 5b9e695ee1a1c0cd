package validate

import (
	"testing"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid value", "Ada", false},
		{"value with spaces", "Ada Lovelace", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required("name", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Required(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"a@b.com", false},
		{"first.last@sub.example.org", false},
		{"", true},
		{"nope", true},
		{"@b.com", true},
		{"a@", true},
		{"a@nodot", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := Email(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Email(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2024-01-31", false},
		{"", false}, // optional
		{"31-01-2024", true},
		{"2024-13-01", true},
		{"yesterday", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := Date(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Date(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"08:00", false},
		{"23:59:59", false},
		{"8am", true},
		{"25:00", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := TimeOfDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("TimeOfDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestOTP(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"123456", false},
		{"000000", false},
		{"12345", true},
		{"1234567", true},
		{"12345a", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := OTP(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("OTP(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
