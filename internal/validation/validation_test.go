package validation

import (
	"errors"
	"testing"
)

func TestValidateSpan(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		end      int
		duration int
		wantErr  error
	}{
		{"single period", 1, 1, 1, nil},
		{"full range", 1, 10, 10, nil},
		{"inner span", 4, 8, 10, nil},
		{"start before first period", 0, 3, 10, ErrOutOfRange},
		{"negative start", -4, 3, 10, ErrOutOfRange},
		{"end after duration", 3, 11, 10, ErrOutOfRange},
		{"inverted", 5, 2, 10, ErrInvertedSpan},
		{"inverted and out of range reports range first", 12, 11, 10, ErrOutOfRange},
		{"zero duration", 1, 1, 0, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpan(tt.start, tt.end, tt.duration)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateSpan(%d, %d, %d) = %v, want nil", tt.start, tt.end, tt.duration, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateSpan(%d, %d, %d) = %v, want %v", tt.start, tt.end, tt.duration, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSpan_Exhaustive(t *testing.T) {
	for duration := 1; duration <= 6; duration++ {
		for start := -1; start <= duration+1; start++ {
			for end := -1; end <= duration+1; end++ {
				err := ValidateSpan(start, end, duration)
				valid := start >= 1 && start <= end && end <= duration
				if valid && err != nil {
					t.Errorf("ValidateSpan(%d, %d, %d) = %v, want nil", start, end, duration, err)
				}
				if !valid && err == nil {
					t.Errorf("ValidateSpan(%d, %d, %d) = nil, want error", start, end, duration)
				}
			}
		}
	}
}

func TestValidatePartial(t *testing.T) {
	if err := ValidatePartial(Unset, Unset, 5); err != nil {
		t.Errorf("blank span should be valid, got %v", err)
	}
	if err := ValidatePartial(2, Unset, 5); err != nil {
		t.Errorf("start-only span should be valid, got %v", err)
	}
	if err := ValidatePartial(Unset, 6, 5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("end-only span past duration = %v, want ErrOutOfRange", err)
	}
	if err := ValidatePartial(4, 3, 5); !errors.Is(err, ErrInvertedSpan) {
		t.Errorf("full inverted span = %v, want ErrInvertedSpan", err)
	}
}

func TestValidateDuration(t *testing.T) {
	if err := ValidateDuration(1); err != nil {
		t.Errorf("ValidateDuration(1) = %v, want nil", err)
	}
	if err := ValidateDuration(0); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("ValidateDuration(0) = %v, want ErrInvalidDuration", err)
	}
}
