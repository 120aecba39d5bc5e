package errors

import (
	"strings"
	"testing"
)

func TestValidatePeerID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "Simple", id: "Alice", wantErr: false},
		{name: "WithSpaceInside", id: "Alice B", wantErr: false},
		{name: "Unicode", id: "Алиса", wantErr: false},
		{name: "Empty", id: "", wantErr: true},
		{name: "LeadingSpace", id: " Alice", wantErr: true},
		{name: "TrailingSpace", id: "Alice ", wantErr: true},
		{name: "ControlCharacter", id: "Ali\x01ce", wantErr: true},
		{name: "NullByte", id: "Alice\x00", wantErr: true},
		{name: "Newline", id: "Alice\nBob", wantErr: true},
		{name: "TooLong", id: strings.Repeat("a", 129), wantErr: true},
		{name: "MaxLength", id: strings.Repeat("a", 128), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePeerID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePeerID(%q) err = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPeer) {
				t.Errorf("err = %v, want code %s", err, ErrCodeInvalidPeer)
			}
		})
	}
}

func TestValidateWeight(t *testing.T) {
	for _, w := range []int{1, 2, 100} {
		if err := ValidateWeight(w); err != nil {
			t.Errorf("ValidateWeight(%d) = %v, want nil", w, err)
		}
	}
	for _, w := range []int{0, -1, -100} {
		err := ValidateWeight(w)
		if err == nil {
			t.Errorf("ValidateWeight(%d) = nil, want error", w)
			continue
		}
		if !Is(err, ErrCodeInvalidWeight) {
			t.Errorf("err = %v, want code %s", err, ErrCodeInvalidWeight)
		}
	}
}
