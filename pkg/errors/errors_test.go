package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPeer, "invalid peer id: %s", "x\x00y")

	if err.Code != ErrCodeInvalidPeer {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidPeer)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	want := "INVALID_PEER: invalid peer id: x\x00y"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "export network")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	want := "INTERNAL_ERROR: export network: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "MatchingCode",
			err:  New(ErrCodePeerNotFound, "no such peer"),
			code: ErrCodePeerNotFound,
			want: true,
		},
		{
			name: "DifferentCode",
			err:  New(ErrCodePeerNotFound, "no such peer"),
			code: ErrCodeFileNotFound,
			want: false,
		},
		{
			name: "WrappedInFmt",
			err:  fmt.Errorf("context: %w", New(ErrCodeInvalidManifest, "bad toml")),
			code: ErrCodeInvalidManifest,
			want: true,
		},
		{
			name: "PlainError",
			err:  stderrors.New("plain"),
			code: ErrCodeInternal,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnsupported, "nope")); got != ErrCodeUnsupported {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeUnsupported)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidWeight, "connection weight must be positive, got -1")
	if got := UserMessage(err); got != "connection weight must be positive, got -1" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage = %q, want raw error text", got)
	}
}
