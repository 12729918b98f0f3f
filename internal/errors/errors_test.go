package errors

import (
	"fmt"
	"testing"
)

func TestProtocolError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *ProtocolError
		want string
	}{
		{
			name: "invalid tag",
			err:  Protocolf("invalid connection type %d", 7),
			want: "protocol error: invalid connection type 7",
		},
		{
			name: "bad frame",
			err:  &ProtocolError{Msg: "frame payload is not valid UTF-8"},
			want: "protocol error: frame payload is not valid UTF-8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemoteError_Format(t *testing.T) {
	err := &RemoteError{Status: 2}
	want := "an error has occurred in the app (status 2)"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLaunchError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("exec: \"am\": executable file not found in $PATH")
	err := &LaunchError{Cmd: "am broadcast", Err: inner}
	if !Is(err, inner) {
		t.Error("should unwrap to inner error")
	}
	want := "launch am broadcast: " + inner.Error()
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAs_PicksOutType(t *testing.T) {
	var wrapped error = fmt.Errorf("handler: %w", &RemoteError{Status: 1})
	var re *RemoteError
	if !As(wrapped, &re) {
		t.Fatal("As should find RemoteError through wrapping")
	}
	if re.Status != 1 {
		t.Errorf("Status = %d, want 1", re.Status)
	}
}
