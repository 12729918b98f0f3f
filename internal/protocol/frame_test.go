package protocol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/okc-agents/okgpg/internal/errors"
)

func TestFrame_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"short ascii", "hello world"},
		{"path", "/data/data/com.termux/files/home/secret.gpg"},
		{"stdin sentinel", "-"},
		{"multibyte utf8", "wärnung: schlüssel läuft ab ✓"},
		{"max length", strings.Repeat("x", MaxFrameLen)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteFrame(&buf, tt.payload); err != nil {
				t.Fatalf("WriteFrame: %v", err)
			}
			got, err := ReadFrame(&buf)
			if err != nil {
				t.Fatalf("ReadFrame: %v", err)
			}
			if got != tt.payload {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(tt.payload))
			}
		})
	}
}

func TestWriteFrame_TooLong(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFrame(&buf, strings.Repeat("x", MaxFrameLen+1))
	if !errors.Is(err, ErrFrameTooLong) {
		t.Fatalf("err = %v, want ErrFrameTooLong", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an oversized payload")
	}
}

func TestReadFrame_InvalidUTF8(t *testing.T) {
	// Declared length matches the payload, but the bytes are garbage.
	buf := bytes.NewBuffer([]byte{0x00, 0x02, 0xff, 0xfe})
	_, err := ReadFrame(buf)
	var pe *errors.ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want ProtocolError", err)
	}
}

func TestReadFrame_ShortPayload(t *testing.T) {
	// Length says 5 bytes but the stream ends after 2.
	buf := bytes.NewBuffer([]byte{0x00, 0x05, 'h', 'i'})
	_, err := ReadFrame(buf)
	if err == nil {
		t.Fatal("expected an error for a truncated payload")
	}
	var pe *errors.ProtocolError
	if errors.As(err, &pe) {
		t.Errorf("truncation is an I/O error, not a protocol error: %v", err)
	}
}

func TestReadFrame_NoLength(t *testing.T) {
	if _, err := ReadFrame(bytes.NewBuffer(nil)); err == nil {
		t.Fatal("expected an error on an empty stream")
	}
}

func TestReadConnType(t *testing.T) {
	tests := []struct {
		name    string
		tag     byte
		want    ConnType
		wantErr bool
	}{
		{"control", 0, ConnControl, false},
		{"input", 1, ConnInput, false},
		{"output", 2, ConnOutput, false},
		{"unknown low", 3, 0, true},
		{"unknown high", 255, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadConnType(bytes.NewBuffer([]byte{tt.tag}))
			if tt.wantErr {
				var pe *errors.ProtocolError
				if !errors.As(err, &pe) {
					t.Fatalf("err = %v, want ProtocolError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadConnType: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConnType_String(t *testing.T) {
	if got := ConnControl.String(); got != "control" {
		t.Errorf("got %q", got)
	}
	if got := ConnType(9).String(); got != "unknown(9)" {
		t.Errorf("got %q", got)
	}
}

func TestReadStatus(t *testing.T) {
	status, err := ReadStatus(bytes.NewBuffer([]byte{0x02}))
	if err != nil {
		t.Fatal(err)
	}
	if status != 2 {
		t.Errorf("status = %d, want 2", status)
	}
	if _, err := ReadStatus(bytes.NewBuffer(nil)); err == nil {
		t.Error("expected an error on an empty stream")
	}
}
