package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseBootstrap,
				Kind:   KindOutOfOrder,
				State:  "awaiting_puzzle_data",
				Event:  "canvas_ready",
				Detail: "duplicate canvas",
			},
			contains: []string{"[bootstrap]", "out_of_order_event", "awaiting_puzzle_data", "canvas_ready", "duplicate canvas"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseChannel,
				Kind:  KindChannelFull,
			},
			contains: []string{"[channel]", "channel_full"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseAdapter,
				Kind:   KindLoadFailed,
				Detail: "fetch rejected",
				Cause:  errors.New("network unreachable"),
			},
			contains: []string{"[adapter]", "load_failed", "fetch rejected", "caused by", "network unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want substring %q", msg, want)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	full := ChannelFull(64)

	if !errors.Is(full, ChannelFull(0)) {
		t.Error("expected channel_full errors to match regardless of capacity")
	}
	if errors.Is(full, OutOfOrder("ready", "load_failed")) {
		t.Error("expected different kinds not to match")
	}
	if errors.Is(full, errors.New("channel_full")) {
		t.Error("expected plain errors not to match")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("canvas element not found")
	err := LoadFailed("canvas lookup", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap did not return the cause")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseSession, KindNotInitialized).
		State("ready").
		Event("external_command").
		Detail("session missing for verb %q", "u").
		Cause(cause).
		Value("u").
		Build()

	if err.Phase != PhaseSession || err.Kind != KindNotInitialized {
		t.Fatalf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.State != "ready" || err.Event != "external_command" {
		t.Errorf("unexpected state/event: %s/%s", err.State, err.Event)
	}
	if err.Detail != `session missing for verb "u"` {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if err.Cause != cause {
		t.Error("cause not set")
	}
	if err.Value != "u" {
		t.Errorf("unexpected value: %v", err.Value)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"channel full", ChannelFull(8), PhaseChannel, KindChannelFull},
		{"out of order", OutOfOrder("failed", "puzzle_data_loaded"), PhaseBootstrap, KindOutOfOrder},
		{"load failed", LoadFailed("missing canvas", nil), PhaseAdapter, KindLoadFailed},
		{"invalid data", InvalidData(PhaseParse, "empty clue line"), PhaseParse, KindInvalidData},
		{"invalid command", InvalidCommand("z"), PhaseCommand, KindInvalidCommand},
		{"out of bounds", OutOfBounds(PhaseSession, "cell", 30, 25), PhaseSession, KindOutOfBounds},
		{"not initialized", NotInitialized(PhaseSession, "puzzle session"), PhaseSession, KindNotInitialized},
		{"wrap", Wrap(PhaseCommand, KindInvalidData, errors.New("x"), "bad update"), PhaseCommand, KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
