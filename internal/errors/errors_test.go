package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		if wrapped == nil {
			t.Fatal("expected wrapped error, got nil")
		}
		if wrapped.Error() != "wrapped: base error" {
			t.Errorf("unexpected message '%s'", wrapped.Error())
		}
		if !errors.Is(wrapped, baseErr) {
			t.Error("expected wrapped error to wrap baseErr")
		}
	})

	t.Run("wrap nil error", func(t *testing.T) {
		if wrapped := Wrap(nil, "wrapped"); wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestWrapf(t *testing.T) {
	t.Run("wrapf non-nil error", func(t *testing.T) {
		wrapped := Wrapf(ErrInvalidInput, "attempt %d", 3)
		if wrapped.Error() != "attempt 3: invalid input" {
			t.Errorf("unexpected message '%s'", wrapped.Error())
		}
		if !Is(wrapped, ErrInvalidInput) {
			t.Error("expected wrapped error to match ErrInvalidInput")
		}
	})

	t.Run("wrapf nil error", func(t *testing.T) {
		if wrapped := Wrapf(nil, "attempt %d", 3); wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestIs(t *testing.T) {
	if !Is(Wrap(ErrNotFound, "search"), ErrNotFound) {
		t.Error("expected wrapped ErrNotFound to match")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	if Is(ErrNotFound, ErrInvalidInput) {
		t.Error("ErrNotFound must not match ErrInvalidInput")
	}
}
