package schemaerr

import (
	"errors"
	"testing"
)

func TestLoadError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("missing closing paren")
		err := &LoadError{
			Kind:    InvalidRegex,
			Marker:  Marker{Line: 3, Column: 12},
			Path:    ".properties.name.pattern",
			Message: "failed to compile pattern",
			Cause:   cause,
		}
		want := "[3:12] InvalidRegex at .properties.name.pattern: failed to compile pattern: missing closing paren"
		if got := err.Error(); got != want {
			t.Errorf("unexpected error message: %s", got)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &LoadError{Kind: ExpectedMapping}
		if got, want := err.Error(), "[<unknown>] ExpectedMapping"; got != want {
			t.Errorf("unexpected error message: %s", got)
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &LoadError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrLoad", func(t *testing.T) {
		err := &LoadError{Kind: Generic}
		if !errors.Is(err, ErrLoad) {
			t.Error("expected errors.Is(err, ErrLoad) to be true")
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error format matches external interface", func(t *testing.T) {
		err := &ValidationError{
			Path:    ".foo",
			Marker:  Marker{Line: 1, Column: 6},
			Kind:    TypeMismatch,
			Message: "Expected a string, but got: Value(Integer(42))",
		}
		want := "[1:6] .foo: Expected a string, but got: Value(Integer(42))"
		if got := err.Error(); got != want {
			t.Errorf("unexpected error message: %s", got)
		}
	})

	t.Run("Is matches ErrValidation", func(t *testing.T) {
		err := &ValidationError{Kind: FalseSchema}
		if !errors.Is(err, ErrValidation) {
			t.Error("expected errors.Is(err, ErrValidation) to be true")
		}
	})
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "ref_depth", Limit: 100, Path: ".a.b"}
	want := "resource limit exceeded: ref_depth (limit 100) at .a.b"
	if got := err.Error(); got != want {
		t.Errorf("unexpected error message: %s", got)
	}
	if !errors.Is(err, ErrResourceLimit) {
		t.Error("expected errors.Is(err, ErrResourceLimit) to be true")
	}
}

func TestMarkerString(t *testing.T) {
	if got, want := (Marker{}).String(), "<unknown>"; got != want {
		t.Errorf("Marker{}.String() = %s, want %s", got, want)
	}
	if got, want := (Marker{Line: 4, Column: 9}).String(), "4:9"; got != want {
		t.Errorf("Marker.String() = %s, want %s", got, want)
	}
}
