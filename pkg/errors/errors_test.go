package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestGeomErrorString(t *testing.T) {
	err := &GeomError{
		Op:   "geom.Rect.SetTop",
		Kind: KindDomain,
		Err:  ErrDegenerate,
	}
	got := err.Error()
	want := "geom.Rect.SetTop [domain]: degenerate geometry"
	if got != want {
		t.Errorf("GeomError.Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindDomain, "domain"},
		{KindConversion, "conversion"},
		{ErrorKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDomainfWrapsDegenerate(t *testing.T) {
	err := Domainf("geom.NewCircle", "radius must be positive, was %v", -1)
	if !stderrors.Is(err, ErrDegenerate) {
		t.Errorf("errors.Is(%v, ErrDegenerate) = false, want true", err)
	}
	if !strings.Contains(err.Error(), "radius must be positive, was -1") {
		t.Errorf("error string %q should contain the detail message", err.Error())
	}
	if err.Kind != KindDomain {
		t.Errorf("Kind = %v, want %v", err.Kind, KindDomain)
	}
}

func TestKindOfThroughWrapping(t *testing.T) {
	inner := Domain("geom.Vector.Normalize", ErrZeroVector)
	wrapped := fmt.Errorf("placing sprite: %w", inner)

	if got := KindOf(wrapped); got != KindDomain {
		t.Errorf("KindOf(wrapped) = %v, want %v", got, KindDomain)
	}
	if !IsDomain(wrapped) {
		t.Error("IsDomain(wrapped) = false, want true")
	}
	if !stderrors.Is(wrapped, ErrZeroVector) {
		t.Error("expected wrapped error to match ErrZeroVector")
	}
}

func TestKindOfForeignError(t *testing.T) {
	if got := KindOf(stderrors.New("boom")); got != KindUnknown {
		t.Errorf("KindOf(foreign) = %v, want %v", got, KindUnknown)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v, want %v", got, KindUnknown)
	}
	if IsDomain(Conversion("imagegeom.RectFromImage", ErrDegenerate)) {
		t.Error("IsDomain(conversion error) = true, want false")
	}
}
