package lensicon

import (
	"errors"
	"strings"
	"testing"

	"github.com/pdslens/lensicon/internal/imgfmt"
)

func TestCheckDependencies(t *testing.T) {
	if err := CheckDependencies("a.png", "b.jpg", "c.bmp", "d.tiff"); err != nil {
		t.Errorf("CheckDependencies() = %v, want nil", err)
	}
	if err := CheckDependencies(); err != nil {
		t.Errorf("CheckDependencies() with no paths = %v, want nil", err)
	}
}

func TestCheckDependenciesUnknownFormat(t *testing.T) {
	err := CheckDependencies("a.png", "b.webp", "c.svg")
	if err == nil {
		t.Fatal("CheckDependencies() = nil, want error")
	}
	if !errors.Is(err, ErrMissingDependency) {
		t.Errorf("errors.Is(err, ErrMissingDependency) = false for %v", err)
	}
	if !errors.Is(err, imgfmt.ErrUnknownFormat) {
		t.Errorf("errors.Is(err, imgfmt.ErrUnknownFormat) = false for %v", err)
	}

	var missing *MissingDependencyError
	if !errors.As(err, &missing) {
		t.Fatalf("error %T is not *MissingDependencyError", err)
	}
	if missing.Path != "b.webp" {
		t.Errorf("Path = %q, want first failing path b.webp", missing.Path)
	}
	if !strings.Contains(err.Error(), "b.webp") {
		t.Errorf("Error() = %q, want path mentioned", err.Error())
	}
}

func TestMissingDependencyErrorIsOnlyItself(t *testing.T) {
	err := &MissingDependencyError{Path: "x", Err: imgfmt.ErrUnknownFormat}
	if errors.Is(err, ErrInvalidSize) {
		t.Error("MissingDependencyError matched ErrInvalidSize")
	}
}
