package geo3d

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/qubit-modeling/geodata/freecad"
	"github.com/qubit-modeling/geodata/geoerr"
)

// fakePart stands in for an externally constructed solid.
type fakePart struct {
	shape string
}

func TestAddPart_DuplicateGuard(t *testing.T) {
	g := New("chip")
	if err := g.AddPart("substrate", fakePart{"box"}, false); err != nil {
		t.Fatalf("AddPart: %v", err)
	}

	err := g.AddPart("substrate", fakePart{"cylinder"}, false)
	if !errors.Is(err, geoerr.ErrDuplicateName) {
		t.Fatalf("duplicate add returned %v, want ErrDuplicateName", err)
	}

	p, _ := g.Part("substrate")
	if p.(fakePart).shape != "box" {
		t.Error("stored part replaced by failed add")
	}
}

func TestAddPart_Overwrite(t *testing.T) {
	g := New("chip")
	if err := g.AddPart("substrate", fakePart{"box"}, false); err != nil {
		t.Fatal(err)
	}
	if err := g.AddPart("substrate", fakePart{"wedge"}, true); err != nil {
		t.Fatalf("overwrite AddPart: %v", err)
	}

	p, _ := g.Part("substrate")
	if p.(fakePart).shape != "wedge" {
		t.Error("overwrite did not replace stored part")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

// Registry operations never touch BuildOrder; the construction step owns it.
func TestBuildOrder_NotMaintainedByRegistry(t *testing.T) {
	g := New("chip")
	if err := g.AddPart("p1", fakePart{"box"}, false); err != nil {
		t.Fatal(err)
	}
	if len(g.BuildOrder) != 0 {
		t.Errorf("BuildOrder = %v after AddPart, want empty", g.BuildOrder)
	}

	g.BuildOrder = []string{"p1"}
	if err := g.RemovePart("p1", false); err != nil {
		t.Fatal(err)
	}
	if len(g.BuildOrder) != 1 {
		t.Errorf("BuildOrder = %v after RemovePart, want unchanged", g.BuildOrder)
	}
}

func TestRemovePart(t *testing.T) {
	g := New("chip")
	if err := g.AddPart("p1", fakePart{"box"}, false); err != nil {
		t.Fatal(err)
	}

	if err := g.RemovePart("p1", false); err != nil {
		t.Fatalf("RemovePart: %v", err)
	}
	if g.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", g.Len())
	}

	if err := g.RemovePart("p1", false); !errors.Is(err, geoerr.ErrNotFound) {
		t.Fatalf("second removal returned %v, want ErrNotFound", err)
	}
	if err := g.RemovePart("p1", true); err != nil {
		t.Fatalf("ignored removal returned %v, want nil", err)
	}
}

func TestWriteFCStd_NoDocument(t *testing.T) {
	g := New("chip")

	_, err := g.WriteFCStd("")
	if !errors.Is(err, geoerr.ErrNoDocument) {
		t.Fatalf("WriteFCStd returned %v, want ErrNoDocument", err)
	}
}

func TestWriteFCStd_WritesDecodedBytesVerbatim(t *testing.T) {
	raw := []byte{0x50, 0x4b, 0x03, 0x04, 0x14, 0x00, 0x00, 0x08}

	g := New("chip")
	g.AttachDocument(freecad.Encode(raw))

	path := filepath.Join(t.TempDir(), "out.fcstd")
	got, err := g.WriteFCStd(path)
	if err != nil {
		t.Fatalf("WriteFCStd: %v", err)
	}
	if got != path {
		t.Errorf("returned path = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}
	if string(data) != string(raw) {
		t.Errorf("exported bytes = %x, want %x", data, raw)
	}
}

func TestWriteFCStd_DefaultPathUsesLabel(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	g := New("device_a")
	g.AttachDocument(freecad.Encode([]byte("doc")))

	got, err := g.WriteFCStd("")
	if err != nil {
		t.Fatalf("WriteFCStd: %v", err)
	}
	if got != "device_a.fcstd" {
		t.Errorf("returned path = %q, want %q", got, "device_a.fcstd")
	}
	if _, err := os.Stat(filepath.Join(dir, "device_a.fcstd")); err != nil {
		t.Errorf("default-named file not written: %v", err)
	}
}

func TestWriteFCStd_CorruptDocument(t *testing.T) {
	g := New("chip")
	g.AttachDocument(freecad.FromEncoded("%%% not base64 %%%"))

	_, err := g.WriteFCStd(filepath.Join(t.TempDir(), "out.fcstd"))
	if err == nil {
		t.Fatal("expected decode error")
	}
	var gerr *geoerr.Error
	if !errors.As(err, &gerr) || gerr.Kind != geoerr.KindDocument {
		t.Fatalf("error = %v, want document-kind error", err)
	}
}

func TestWriteFCStd_IOFailure(t *testing.T) {
	g := New("chip")
	g.AttachDocument(freecad.Encode([]byte("doc")))

	// Target directory does not exist.
	_, err := g.WriteFCStd(filepath.Join(t.TempDir(), "missing", "out.fcstd"))
	if err == nil {
		t.Fatal("expected I/O error")
	}
	var gerr *geoerr.Error
	if !errors.As(err, &gerr) || gerr.Kind != geoerr.KindIO {
		t.Fatalf("error = %v, want io-kind error", err)
	}
}
