package sr

import (
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPatchSetSaveLoad(t *testing.T) {
	ps, err := mustSampler(t, 3, 40, 2, WithSeed(2)).Sample(randomImage(24, 24, 3, 2))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "patches.gob")
	if err := ps.SaveToFile(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !mat.Equal(ps.H, loaded.H) || !mat.Equal(ps.L, loaded.L) {
		t.Error("matrices changed across save/load")
	}
	if !slices.Equal(ps.Coords, loaded.Coords) {
		t.Error("coordinates changed across save/load")
	}
	if loaded.PatchSize != 3 || loaded.Upscale != 2 {
		t.Errorf("metadata = (%d, %v)", loaded.PatchSize, loaded.Upscale)
	}
}

func TestLoadFromFileRejectsInconsistentShapes(t *testing.T) {
	h, _ := mat.NewDense(4, 2, nil).MarshalBinary()
	l, _ := mat.NewDense(16, 2, nil).MarshalBinary()

	path := filepath.Join(t.TempDir(), "broken.gob")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	// Two columns but three coordinates.
	err = gob.NewEncoder(f).Encode(patchSetData{
		PatchSize: 2,
		Upscale:   2,
		Coords:    []Coord{{2, 2}, {2, 3}, {3, 3}},
		H:         h,
		L:         l,
	})
	f.Close()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.gob")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestPatchSetAppend(t *testing.T) {
	s := mustSampler(t, 4, 7, 2, WithSeed(4))
	a, err := s.Sample(randomImage(20, 20, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Sample(randomImage(30, 22, 1, 2))
	if err != nil {
		t.Fatal(err)
	}

	ab, err := a.Append(b)
	if err != nil {
		t.Fatal(err)
	}
	if ab.Len() != 14 {
		t.Fatalf("len = %d, want 14", ab.Len())
	}
	if r, c := ab.H.Dims(); r != 16 || c != 14 {
		t.Errorf("H dims = %dx%d", r, c)
	}
	if r, c := ab.L.Dims(); r != 64 || c != 14 {
		t.Errorf("L dims = %dx%d", r, c)
	}
	for j := 0; j < 7; j++ {
		if !slices.Equal(mat.Col(nil, 7+j, ab.L), mat.Col(nil, j, b.L)) {
			t.Fatalf("column %d of b is not at %d", j, 7+j)
		}
	}
	if ab.Coords[7] != b.Coords[0] {
		t.Error("coordinates not appended in order")
	}

	other, err := mustSampler(t, 3, 7, 2).Sample(randomImage(20, 20, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Append(other); !errors.Is(err, ErrParameter) {
		t.Errorf("expected ErrParameter for mixed patch sizes, got %v", err)
	}
}

func TestPatchSetAppendWithoutMatrices(t *testing.T) {
	a, err := mustSampler(t, 2, 5, 2, WithSeed(1)).Sample(randomImage(12, 12, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	for name, pair := range map[string][2]*PatchSet{
		"zero receiver": {{PatchSize: 2}, a},
		"zero argument": {a, {PatchSize: 2}},
		"nil argument":  {a, nil},
	} {
		if _, err := pair[0].Append(pair[1]); !errors.Is(err, ErrParameter) {
			t.Errorf("%s: expected ErrParameter, got %v", name, err)
		}
	}
}
