// Package catalog loads the twelve canonical pentomino shapes from embedded
// resource data and, for a selected set of letters, builds the full set of
// distinct orientations each letter generates under rotation and reflection.
package catalog

import (
	"embed"
	"fmt"
	"os"
	"sort"

	"github.com/kpitt/pentomino/internal/piece"
	"github.com/kpitt/pentomino/internal/set"
)

//go:embed shapes/*.bin
var shapeData embed.FS

// letters is the alphabetical order in which all twelve pieces are loaded.
const letters = "FILNPTUVWXYZ"

// Orientation is a single oriented variant of a piece, carrying back a
// reference to the piece letter it belongs to.
type Orientation struct {
	Shape    piece.Shape
	Identity int // index into Catalog.Letters
}

// Catalog maps a selection of piece letters to the full set of distinct
// orientations each one generates, in deterministic order.
type Catalog struct {
	Letters     []byte        // selected letters, alphabetical; identity index == position
	Orientation []Orientation // all orientations across all letters, catalog order
}

// Load builds a Catalog for the given set of selected letters. An empty
// selection is treated as all twelve letters, per spec.
func Load(selected *set.Set[byte]) (*Catalog, error) {
	letterSet := selected
	if letterSet == nil || letterSet.Size() == 0 {
		letterSet = set.NewSet[byte]([]byte(letters)...)
	}

	var chosen []byte
	for i := 0; i < len(letters); i++ {
		l := letters[i]
		if letterSet.Contains(l) {
			chosen = append(chosen, l)
		}
	}
	sort.Slice(chosen, func(i, j int) bool { return chosen[i] < chosen[j] })

	cat := &Catalog{Letters: chosen}
	for id, letter := range chosen {
		canonical, err := loadShape(letter)
		if err != nil {
			return nil, fmt.Errorf("loading shape %c: %w", letter, err)
		}
		for _, orient := range orientations(canonical) {
			cat.Orientation = append(cat.Orientation, Orientation{Shape: orient, Identity: id})
		}
	}
	return cat, nil
}

// NumPieces returns the number of selected pieces, P.
func (c *Catalog) NumPieces() int {
	return len(c.Letters)
}

// Name returns the letter for the given identity index.
func (c *Catalog) Name(identity int) byte {
	return c.Letters[identity]
}

func loadShape(letter byte) (piece.Shape, error) {
	name := fmt.Sprintf("shapes/shape_%c.bin", letter|0x20) // lowercase
	data, err := shapeData.ReadFile(name)
	if err != nil {
		return piece.Shape{}, err
	}
	shape, err := piece.FromBytes(data)
	if err != nil {
		resourceError(fmt.Sprintf("non-rectangular resource data for piece %c: %v", letter, err))
	}
	if shape.Popcount() != 5 {
		resourceError(fmt.Sprintf("piece %c resource has popcount %d, want 5", letter, shape.Popcount()))
	}
	return shape, nil
}

// orientations returns every distinct shape reachable from the canonical
// shape by the closure of {rotate, reflect}, in a fixed deterministic visit
// order, deduped by normalized mask-sequence equality.
func orientations(canonical piece.Shape) []piece.Shape {
	seen := set.NewSet[string]()
	var result []piece.Shape

	add := func(s piece.Shape) {
		key := s.Key()
		if !seen.Contains(key) {
			seen.Add(key)
			result = append(result, s)
		}
	}

	cur := canonical
	for rot := 0; rot < 4; rot++ {
		add(cur)
		add(cur.ReflectH())
		cur = cur.Rotate90()
	}
	return result
}

func resourceError(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
