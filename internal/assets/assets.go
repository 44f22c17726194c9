package assets

import (
	"encoding/base64"
	"fmt"
)

// Font weights used in @font-face rules.
const (
	WeightNormal = "normal"
	WeightBold   = "bold"
)

// Face names one font file and how it is declared in CSS.
type Face struct {
	Family string // CSS font-family
	Weight string // CSS font-weight
	File   string // file name without .woff2
}

// DefaultFaces are the two families, regular and bold, every document
// declares.
var DefaultFaces = []Face{
	{Family: "Source Sans Pro", Weight: WeightNormal, File: "SourceSansPro-Regular"},
	{Family: "Source Sans Pro", Weight: WeightBold, File: "SourceSansPro-Bold"},
	{Family: "Roboto Condensed", Weight: WeightNormal, File: "RobotoCondensed-Regular"},
	{Family: "Roboto Condensed", Weight: WeightBold, File: "RobotoCondensed-Bold"},
}

// LoadedFace is a Face with its payload already base64 encoded.
type LoadedFace struct {
	Face
	Base64 string
}

// FontSet holds encoded font payloads. It is immutable after LoadFontSet
// returns and safe for concurrent reads.
type FontSet struct {
	faces []LoadedFace
}

// LoadFontSet reads and encodes every face through loader. Any missing or
// malformed font fails the whole set.
func LoadFontSet(loader FontLoader, faces []Face) (*FontSet, error) {
	set := &FontSet{faces: make([]LoadedFace, 0, len(faces))}
	for _, face := range faces {
		data, err := loader.LoadFont(face.File)
		if err != nil {
			return nil, fmt.Errorf("loading %s %s: %w", face.Family, face.Weight, err)
		}
		if err := ValidateWOFF2(face.File, data); err != nil {
			return nil, err
		}
		set.faces = append(set.faces, LoadedFace{
			Face:   face,
			Base64: base64.StdEncoding.EncodeToString(data),
		})
	}
	return set, nil
}

// NewFontSet builds a set from already-encoded faces. Intended for callers
// that source fonts outside a FontLoader (and for tests).
func NewFontSet(faces ...LoadedFace) *FontSet {
	cp := make([]LoadedFace, len(faces))
	copy(cp, faces)
	return &FontSet{faces: cp}
}

// Faces returns a copy of the loaded faces in declaration order.
func (s *FontSet) Faces() []LoadedFace {
	if s == nil {
		return nil
	}
	cp := make([]LoadedFace, len(s.faces))
	copy(cp, s.faces)
	return cp
}

// Len returns the number of faces.
func (s *FontSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.faces)
}

// Covers returns ErrFontNotFound naming the first face of faces the set
// does not hold with a payload.
func (s *FontSet) Covers(faces []Face) error {
	for _, want := range faces {
		found := false
		for _, have := range s.Faces() {
			if have.Family == want.Family && have.Weight == want.Weight && have.Base64 != "" {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s %s", ErrFontNotFound, want.Family, want.Weight)
		}
	}
	return nil
}
