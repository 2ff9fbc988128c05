package deck

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDeck []byte

type document struct {
	Slides []yaml.Node `yaml:"slides"`
}

// header holds the fields every record carries regardless of its tag.
type header struct {
	ID    int      `yaml:"id"`
	Type  string   `yaml:"type"`
	Title string   `yaml:"title"`
	Theme []string `yaml:"theme"`
}

// Default returns the embedded reference deck.
func Default() (Deck, error) {
	return Parse(defaultDeck)
}

// LoadFile reads a deck document from disk. JSON documents are accepted too.
func LoadFile(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return Deck{}, fmt.Errorf("parse deck %s: %w", path, err)
	}
	return d, nil
}

// Load reads a deck document from r.
func Load(r io.Reader) (Deck, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}
	return Parse(data)
}

// Parse decodes a deck document. Records with an unknown or missing type are
// kept with a nil Layout so that positions and ids stay stable.
func Parse(data []byte) (Deck, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Deck{}, fmt.Errorf("decode deck: %w", err)
	}
	slides := make([]Slide, 0, len(doc.Slides))
	for i := range doc.Slides {
		s, err := decodeSlide(&doc.Slides[i])
		if err != nil {
			return Deck{}, fmt.Errorf("slide %d: %w", i+1, err)
		}
		if s.ID == 0 {
			s.ID = i + 1
		}
		slides = append(slides, s)
	}
	return New(slides), nil
}

func decodeSlide(node *yaml.Node) (Slide, error) {
	var h header
	if err := node.Decode(&h); err != nil {
		return Slide{}, fmt.Errorf("decode header: %w", err)
	}
	s := Slide{ID: h.ID, Type: Type(h.Type), Title: h.Title, Theme: h.Theme}
	newLayout, ok := factories[s.Type]
	if !ok {
		return s, nil
	}
	layout := newLayout()
	if err := node.Decode(layout); err != nil {
		return Slide{}, fmt.Errorf("decode %s payload: %w", s.Type, err)
	}
	s.Layout = layout
	return s, nil
}
