package feature

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// featureFile is the on-disk shape produced by the analysis pipeline: a
// flat array of per-frame records plus a little provenance metadata.
type featureFile struct {
	Version int           `json:"version"`
	FPS     float64       `json:"fps"`
	Frames  []FrameRecord `json:"frames"`
}

// Load reads a feature file from path and wraps it in an immutable Store.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feature file: %w", err)
	}
	defer f.Close()

	store, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return store, nil
}

// Decode parses a JSON feature file from r.
func Decode(r io.Reader) (*Store, error) {
	var file featureFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse features: %w", err)
	}
	if len(file.Frames) == 0 {
		return nil, fmt.Errorf("feature file contains no frames")
	}
	return NewStore(file.Frames), nil
}
