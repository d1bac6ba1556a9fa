// SPDX-License-Identifier: MIT

// Package grid - persistence hooks.
//
// Only width, height and the backing sequence survive a round-trip; the access
// policy is a runtime choice and is kept from the receiver. Cells are written in
// index order (x-major). No versioning is applied.

package grid

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// payload is the wire shape shared by the JSON and YAML codecs.
type payload[T any] struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	Cells  []T `json:"cells" yaml:"cells"`
}

func (g *Grid[T]) wire() payload[T] {
	return payload[T]{Width: g.width, Height: g.height, Cells: g.data}
}

// restore validates p and installs it into g.
func (g *Grid[T]) restore(op string, p payload[T]) error {
	if !validShape(p.Width, p.Height) {
		return dimErrorf(op, p.Width, p.Height)
	}
	if len(p.Cells) != p.Width*p.Height {
		return fmt.Errorf("%s(%d,%d): got %d cells: %w", op, p.Width, p.Height, len(p.Cells), ErrCorruptPayload)
	}
	g.width, g.height, g.data = p.Width, p.Height, p.Cells

	return nil
}

// MarshalJSON implements json.Marshaler.
func (g *Grid[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.wire())
}

// UnmarshalJSON implements json.Unmarshaler. On error g is left unchanged.
func (g *Grid[T]) UnmarshalJSON(b []byte) error {
	var p payload[T]
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("UnmarshalJSON: %w", err)
	}
	return g.restore("UnmarshalJSON", p)
}

// MarshalYAML implements yaml.Marshaler.
func (g *Grid[T]) MarshalYAML() (interface{}, error) {
	return g.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. On error g is left unchanged.
func (g *Grid[T]) UnmarshalYAML(n *yaml.Node) error {
	var p payload[T]
	if err := n.Decode(&p); err != nil {
		return fmt.Errorf("UnmarshalYAML: %w", err)
	}
	return g.restore("UnmarshalYAML", p)
}
