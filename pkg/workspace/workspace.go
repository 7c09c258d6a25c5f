// Package workspace holds named viewport presets.
package workspace

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gucio321/plotview/pkg/preview"
	"github.com/gucio321/plotview/pkg/projector"
)

//go:embed workspaces.json
var workspaces []byte

// DefaultName is the workspace used when none is selected.
const DefaultName = "screen"

var ErrNotFound = errors.New("workspace not found")

// Workspace represents the area a program is previewed on.
type Workspace struct {
	Name        string
	Description string

	// Width and Height are the viewport size in device units (pixels).
	Width, Height float64
	// Padding is kept free on every side of the drawing.
	Padding     float64
	ArcSegments int
	// PenUpZ is the highest Z at which the pen is considered lifted.
	PenUpZ float64
}

// Options returns preview options for w.
func (w *Workspace) Options() preview.Options {
	return preview.Options{
		Viewport:    projector.Size{Width: w.Width, Height: w.Height},
		Padding:     w.Padding,
		ArcSegments: w.ArcSegments,
		PenUpZ:      w.PenUpZ,
	}
}

func decodeWorkspaces() ([]Workspace, error) {
	var result []Workspace
	if err := json.Unmarshal(workspaces, &result); err != nil {
		return nil, fmt.Errorf("decoding embedded workspaces: %w", err)
	}

	return result, nil
}

// List returns all known workspaces.
func List() ([]Workspace, error) {
	return decodeWorkspaces()
}

// Get looks workspace up by name.
func Get(name string) (*Workspace, error) {
	workspaces, err := decodeWorkspaces()
	if err != nil {
		return nil, err
	}

	for _, workspace := range workspaces {
		if workspace.Name == name {
			return &workspace, nil
		}
	}

	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}
