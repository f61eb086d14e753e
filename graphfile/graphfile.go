// SPDX-License-Identifier: MIT

package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trim21/errgo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/core"
)

// Format names a supported document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnknownFormat indicates a file extension or Format that is not YAML or TOML.
	ErrUnknownFormat = errors.New("graphfile: unknown format")

	// ErrDecode indicates a malformed document or a key outside the schema.
	ErrDecode = errors.New("graphfile: decode failed")
)

// EdgeSpec is one undirected edge a–b.
type EdgeSpec struct {
	A      int     `yaml:"a" toml:"a"`
	B      int     `yaml:"b" toml:"b"`
	Weight float64 `yaml:"weight" toml:"weight"`
}

// File is the decoded document.
type File struct {
	Source     *int       `yaml:"source,omitempty" toml:"source,omitempty"`
	Loops      bool       `yaml:"loops" toml:"loops"`
	MultiEdges bool       `yaml:"multi_edges" toml:"multi_edges"`
	Nodes      []int      `yaml:"nodes" toml:"nodes"`
	Edges      []EdgeSpec `yaml:"edges" toml:"edges"`
}

// FormatOf picks the Format from the extension of path (.yaml, .yml, .toml).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the graph file at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errgo.Wrap(err, fmt.Sprintf("failed to open graph file %s", path))
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads one document of the given format from r.
// An empty YAML document decodes to an empty File.
func Decode(r io.Reader, format Format) (*File, error) {
	var out File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&out)
		if err != nil {
			return nil, fmt.Errorf("%w: toml: %v", ErrDecode, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: toml: unknown key %q", ErrDecode, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &out, nil
}

// Build creates a core.Graph holding the nodes and edges of f.
// Edge errors from core (NaN weight, forbidden loop or parallel edge) are
// returned wrapped with the edge position.
func (f *File) Build() (*core.Graph, error) {
	var gopts []core.GraphOption
	if f.Loops {
		gopts = append(gopts, core.WithLoops())
	}
	if f.MultiEdges {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g := core.NewGraph(gopts...)

	for _, id := range f.Nodes {
		g.AddNode(id)
	}
	for i, e := range f.Edges {
		if err := g.Connect(e.A, e.B, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: edge #%d (%d–%d): %w", i, e.A, e.B, err)
		}
	}

	return g, nil
}
