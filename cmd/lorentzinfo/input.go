package main

import (
	"os"
	"strconv"

	"github.com/cwbudde/algo-lorentz/coords"
	"github.com/cwbudde/algo-lorentz/vector"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const defaultSystem = "xy-z-t"

type inputFile struct {
	Vectors []inputVector `yaml:"vectors"`
}

type inputVector struct {
	Name   string    `yaml:"name"`
	System string    `yaml:"system"`
	Coords []float64 `yaml:"coords"`
}

type namedVector struct {
	name string
	v    vector.Lorentz
}

func loadVectors(path string) ([]namedVector, error) {
	if path == "" {
		return nil, errors.New("no input file given, use --file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	vs, err := parseVectors(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return vs, nil
}

func parseVectors(data []byte) ([]namedVector, error) {
	var in inputFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(in.Vectors) == 0 {
		return nil, errors.New("no vectors")
	}

	out := make([]namedVector, 0, len(in.Vectors))
	for i, iv := range in.Vectors {
		name := iv.Name
		if name == "" {
			name = "v" + strconv.Itoa(i)
		}

		sysName := iv.System
		if sysName == "" {
			sysName = defaultSystem
		}
		sys, err := coords.ParseSystem4(sysName)
		if err != nil {
			return nil, errors.Wrapf(err, "vector %s", name)
		}

		if len(iv.Coords) != 4 {
			return nil, errors.Errorf("vector %s: want 4 coordinates, got %d", name, len(iv.Coords))
		}
		v, err := vector.New(sys, iv.Coords[0], iv.Coords[1], iv.Coords[2], iv.Coords[3])
		if err != nil {
			return nil, errors.Wrapf(err, "vector %s", name)
		}
		out = append(out, namedVector{name: name, v: v})
	}
	return out, nil
}
