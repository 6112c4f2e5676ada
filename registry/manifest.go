/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/suparena/dynamodel"
)

// Manifest is the YAML document shape for model declarations:
//
//	models:
//	  User:
//	    table: users
//	    primaryKey: id
//	    indexes:
//	      - field: email
//	        index: email-index
//	    fillable: [id, name, email]
//	    timestamps: true
//	  Order:
//	    table: orders
//	    compositeKey: [userId, orderId]
type Manifest struct {
	Models map[string]*dynamodel.Definition `yaml:"models"`
}

// ParseManifest decodes a YAML manifest into validated definitions, sorted
// by model name.
func ParseManifest(data []byte) ([]*dynamodel.Definition, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(manifest.Models) == 0 {
		return nil, fmt.Errorf("manifest declares no models")
	}

	names := make([]string, 0, len(manifest.Models))
	for name := range manifest.Models {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]*dynamodel.Definition, 0, len(names))
	for _, name := range names {
		def := manifest.Models[name]
		def.Name = name
		if err := def.Validate(); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) ([]*dynamodel.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// RegisterManifest loads a manifest and registers every definition.
func RegisterManifest(path string) error {
	defs, err := LoadManifest(path)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := Register(def); err != nil {
			return err
		}
	}
	return nil
}
