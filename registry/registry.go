/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/dynamodel"
)

var (
	mu          sync.RWMutex
	definitions = make(map[string]*dynamodel.Definition)
)

// Register adds a model definition under its name. Registering the same
// name twice is an error.
func Register(def *dynamodel.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := definitions[def.Name]; exists {
		return fmt.Errorf("model %q already registered", def.Name)
	}
	definitions[def.Name] = def
	return nil
}

// Get retrieves the definition registered under name.
func Get(name string) (*dynamodel.Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	def, exists := definitions[name]
	if !exists {
		return nil, fmt.Errorf("model %q not found", name)
	}
	return def, nil
}

// Names returns the registered model names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears the registry. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	definitions = make(map[string]*dynamodel.Definition)
}
