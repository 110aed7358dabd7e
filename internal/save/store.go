package save

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrEmptyKey is returned when a section key is blank.
var ErrEmptyKey = errors.New("save: empty section key")

// Store is a set of named sections, each holding any YAML-encodable value.
// The store does not know what the sections mean; owners encode and decode
// their own state.
type Store struct {
	sections map[string]*yaml.Node
}

func NewStore() *Store {
	return &Store{sections: make(map[string]*yaml.Node)}
}

// Put encodes v under key, replacing any previous section.
func (s *Store) Put(key string, v any) error {
	if key == "" {
		return ErrEmptyKey
	}
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return fmt.Errorf("encode section %q: %w", key, err)
	}
	s.sections[key] = &node
	return nil
}

// Get decodes the section into v. It returns false when the section is absent.
func (s *Store) Get(key string, v any) (bool, error) {
	node, ok := s.sections[key]
	if !ok {
		return false, nil
	}
	if err := node.Decode(v); err != nil {
		return true, fmt.Errorf("decode section %q: %w", key, err)
	}
	return true, nil
}

func (s *Store) Has(key string) bool {
	_, ok := s.sections[key]
	return ok
}

func (s *Store) Delete(key string) { delete(s.sections, key) }

// Keys lists the section names in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.sections))
	for k := range s.sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteFile writes every section to one YAML document.
func (s *Store) WriteFile(path string) error {
	data, err := yaml.Marshal(s.sections)
	if err != nil {
		return fmt.Errorf("marshal save: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write save %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a store. A missing file yields an empty store.
func ReadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}
		return nil, fmt.Errorf("read save %s: %w", path, err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse save %s: %w", path, err)
	}
	store := NewStore()
	for k, v := range raw {
		node := v
		store.sections[k] = &node
	}
	return store, nil
}
