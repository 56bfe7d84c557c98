package investmind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists the full user mapping as a single JSON document: an
// object keyed by username, value = the flattened account snapshot. Every
// save is a full rewrite of all users' state; there is no incremental
// update and no schema versioning.

// StoreFilename is the name of the user store inside the data directory.
const StoreFilename = "users.json"

// EncodeUsers writes the full user mapping to w as one JSON document.
func EncodeUsers(w io.Writer, r *Registry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(r.users)
}

// DecodeUsers reads the whole persisted user mapping from r. The document
// keys must agree with each record's username field.
func DecodeUsers(rd io.Reader) (*Registry, error) {
	var users map[string]*User
	dec := json.NewDecoder(rd)
	if err := dec.Decode(&users); err != nil {
		return nil, fmt.Errorf("format error in user store: %w", err)
	}

	reg := NewRegistry()
	for key, u := range users {
		if u == nil {
			return nil, fmt.Errorf("format error in user store: entry %q is null", key)
		}
		if u.Username != key {
			return nil, fmt.Errorf("format error in user store: entry %q holds username %q", key, u.Username)
		}
		reg.add(u)
	}
	return reg, nil
}

// LoadRegistry reads the user store at path. A missing file is the normal
// first-run case and yields an empty registry; an existing file that
// cannot be read or parsed yields a *PersistenceError, which is fatal at
// startup.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, &PersistenceError{Path: path, Err: err}
	}
	defer f.Close()

	reg, err := DecodeUsers(f)
	if err != nil {
		return nil, &PersistenceError{Path: path, Err: err}
	}
	return reg, nil
}

// SaveRegistry rewrites the whole user store at path, creating the
// containing directory when absent.
func SaveRegistry(path string, r *Registry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &PersistenceError{Path: path, Err: err}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := EncodeUsers(f, r); err != nil {
		f.Close()
		return &PersistenceError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}
