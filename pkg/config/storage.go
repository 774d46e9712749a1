package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDataDirName is created under the home directory when no data directory is set.
const DefaultDataDirName = ".online_banking"

// Paths are the resolved, absolute locations of the data files.
type Paths struct {
	DataDir      string
	Accounts     string
	Transactions string
}

// Resolve expands "~", applies the default directory, creates it if needed and
// returns absolute file paths.
func (s *Storage) Resolve() (Paths, error) {
	dir := s.DataDir
	if dir == "" {
		dir = filepath.Join("~", DefaultDataDirName)
	}
	dir, err := ExpandHome(dir)
	if err != nil {
		return Paths{}, err
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return Paths{}, fmt.Errorf("resolve data dir: %w", err)
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create data dir: %w", err)
	}

	p := Paths{DataDir: dir}
	if p.Accounts, err = s.file(dir, s.AccountsFile, "bank_data.txt"); err != nil {
		return Paths{}, err
	}
	if p.Transactions, err = s.file(dir, s.TransactionsFile, "transactions.txt"); err != nil {
		return Paths{}, err
	}
	return p, nil
}

func (s *Storage) file(dir, name, fallback string) (string, error) {
	if name == "" {
		name = fallback
	}
	name, err := ExpandHome(name)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	return filepath.Clean(name), nil
}

// ResolveDir returns where statements are written, falling back to dataDir.
func (s *Statement) ResolveDir(dataDir string) (string, error) {
	if s == nil || s.Dir == "" {
		return dataDir, nil
	}
	dir, err := ExpandHome(s.Dir)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create statement dir: %w", err)
	}
	return filepath.Abs(dir)
}

// ExpandHome replaces a leading "~" with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}
