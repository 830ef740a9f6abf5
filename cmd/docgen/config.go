package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Package represents a Go package to document.
type Package struct {
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`
	Title    string `yaml:"title,omitempty"`
	Position int    `yaml:"-"`
}

// Config represents the optional docgen.yaml configuration.
type Config struct {
	Output    string    `yaml:"output,omitempty"`
	Gomarkdoc string    `yaml:"gomarkdoc,omitempty"`
	Packages  []Package `yaml:"packages,omitempty"`
}

const (
	gomarkdocPackage = "github.com/princjef/gomarkdoc/cmd/gomarkdoc"
	defaultGomarkdoc = "latest"
)

// defaultPackages are documented when docgen.yaml lists none, in order.
var defaultPackages = []Package{
	{Name: "geom", Path: "pkg/geom", Title: "Geometry"},
	{Name: "collision", Path: "pkg/collision", Title: "Collision"},
	{Name: "imagegeom", Path: "pkg/imagegeom", Title: "Image Interop"},
	{Name: "errors", Path: "pkg/errors", Title: "Errors"},
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	OutputDir  string
	Gomarkdoc  string
	Packages   []Package
}

// LoadOptional reads docgen.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "docgen.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read docgen.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse docgen.yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve loads docgen.yaml (if present) and fills in defaults.
func Resolve(root string) (*Resolved, error) {
	modulePath, err := modulePath(root)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(root)
	if err != nil {
		return nil, err
	}

	output := strings.TrimSpace(cfg.Output)
	if output == "" {
		output = filepath.Join("docs", "api")
	}

	version := strings.TrimSpace(cfg.Gomarkdoc)
	if version == "" {
		version = defaultGomarkdoc
	}

	pkgs := cfg.Packages
	if len(pkgs) == 0 {
		pkgs = defaultPackages
	}
	resolved := make([]Package, 0, len(pkgs))
	seen := make(map[string]bool, len(pkgs))
	for i, pkg := range pkgs {
		pkg.Name = strings.TrimSpace(pkg.Name)
		pkg.Path = filepath.ToSlash(strings.TrimSpace(pkg.Path))
		if pkg.Name == "" || pkg.Path == "" {
			return nil, fmt.Errorf("docgen.yaml: package %d needs both name and path", i+1)
		}
		if seen[pkg.Name] {
			return nil, fmt.Errorf("docgen.yaml: duplicate package name %q", pkg.Name)
		}
		seen[pkg.Name] = true
		if pkg.Title == "" {
			pkg.Title = formatTitle(pkg.Name)
		}
		pkg.Position = i + 1
		resolved = append(resolved, pkg)
	}

	return &Resolved{
		Root:       root,
		ModulePath: modulePath,
		OutputDir:  filepath.Join(root, output),
		Gomarkdoc:  version,
		Packages:   resolved,
	}, nil
}

// ImportPath returns the full import path of pkg within the module.
func (r *Resolved) ImportPath(pkg Package) string {
	return r.ModulePath + "/" + strings.TrimPrefix(pkg.Path, "./")
}

// findModuleRoot returns the nearest directory at or above start whose
// go.mod declares a module.
func findModuleRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if _, err := modulePath(dir); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod with a module directive at or above %s", start)
		}
		dir = parent
	}
}

func modulePath(root string) (string, error) {
	path := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	mp := modfile.ModulePath(data)
	if mp == "" {
		return "", fmt.Errorf("go.mod has no module directive")
	}
	return mp, nil
}

func formatTitle(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
