// Package main provides the API reference generator for planar.
// It renders each configured package with gomarkdoc and writes one
// Markdown page per package, with frontmatter, under the output directory.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func main() {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading working directory: %v\n", err)
		os.Exit(1)
	}
	root, err := findModuleRoot(wd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating module: %v\n", err)
		os.Exit(1)
	}

	cfg, err := Resolve(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Module: %s\n", cfg.ModulePath)

	if err := ensureGomarkdoc(cfg.Gomarkdoc); err != nil {
		fmt.Fprintf(os.Stderr, "Error ensuring gomarkdoc: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for _, pkg := range cfg.Packages {
		if _, err := os.Stat(filepath.Join(root, pkg.Path)); os.IsNotExist(err) {
			fmt.Printf("Skipping %s (not found)\n", pkg.Name)
			continue
		}

		fmt.Printf("Generating docs for %s...\n", pkg.Name)
		if err := generatePackageDocs(cfg, pkg); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating docs for %s: %v\n", pkg.Name, err)
			os.Exit(1)
		}
	}

	if err := writeIndex(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing index: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nDocumentation written to %s\n", cfg.OutputDir)
}

// ensureGomarkdoc installs the pinned gomarkdoc release unless one is
// already on PATH.
func ensureGomarkdoc(version string) error {
	if path, err := exec.LookPath("gomarkdoc"); err == nil {
		fmt.Printf("Using %s\n", path)
		return nil
	}

	pkg := gomarkdocPackage + "@" + version
	fmt.Printf("Installing %s...\n", pkg)
	cmd := exec.Command("go", "install", pkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go install %s: %w", pkg, err)
	}
	return nil
}

func generatePackageDocs(cfg *Resolved, pkg Package) error {
	cmd := exec.Command("gomarkdoc", "./"+pkg.Path)
	cmd.Dir = cfg.Root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gomarkdoc: %v: %s", err, strings.TrimSpace(stderr.String()))
	}

	content := stdout.String()
	if content == "" {
		fmt.Printf("  Warning: no documentation generated for %s\n", pkg.Name)
		return nil
	}

	page := renderPage(cfg.ImportPath(pkg), pkg, content)
	return os.WriteFile(filepath.Join(cfg.OutputDir, pkg.Name+".md"), []byte(page), 0644)
}

// renderPage turns gomarkdoc output into a page with frontmatter and a
// single import line under the title.
func renderPage(importPath string, pkg Package, content string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "---\nid: %s\ntitle: %s\nsidebar_position: %d\n---\n\n", pkg.Name, pkg.Title, pkg.Position)
	fmt.Fprintf(&sb, "`import %q`\n", importPath)
	sb.WriteString(processMarkdown(content))
	return sb.String()
}

func writeIndex(cfg *Resolved) error {
	var sb strings.Builder
	sb.WriteString("# API Reference\n\n")
	for _, pkg := range cfg.Packages {
		fmt.Fprintf(&sb, "- [%s](%s.md) `%s`\n", pkg.Title, pkg.Name, cfg.ImportPath(pkg))
	}
	return os.WriteFile(filepath.Join(cfg.OutputDir, "README.md"), []byte(sb.String()), 0644)
}

func processMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	skipImport := false
	inIndex := false

	for i, line := range lines {
		// Skip the first header line since we add our own title
		if i == 0 && strings.HasPrefix(line, "# ") {
			continue
		}

		// Skip the Index section (starts with "## Index", ends at next ## heading)
		if line == "## Index" {
			inIndex = true
			continue
		}
		if inIndex {
			if !strings.HasPrefix(line, "## ") {
				continue
			}
			inIndex = false
		}

		// The import block is replaced by the line renderPage writes.
		if strings.HasPrefix(line, "```go") && i+1 < len(lines) && strings.HasPrefix(lines[i+1], "import ") {
			skipImport = true
		}
		if skipImport {
			if line == "```" {
				skipImport = false
			}
			continue
		}

		// Convert <details><summary>Example</summary> to **Example:**
		if strings.HasPrefix(line, "<details><summary>") && strings.HasSuffix(line, "</summary>") {
			summary := line[len("<details><summary>") : len(line)-len("</summary>")]
			result = append(result, "", fmt.Sprintf("**%s:**", summary), "")
			continue
		}

		// Skip </details>, <p>, and </p> tags from gomarkdoc
		if line == "</details>" || line == "<p>" || line == "</p>" {
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
