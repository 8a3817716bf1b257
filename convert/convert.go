// Package convert turns AsciiMath source files into MathML documents. A
// source file holds one formula per non-blank line; a line ending in a
// backslash continues on the next one.
package convert

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnolang/asciimath"
	"github.com/gnolang/asciimath/check"
	"github.com/gnolang/asciimath/internal/cache"
	"github.com/gnolang/asciimath/mathml"
)

// Converter converts one source file. root is the directory the file was
// found in while walking, or "" for a file named directly.
type Converter interface {
	// OutputPath returns where the document for path is written.
	OutputPath(root, path string) string
	Convert(root, path string) (Result, error)
}

// Result describes a converted file.
type Result struct {
	Source   string
	Output   string // path of the written document
	Formulas int
	Issues   []check.Issue
	Cached   bool // the output was up to date and not rendered again
}

// Engine converts files according to a Config.
type Engine struct {
	config  Config
	options []mathml.Option
	checker *check.Checker
	cache   *cache.Cache
}

// New creates an Engine. A cache is opened when config.CacheDir is set.
func New(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		config:  config,
		options: config.Options(),
		checker: check.New(),
	}
	if config.CacheDir != "" {
		c, err := cache.New(config.CacheDir)
		if err != nil {
			return nil, err
		}
		c.SetMaxAge(config.CacheMaxAge)
		e.cache = c
	}
	return e, nil
}

// Config returns the configuration the engine converts with.
func (e *Engine) Config() Config { return e.config }

// ResetCache drops every cached result, so the next conversions render
// every file again.
func (e *Engine) ResetCache() error {
	if e.cache == nil {
		return nil
	}
	return e.cache.InvalidateAll()
}

// Convert renders the file at path and writes the document next to it, or
// into the configured output directory.
func (e *Engine) Convert(root, path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("error reading file %s: %w", path, err)
	}

	result := Result{Source: path, Output: e.OutputPath(root, path)}
	hash := cache.Hash(content)
	if e.cache != nil {
		if entry, ok := e.cache.Get(path, hash, e.config.settings()); ok && entry.Output == result.Output {
			if _, err := os.Stat(result.Output); err == nil {
				result.Formulas = entry.Formulas
				result.Issues = entry.Issues
				result.Cached = true
				return result, nil
			}
		}
	}

	src := asciimath.NewSourceCode(string(content))
	doc, formulas, err := e.Render(filepath.Base(path), src)
	if err != nil {
		return Result{}, err
	}
	result.Formulas = formulas
	result.Issues = e.checker.Source(path, src)

	if dir := filepath.Dir(result.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(result.Output, []byte(doc), 0o644); err != nil {
		return Result{}, fmt.Errorf("error writing %s: %w", result.Output, err)
	}

	if e.cache != nil {
		entry := cache.Entry{
			Hash:     hash,
			Settings: e.config.settings(),
			Output:   result.Output,
			Formulas: result.Formulas,
			Issues:   result.Issues,
		}
		if err := e.cache.Set(path, entry); err != nil {
			return result, err
		}
	}
	return result, nil
}

// OutputPath returns where the document for path is written: next to the
// source, or in the output directory at the source's place below root.
func (e *Engine) OutputPath(root, path string) string {
	ext := "." + FormatMathML
	if e.config.Format == FormatHTML {
		ext = ".html"
	}
	if e.config.OutputDir == "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ext
		return filepath.Join(filepath.Dir(path), name)
	}

	rel := filepath.Base(path)
	if root != "" {
		if r, err := filepath.Rel(root, path); err == nil && !escapes(r) {
			rel = r
		}
	}
	return filepath.Join(e.config.OutputDir, strings.TrimSuffix(rel, filepath.Ext(rel))+ext)
}

func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Render converts every formula of src and returns the document and the
// number of formulas in it.
func (e *Engine) Render(title string, src *asciimath.SourceCode) (string, int, error) {
	formulas := src.Formulas()
	rendered := make([]renderedFormula, len(formulas))
	for i, f := range formulas {
		rendered[i] = renderedFormula{
			Line:   f.Line,
			Source: f.Text,
			MathML: asciimath.ToMathML(f.Text, e.options...),
		}
	}

	if e.config.Format != FormatHTML {
		var b strings.Builder
		for _, f := range rendered {
			b.WriteString(f.MathML)
			b.WriteString("\n")
		}
		return b.String(), len(rendered), nil
	}

	page := htmlPage{Title: title}
	for _, f := range rendered {
		page.Formulas = append(page.Formulas, htmlFormula{
			Line:   f.Line,
			Source: f.Source,
			// produced by the renderer, which escapes every payload
			MathML: template.HTML(f.MathML),
		})
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, page); err != nil {
		return "", 0, fmt.Errorf("error rendering page: %w", err)
	}
	return buf.String(), len(rendered), nil
}

type renderedFormula struct {
	Line   int
	Source string
	MathML string
}
