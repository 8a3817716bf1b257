package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// ErrOutputConflict is returned for a file whose document would replace
// the document of another file converted in the same run.
var ErrOutputConflict = errors.New("output conflict")

// Processor converts files and directories with a bounded pool of workers.
type Processor struct {
	Logger     *zap.Logger // may be nil
	Converter  Converter
	Extensions []string  // file extensions picked up when walking directories
	Workers    int       // defaults to the number of CPUs
	Progress   io.Writer // progress bar output; nil hides the bar
}

// ProcessFiles converts every path in turn. A path may be a file or a
// directory. Two files writing the same document is an error; the file
// seen first is converted.
func (p *Processor) ProcessFiles(ctx context.Context, paths []string) ([]Result, error) {
	var (
		all    []Result
		claims = make(outputClaims)
	)
	for _, path := range paths {
		results, err := p.processPath(ctx, path, claims)
		all = append(all, results...)
		if err != nil {
			p.logError("Error processing path", zap.String("path", path), zap.Error(err))
			return all, err
		}
	}
	return all, nil
}

// ProcessPath converts path. Directories are walked and their matching
// files converted concurrently; failures of single files are collected
// and do not stop the others.
func (p *Processor) ProcessPath(ctx context.Context, path string) ([]Result, error) {
	return p.processPath(ctx, path, make(outputClaims))
}

func (p *Processor) processPath(ctx context.Context, path string, claims outputClaims) ([]Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if err := claims.claim(p.Converter.OutputPath("", path), path); err != nil {
			return nil, err
		}
		result, err := p.Converter.Convert("", path)
		if err != nil {
			return nil, err
		}
		return []Result{result}, nil
	}

	files, err := p.collect(path)
	if err != nil {
		return nil, err
	}
	return p.convertAll(ctx, path, files, claims)
}

// outputClaims maps each document path to the source file writing it.
type outputClaims map[string]string

func (c outputClaims) claim(output, source string) error {
	if prev, ok := c[output]; ok && prev != source {
		return fmt.Errorf("%w: %s and %s both write %s", ErrOutputConflict, prev, source, output)
	}
	c[output] = source
	return nil
}

func (p *Processor) collect(root string) ([]string, error) {
	config := Config{Extensions: p.Extensions}
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && config.HasExtension(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	return files, nil
}

func (p *Processor) convertAll(ctx context.Context, root string, files []string, claims outputClaims) ([]Result, error) {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	progress := p.Progress
	if progress == nil {
		progress = io.Discard
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription(root),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []Result
		errs    []error
		sem     = make(chan struct{}, workers)
	)

	cancelled := func() bool {
		if ctx.Err() == nil {
			return false
		}
		mu.Lock()
		errs = append(errs, ctx.Err())
		mu.Unlock()
		return true
	}

schedule:
	for _, file := range files {
		if cancelled() {
			break
		}
		// claims are made in walk order, before any worker writes
		if err := claims.claim(p.Converter.OutputPath(root, file), file); err != nil {
			p.logError("Error converting file", zap.String("file", file), zap.Error(err))
			mu.Lock()
			errs = append(errs, err)
			_ = bar.Add(1)
			mu.Unlock()
			continue
		}
		select {
		case <-ctx.Done():
			cancelled()
			break schedule
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(file string) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := p.Converter.Convert(root, file)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logError("Error converting file", zap.String("file", file), zap.Error(err))
				errs = append(errs, err)
			} else {
				p.logDebug("Converted file",
					zap.String("file", file),
					zap.String("output", result.Output),
					zap.Int("formulas", result.Formulas),
					zap.Bool("cached", result.Cached))
				results = append(results, result)
			}
			_ = bar.Add(1)
		}(file)
	}
	wg.Wait()
	_ = bar.Finish()

	sort.Slice(results, func(i, j int) bool { return results[i].Source < results[j].Source })
	return results, errors.Join(errs...)
}

func (p *Processor) logError(msg string, fields ...zap.Field) {
	if p.Logger != nil {
		p.Logger.Error(msg, fields...)
	}
}

func (p *Processor) logDebug(msg string, fields ...zap.Field) {
	if p.Logger != nil {
		p.Logger.Debug(msg, fields...)
	}
}
