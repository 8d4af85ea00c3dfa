package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/corey/haikus"
)

// ScoredHaiku pairs a detected haiku with its aggregate quality score.
type ScoredHaiku struct {
	Haiku *haikus.Haiku
	Score float64
}

// FileReport holds the scan outcome for a single file. Err is set when
// the file could not be read; the scan continues past it.
type FileReport struct {
	Path   string
	Haikus []ScoredHaiku
	Err    error
}

// ScanText finds and scores the haikus in text, dropping those below
// the configured minimum score.
func (s *Service) ScanText(text string) ([]ScoredHaiku, error) {
	t := haikus.NewText(text, haikus.WithSyllableCounter(s.oracle))

	var out []ScoredHaiku
	for _, h := range t.Haikus() {
		score, err := h.CalculateQuality(s.evaluators)
		if err != nil {
			return nil, err
		}
		if score < s.minScore {
			continue
		}
		out = append(out, ScoredHaiku{Haiku: h, Score: score})
	}
	return out, nil
}

// ScanFiles scans files and directories concurrently, bounded by the
// configured worker count. Directories are walked for files with
// configured extensions. Reports come back in expansion order.
func (s *Service) ScanFiles(ctx context.Context, paths []string) ([]FileReport, error) {
	files, err := s.expandPaths(paths)
	if err != nil {
		return nil, err
	}

	reports := make([]FileReport, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = s.scanFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *Service) scanFile(path string) FileReport {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileReport{Path: path, Err: err}
	}
	found, err := s.ScanText(string(data))
	if err != nil {
		return FileReport{Path: path, Err: err}
	}
	return FileReport{Path: path, Haikus: found}
}

// expandPaths keeps file arguments as-is and walks directory arguments
// for files with configured extensions. Dot-directories are skipped.
func (s *Service) expandPaths(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		root := p
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip inaccessible paths
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if s.extensions[strings.ToLower(filepath.Ext(path))] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
