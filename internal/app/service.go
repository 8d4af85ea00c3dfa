// Package app wires the haiku library to its adapters: configuration,
// dictionary loading, evaluator selection, file scanning and watch mode.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/corey/haikus"
	"github.com/corey/haikus/cmudict"
	"github.com/corey/haikus/internal/config"
)

// Service runs haiku detection with the configured dictionary,
// evaluators and scan settings. It is safe for concurrent use.
type Service struct {
	oracle     *haikus.Oracle
	evaluators []haikus.WeightedEvaluator
	minScore   float64
	extensions map[string]bool
	workers    int
}

// NewService builds a Service from configuration. The embedded
// dictionary is loaded once here; an extra dictionary file, when
// configured, is merged over it with its entries winning.
func NewService(cfg *config.Config) (*Service, error) {
	dict, err := cmudict.Load()
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	if cfg.Dictionary.ExtraPath != "" {
		f, err := os.Open(cfg.Dictionary.ExtraPath)
		if err != nil {
			return nil, fmt.Errorf("open extra dictionary: %w", err)
		}
		extra, err := cmudict.Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse extra dictionary %s: %w", cfg.Dictionary.ExtraPath, err)
		}
		for word, n := range extra {
			dict[word] = n
		}
	}

	evaluators, err := BuildEvaluators(cfg.Quality.Evaluators)
	if err != nil {
		return nil, err
	}

	exts := make(map[string]bool, len(cfg.Scan.Extensions))
	for _, ext := range cfg.Scan.Extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[ext] = true
	}

	return &Service{
		oracle:     haikus.NewOracle(dict),
		evaluators: evaluators,
		minScore:   cfg.Quality.MinScore,
		extensions: exts,
		workers:    cfg.Scan.Workers,
	}, nil
}

// Oracle returns the syllable counter backing the service.
func (s *Service) Oracle() *haikus.Oracle {
	return s.oracle
}

// Evaluators returns the weighted evaluator set in configured order.
func (s *Service) Evaluators() []haikus.WeightedEvaluator {
	return s.evaluators
}
