package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/haikus"
	"github.com/corey/haikus/internal/config"
)

// frogText hides exactly one 5-7-5 haiku, Basho's pond.
const frogText = "an old silent pond a frog jumps into the pond splash silence again"

func testConfig() *config.Config {
	return &config.Config{
		Scan: config.ScanConfig{Extensions: []string{".txt"}, Workers: 2},
		Log:  config.LogConfig{Level: "info"},
	}
}

func newTestService(t *testing.T, mutate ...func(*config.Config)) *Service {
	t.Helper()
	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}
	svc, err := NewService(cfg)
	require.NoError(t, err)
	return svc
}

func TestNewService_Defaults(t *testing.T) {
	svc := newTestService(t)

	require.NotNil(t, svc.Oracle())
	assert.Len(t, svc.Evaluators(), 4)

	// The embedded dictionary is live.
	assert.Equal(t, 3, svc.Oracle().Count("beautiful"))
}

func TestNewService_ExtraDictionaryWins(t *testing.T) {
	extra := filepath.Join(t.TempDir(), "extra.txt")
	require.NoError(t, os.WriteFile(extra, []byte("pond 3\nfross 2\n"), 0o644))

	svc := newTestService(t, func(c *config.Config) {
		c.Dictionary.ExtraPath = extra
	})

	assert.Equal(t, 3, svc.Oracle().Count("pond"))
	assert.Equal(t, 2, svc.Oracle().Count("fross"))
}

func TestNewService_MissingExtraDictionary(t *testing.T) {
	cfg := testConfig()
	cfg.Dictionary.ExtraPath = filepath.Join(t.TempDir(), "absent.txt")

	_, err := NewService(cfg)
	assert.Error(t, err)
}

func TestNewService_UnknownEvaluator(t *testing.T) {
	cfg := testConfig()
	cfg.Quality.Evaluators = []config.EvaluatorWeight{{Name: "sparkle", Weight: 1}}

	_, err := NewService(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkle")
}

func TestBuildEvaluators_AllRegistryNames(t *testing.T) {
	for _, name := range EvaluatorNames() {
		evs, err := BuildEvaluators([]config.EvaluatorWeight{{Name: name, Weight: 2}})
		require.NoError(t, err, name)
		require.Len(t, evs, 1)
		assert.Equal(t, name, EvaluatorName(evs[0].Evaluator))
		assert.Equal(t, 2.0, evs[0].Weight)
	}
}

func TestBuildEvaluators_EmptyMeansDefaults(t *testing.T) {
	evs, err := BuildEvaluators(nil)
	require.NoError(t, err)
	assert.Len(t, evs, len(haikus.DefaultEvaluators()))
}

func TestEvaluatorName_Custom(t *testing.T) {
	ev := haikus.EvaluatorFunc(func(*haikus.Haiku) float64 { return 1 })
	assert.Equal(t, "custom", EvaluatorName(ev))
}
