package sifc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-sif/sifc/pass/annotating"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	conf := DefaultConfig()
	require.NoError(t, conf.Validate())
	require.Equal(t, annotating.DefaultPasses, conf.Passes)
	require.True(t, conf.VerifyProducts)
	require.False(t, conf.StrictStageEdgeMerge)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	conf, err := LoadConfig(strings.NewReader(`
passes:
  - shuffle-edge-decoder
strict_stage_edge_merge: true
default_parallelism: 16
log_level: DEBUG
`))
	require.NoError(t, err)
	require.Equal(t, []string{annotating.ShuffleEdgeDecoderPassName}, conf.Passes)
	require.True(t, conf.StrictStageEdgeMerge)
	require.Equal(t, 16, conf.DefaultParallelism)
	require.Equal(t, "DEBUG", conf.LogLevel)
	// omitted fields keep their defaults
	require.True(t, conf.VerifyProducts)
	require.Equal(t, DefaultConfig().MaxConcurrentCompilations, conf.MaxConcurrentCompilations)
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"unknown field":       "verify: true\n",
		"malformed":           "passes: [\n",
		"zero concurrency":    "max_concurrent_compilations: 0\n",
		"negative parallel":   "default_parallelism: -2\n",
		"unknown pass":        "passes: [default-parallelism, fuse-everything]\n",
		"wrongly typed value": "default_parallelism: lots\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			conf, err := LoadConfig(strings.NewReader(raw))
			require.Error(t, err)
			require.Nil(t, conf)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sifc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_concurrent_compilations: 2\n"), 0o600))
	conf, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, conf.MaxConcurrentCompilations)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
