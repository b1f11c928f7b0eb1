package fabric_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solwyrm/tensegra/fabric"
)

func TestDefaultFeatures(t *testing.T) {
	t.Parallel()
	features := fabric.DefaultFeatures()
	assert.InDelta(t, 1.0, features(fabric.FeatureStiffness), floatTolerance)
	assert.InDelta(t, 300.0, features(fabric.FeatureIntervalCountdown), floatTolerance)
	assert.InDelta(t, 0.1, features(fabric.FeatureConnectorThreshold), floatTolerance)
	assert.InDelta(t, 0.01, features(fabric.FeatureGroundTolerance), floatTolerance)
	assert.InDelta(t, 1.0, features(fabric.FeatureBaseAltitude), floatTolerance)
}

func TestFeatureString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "stiffness", fabric.FeatureStiffness.String())
	assert.Equal(t, "connector_threshold", fabric.FeatureConnectorThreshold.String())
	assert.Equal(t, "unknown-feature", fabric.Feature(200).String())
}

func writeFeatureFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "features.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFeatures_OverlaysDefaults(t *testing.T) {
	path := writeFeatureFile(t, "stiffness: 2.5\nconnector_threshold: 0.2\n")

	features, err := fabric.LoadFeatures(path)
	require.NoError(t, err)

	assert.InDelta(t, 2.5, features(fabric.FeatureStiffness), floatTolerance)
	assert.InDelta(t, 0.2, features(fabric.FeatureConnectorThreshold), floatTolerance)
	// Untouched keys keep their defaults.
	assert.InDelta(t, 300.0, features(fabric.FeatureIntervalCountdown), floatTolerance)
}

func TestLoadFeatures_RejectsUnknownKey(t *testing.T) {
	path := writeFeatureFile(t, "stifness: 2.5\n")

	features, err := fabric.LoadFeatures(path)
	assert.Nil(t, features)
	assert.ErrorContains(t, err, "stifness")
}

func TestLoadFeatures_MissingFile(t *testing.T) {
	features, err := fabric.LoadFeatures(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Nil(t, features)
	assert.Error(t, err)
}
