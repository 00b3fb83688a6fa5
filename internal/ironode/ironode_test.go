package ironode

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeflow/irdecode/internal/node"
)

func TestBuildMultiReceiver2_UnsupportedPairErrors(t *testing.T) {
	_, err := BuildMultiReceiver2([2]string{"nec", "nec16"}, 1_000_000)
	assert.Error(t, err)
}

func TestBuildMultiReceiver2_OrderIndependent(t *testing.T) {
	m1, err := BuildMultiReceiver2([2]string{"nec", "rc5"}, 1_000_000)
	require.NoError(t, err)
	require.NotNil(t, m1)

	m2, err := BuildMultiReceiver2([2]string{"rc5", "nec"}, 1_000_000)
	require.NoError(t, err)
	require.NotNil(t, m2)
}

func TestIRInExecutor_InitAndCleanupWithMockBackend(t *testing.T) {
	exec := NewIRInExecutor()

	err := exec.Init(map[string]interface{}{
		"pin_bcm":     17,
		"sampler_hz":  float64(1_000_000),
		"protocols":   []interface{}{"nec", "rc5"},
		"backend":     "mock",
		"mock_levels": []bool{true, false, true, false},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	msg, err := exec.Execute(ctx, node.Message{})
	assert.NoError(t, err)
	_ = msg // no frame completes from 4 static mock levels; just exercising the path

	require.NoError(t, exec.Cleanup())
}
