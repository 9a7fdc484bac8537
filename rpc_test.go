package demodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRpcResolvesEmptyForAnyCall(t *testing.T) {
	t.Parallel()
	client := New(Config{})
	ctx := context.Background()

	for _, fn := range []string{"recalcular_progressao", "enviar_campanha", ""} {
		res := client.Rpc(ctx, fn, map[string]any{"user_id": "u-1"})
		assert.NoError(t, res.Error)
		assert.Empty(t, res.Data)
		assert.Zero(t, res.Count)
	}
}

func TestRpcHonorsCancelledContext(t *testing.T) {
	t.Parallel()
	client := New(Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := client.Rpc(ctx, "qualquer", nil)
	assert.ErrorIs(t, res.Error, context.Canceled)
}
