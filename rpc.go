package demodb

import "context"

// Rpc resolves any named remote procedure with no data and no error,
// regardless of arguments. Call sites driving logic off an RPC's return
// value observe a permanent no-op in demo mode.
func (c *Client) Rpc(ctx context.Context, fn string, params map[string]any) *Result {
	if err := ctx.Err(); err != nil {
		return &Result{Error: err}
	}
	c.logger.Debug("rpc ignored", "fn", fn, "params", params)
	return &Result{}
}
