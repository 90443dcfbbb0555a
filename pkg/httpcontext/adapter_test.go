package httpcontext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestAdapter_Attach(t *testing.T) {
	t.Run("Should propagate an incoming request id", func(t *testing.T) {
		adapter := NewAdapter(time.Second)
		reqCtx := &fasthttp.RequestCtx{}
		reqCtx.Request.Header.Set("X-Request-ID", "req-123")

		ctx, cancel := adapter.Attach(reqCtx)
		defer cancel()

		assert.Equal(t, "req-123", string(reqCtx.Response.Header.Peek("X-Request-ID")))
		_, ok := ctx.Deadline()
		assert.True(t, ok)
	})

	t.Run("Should mint a request id when none is supplied", func(t *testing.T) {
		adapter := NewAdapter(time.Second)
		reqCtx := &fasthttp.RequestCtx{}

		_, cancel := adapter.Attach(reqCtx)
		defer cancel()

		require.NotEmpty(t, reqCtx.Response.Header.Peek("X-Request-ID"))
	})

	t.Run("Should fall back to a default timeout", func(t *testing.T) {
		adapter := NewAdapter(0)
		reqCtx := &fasthttp.RequestCtx{}

		ctx, cancel := adapter.Attach(reqCtx)
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
	})
}
