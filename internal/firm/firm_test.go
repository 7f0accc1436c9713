package firm

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gabapcia/firmchain/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error")
}

var errBoom = errors.New("boom")

// latestBlock matches the nil block number used for "latest" reads.
func latestBlock() any {
	return mock.MatchedBy(func(b *big.Int) bool { return b == nil })
}

// atBlock matches a block number argument equal to n.
func atBlock(n uint64) any {
	return mock.MatchedBy(func(b *big.Int) bool { return b != nil && b.IsUint64() && b.Uint64() == n })
}

func newTestClient(t *testing.T, source Source, opts ...Option) *Client {
	t.Helper()

	opts = append([]Option{WithRetryDelay(time.Millisecond)}, opts...)
	c, err := New(source, opts...)
	require.NoError(t, err)

	return c
}

// progressRecorder collects every error handed to a ProgressFunc.
type progressRecorder struct {
	mu   sync.Mutex
	errs []error
}

func (p *progressRecorder) observe(_ context.Context, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errs = append(p.errs, err)
}

func (p *progressRecorder) errors() []error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]error(nil), p.errs...)
}
