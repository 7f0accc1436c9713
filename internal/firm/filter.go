package firm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"

	"github.com/gabapcia/firmchain/internal/pkg/logger"
	"github.com/gabapcia/firmchain/internal/pkg/validator"
)

const headChannelBufferSize = 16

// ErrSubscriptionClosed is delivered to handlers when the new head
// subscription ends without reporting a cause.
var ErrSubscriptionClosed = errors.New("new head subscription closed")

// FilterSpec describes which logs a Filter matches. The block bounds exist
// for compatibility with eth_newFilter style arguments: only an empty value
// or "latest" is accepted, since every read is pinned to the confirmed block.
type FilterSpec struct {
	FromBlock string `validate:"omitempty,oneof=latest"`
	ToBlock   string `validate:"omitempty,oneof=latest"`
	Addresses []common.Address
	Topics    [][]common.Hash
}

func (s FilterSpec) validate() error {
	if err := validator.Validate(s); err != nil {
		return usageError("unsupported filter: %v", err)
	}

	return nil
}

// LogHandler receives confirmed logs from a watched Filter. For failures
// the log is the zero value and err is set; the watch keeps running.
type LogHandler func(ctx context.Context, log types.Log, err error)

type watcher struct {
	handler LogHandler
	opts    callOptions
}

// watchSession is the state of one Idle to Watching transition.
type watchSession struct {
	cancel   context.CancelFunc
	watchers []watcher

	// last confirmed block delivered during this session
	last      uint64
	delivered bool
}

// Filter reads logs at the confirmed block, once or on every new head.
// Get may be called concurrently; Watch and StopWatching are serialized.
type Filter struct {
	client        *Client
	query         ethereum.FilterQuery
	checkpointKey string

	mu      sync.Mutex
	session *watchSession
}

// Filter builds a Filter for spec. It returns an ErrUsage error for block
// bounds other than "" and "latest" without touching the source.
func (c *Client) Filter(spec FilterSpec) (*Filter, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	return newFilter(c, ethereum.FilterQuery{
		Addresses: spec.Addresses,
		Topics:    spec.Topics,
	}), nil
}

func newFilter(c *Client, query ethereum.FilterQuery) *Filter {
	return &Filter{client: c, query: query}
}

// Query returns the log query without block bounds.
func (f *Filter) Query() ethereum.FilterQuery {
	return f.query
}

// WithCertainty returns an Idle copy of f reading at a different depth.
func (f *Filter) WithCertainty(certainty uint64) *Filter {
	clone := newFilter(f.client.WithCertainty(certainty), f.query)
	clone.checkpointKey = f.checkpointKey
	return clone
}

// WithCheckpoint returns an Idle copy of f whose watches persist the last
// delivered block under key in the client's CheckpointStorage.
func (f *Filter) WithCheckpoint(key string) *Filter {
	clone := newFilter(f.client, f.query)
	clone.checkpointKey = key
	return clone
}

// confirmed returns the confirmed block. ok is false when the chain is still
// shorter than the certainty depth.
func (f *Filter) confirmed(ctx context.Context) (block uint64, ok bool, err error) {
	block, err = f.client.confirmedBlock(ctx)
	if errors.Is(err, ErrNotConfirmable) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read chain head: %w", err)
	}

	return block, true, nil
}

// logsAt queries the logs of a single block.
func (f *Filter) logsAt(ctx context.Context, block uint64) ([]types.Log, error) {
	q := f.query
	q.FromBlock = new(big.Int).SetUint64(block)
	q.ToBlock = new(big.Int).SetUint64(block)

	logs, err := f.client.source.FilterLogs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to filter logs at block %d: %w", block, err)
	}

	return logs, nil
}

// Get returns the logs matching the filter at the confirmed block. An empty
// slice is a valid result, including while the chain is shorter than the
// certainty depth.
func (f *Filter) Get(ctx context.Context, opts ...CallOption) ([]types.Log, error) {
	block, ok, err := f.confirmed(ctx)
	if err != nil {
		buildCallOptions(opts).report(ctx, err)
		return nil, err
	}
	if !ok {
		return []types.Log{}, nil
	}

	logs, err := f.logsAt(ctx, block)
	if err != nil {
		buildCallOptions(opts).report(ctx, err)
		return nil, err
	}

	if logs == nil {
		logs = []types.Log{}
	}

	return logs, nil
}

// Watch delivers every log matching the filter at each newly confirmed block
// to handler, one call per log. The first call subscribes to new heads; later
// calls add handler to the running watch. The watch stops when StopWatching
// is called or ctx is done.
func (f *Filter) Watch(ctx context.Context, handler LogHandler, opts ...CallOption) error {
	if handler == nil {
		return usageError("a log handler is required")
	}

	w := watcher{handler: handler, opts: buildCallOptions(opts)}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.session != nil {
		f.session.watchers = append(f.session.watchers, w)
		return nil
	}

	headCh := make(chan *types.Header, headChannelBufferSize)
	sub, err := f.client.source.SubscribeNewHead(ctx, headCh)
	if err != nil {
		return fmt.Errorf("failed to subscribe to new heads: %w", err)
	}

	ctx, cancel := context.WithCancel(logger.Derive(ctx, "firm.watch_id", uuid.NewString()))
	s := &watchSession{cancel: cancel, watchers: []watcher{w}}
	f.session = s

	go f.run(ctx, s, sub, headCh)
	return nil
}

// StopWatching ends the running watch. Deliveries already in progress finish
// normally. Calling it while Idle does nothing.
func (f *Filter) StopWatching() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.session == nil {
		return
	}

	f.session.cancel()
	f.session = nil
}

// IsWatching reports whether a watch is running.
func (f *Filter) IsWatching() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.session != nil
}

func (f *Filter) watchers(s *watchSession) []watcher {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]watcher(nil), s.watchers...)
}

// run owns the subscription of s until ctx is done.
func (f *Filter) run(ctx context.Context, s *watchSession, sub ethereum.Subscription, headCh chan *types.Header) {
	defer func() {
		if sub != nil {
			sub.Unsubscribe()
		}

		f.mu.Lock()
		if f.session == s {
			f.session = nil
		}
		f.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-headCh:
			f.poll(ctx, s)
		case err := <-sub.Err():
			sub.Unsubscribe()
			if err == nil {
				err = ErrSubscriptionClosed
			}

			f.fail(ctx, s, fmt.Errorf("new head subscription failed: %w", err))

			if sub = f.resubscribe(ctx, s, headCh); sub == nil {
				return
			}
		}
	}
}

// resubscribe waits RetryDelay and subscribes again until it succeeds or ctx
// is done, in which case it returns nil.
func (f *Filter) resubscribe(ctx context.Context, s *watchSession, headCh chan *types.Header) ethereum.Subscription {
	timer := time.NewTimer(f.client.cfg.RetryDelay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		sub, err := f.client.source.SubscribeNewHead(ctx, headCh)
		if err == nil {
			logger.Info(ctx, "new head subscription restored", "firm.checkpoint_key", f.checkpointKey)
			return sub
		}

		if ctx.Err() != nil {
			return nil
		}

		f.fail(ctx, s, fmt.Errorf("failed to subscribe to new heads: %w", err))
		timer.Reset(f.client.cfg.RetryDelay)
	}
}

// poll delivers the logs of every confirmed block not delivered yet, one
// block at a time, starting after the last block delivered by the session or
// recorded in the checkpoint. A fresh session without a checkpoint starts at
// the current confirmed block.
//
// Once a head notification has been received, the block being read is
// delivered (or its error reported) even if the watch is stopped meanwhile.
// Remaining blocks of a gap are left to the next session.
func (f *Filter) poll(ctx context.Context, s *watchSession) {
	readCtx := context.WithoutCancel(ctx)

	confirmed, ok, err := f.confirmed(readCtx)
	if err != nil {
		f.fail(readCtx, s, err)
		return
	}
	if !ok {
		return
	}

	from, err := f.nextBlock(readCtx, s, confirmed)
	if err != nil {
		f.fail(readCtx, s, err)
		return
	}

	for block := from; block <= confirmed; block++ {
		logs, err := f.logsAt(readCtx, block)
		if err != nil {
			f.fail(readCtx, s, err)
			return
		}

		f.deliver(readCtx, s, block, logs)

		if ctx.Err() != nil {
			return
		}
	}
}

// nextBlock returns the first block poll has to read.
func (f *Filter) nextBlock(ctx context.Context, s *watchSession, confirmed uint64) (uint64, error) {
	from := confirmed
	if s.delivered {
		from = s.last + 1
	}

	if f.checkpointKey == "" {
		return from, nil
	}

	last, err := f.client.checkpoints.LoadLatestCheckpoint(ctx, f.checkpointKey)
	if errors.Is(err, ErrNoCheckpointFound) {
		return from, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load watch checkpoint: %w", err)
	}

	if !s.delivered || last+1 > from {
		from = last + 1
	}

	return from, nil
}

// deliver hands logs of block to every watcher of s and records the block as
// delivered.
func (f *Filter) deliver(ctx context.Context, s *watchSession, block uint64, logs []types.Log) {
	watchers := f.watchers(s)
	for _, log := range logs {
		for _, w := range watchers {
			w.handler(ctx, log, nil)
		}
	}

	f.client.metrics.recordDelivered(ctx, len(logs))
	s.last, s.delivered = block, true

	if f.checkpointKey == "" {
		return
	}

	if err := f.client.checkpoints.SaveCheckpoint(ctx, f.checkpointKey, block); err != nil {
		logger.Error(ctx, "failed to save watch checkpoint",
			"firm.checkpoint_key", f.checkpointKey,
			"firm.block", block,
			"error", err,
		)
	}
}

// fail hands err to every handler and progress observer of s.
func (f *Filter) fail(ctx context.Context, s *watchSession, err error) {
	logger.Warn(ctx, "watch attempt failed",
		"firm.checkpoint_key", f.checkpointKey,
		"error", err,
	)

	deliverCtx := context.WithoutCancel(ctx)
	for _, w := range f.watchers(s) {
		w.handler(deliverCtx, types.Log{}, err)
		w.opts.report(deliverCtx, err)
	}
}
