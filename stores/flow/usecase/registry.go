package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/goroutine"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/metrics"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/flow"
)

type RegistryCfg struct {
	// Timeout bounds every flow; zero means no deadline.
	Timeout time.Duration
	// Retention is how long terminal flows stay readable; zero keeps them.
	Retention time.Duration
}

type entry struct {
	flow      flow.Flow
	cancel    context.CancelFunc
	cancelled bool
	done      chan struct{}
}

type registry struct {
	timeout   time.Duration
	retention time.Duration
	metrics   metrics.Service

	mu    sync.Mutex
	flows map[string]*entry
	byKey map[string]string
}

func NewRegistry(cfg *RegistryCfg) flow.Registry {
	return &registry{
		timeout:   cfg.Timeout,
		retention: cfg.Retention,
		metrics:   metrics.New("flow"),
		flows:     map[string]*entry{},
		byKey:     map[string]string{},
	}
}

// Start detaches the flow from c's cancellation, so a request returning
// early does not abort a write already handed to the wallet.
func (r *registry) Start(c ctx.Ctx, kind flow.Kind, key string, fn flow.Run) (*flow.Flow, error) {
	r.mu.Lock()
	if id, ok := r.byKey[key]; ok {
		r.mu.Unlock()
		c.WithFields(log.Fields{"key": key, "flowId": id}).Warn("flow busy")
		return nil, xerrors.Errorf("%s: %w", key, domain.ErrFlowBusy)
	}
	r.pruneLocked(time.Now())

	id := uuid.NewString()
	runCtx := ctx.Detach(ctx.WithValues(c, map[string]interface{}{
		"flowId": id,
		"flow":   string(kind),
	}))
	var cancel context.CancelFunc
	if r.timeout > 0 {
		runCtx, cancel = ctx.WithTimeout(runCtx, r.timeout)
	} else {
		runCtx, cancel = ctx.WithCancel(runCtx)
	}

	now := time.Now()
	e := &entry{
		flow: flow.Flow{
			Id:        id,
			Kind:      kind,
			Key:       key,
			State:     flow.StateSubmitting,
			Pending:   true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		cancel: cancel,
		done:   make(chan struct{}),
	}
	r.flows[id] = e
	r.byKey[key] = id
	snapshot := e.flow
	r.mu.Unlock()

	runCtx.Info("flow started")

	// the deadline or a cancel fails the flow even if fn never returns
	go func() {
		<-runCtx.Done()
		r.interrupt(runCtx, id)
	}()

	goroutine.RecoverableGo(func() {
		res, err := fn(runCtx, &progress{r: r, id: id})
		r.finish(runCtx, id, res, err)
	}, goroutine.WithLogger(runCtx.Logger), goroutine.WithAfterRecovered(func(p interface{}, _ []byte) {
		r.finish(runCtx, id, nil, xerrors.Errorf("panic: %v", p))
	}))

	return &snapshot, nil
}

type progress struct {
	r  *registry
	id string
}

func (p *progress) Confirming(txHash domain.TxHash) {
	p.r.mu.Lock()
	defer p.r.mu.Unlock()
	e, ok := p.r.flows[p.id]
	if !ok || e.flow.State.Terminal() {
		return
	}
	e.flow.State = flow.StateConfirming
	e.flow.TxHash = txHash
	e.flow.UpdatedAt = time.Now()
}

func (r *registry) finish(c ctx.Ctx, id string, res *flow.Result, err error) {
	r.mu.Lock()
	e, ok := r.flows[id]
	if !ok || e.flow.State.Terminal() {
		r.mu.Unlock()
		if err != nil {
			c.WithField("err", err).Warn("flow returned after it was closed")
		}
		return
	}
	if err != nil {
		r.failLocked(e, err)
	} else {
		e.flow.State = flow.StateSuccess
		if res != nil {
			e.flow.TokenId = res.TokenId
			e.flow.Redirect = res.Redirect
		}
		r.closeLocked(e)
	}
	f := e.flow
	r.mu.Unlock()

	r.report(c, f, err)
}

// interrupt fails a flow still running when its context ends.
func (r *registry) interrupt(c ctx.Ctx, id string) {
	r.mu.Lock()
	e, ok := r.flows[id]
	if !ok || e.flow.State.Terminal() {
		r.mu.Unlock()
		return
	}
	err := xerrors.Errorf("deadline %s exceeded: %w", r.timeout, domain.ErrTimeout)
	if e.cancelled {
		err = xerrors.Errorf("cancelled by user: %w", domain.ErrCancelled)
	}
	r.failLocked(e, err)
	f := e.flow
	r.mu.Unlock()

	r.report(c, f, err)
}

func (r *registry) failLocked(e *entry, err error) {
	e.flow.State = flow.StateFailed
	e.flow.Error = flow.ClassifyError(err)
	e.flow.Message = err.Error()
	r.closeLocked(e)
}

func (r *registry) closeLocked(e *entry) {
	e.flow.Pending = false
	e.flow.UpdatedAt = time.Now()
	if r.byKey[e.flow.Key] == e.flow.Id {
		delete(r.byKey, e.flow.Key)
	}
	e.cancel()
	close(e.done)
}

func (r *registry) report(c ctx.Ctx, f flow.Flow, err error) {
	if f.State == flow.StateSuccess {
		r.metrics.BumpSum(string(f.Kind)+".success", 1)
		c.WithFields(log.Fields{"txHash": f.TxHash, "tokenId": f.TokenId}).Info("flow succeeded")
		return
	}
	r.metrics.BumpSum(string(f.Kind)+".failed", 1, "error", string(f.Error))
	c.WithFields(log.Fields{"err": err, "kind": f.Error}).Error("flow failed")
}

func (r *registry) pruneLocked(now time.Time) {
	if r.retention <= 0 {
		return
	}
	for id, e := range r.flows {
		if e.flow.State.Terminal() && now.Sub(e.flow.UpdatedAt) > r.retention {
			delete(r.flows, id)
		}
	}
}

func (r *registry) Get(id string) (*flow.Flow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.flows[id]
	if !ok {
		return nil, xerrors.Errorf("flow %s: %w", id, domain.ErrNotFound)
	}
	f := e.flow
	return &f, nil
}

// Cancel fails a running flow right away. A terminal flow is returned as is.
func (r *registry) Cancel(id string) (*flow.Flow, error) {
	r.mu.Lock()
	e, ok := r.flows[id]
	if !ok {
		r.mu.Unlock()
		return nil, xerrors.Errorf("flow %s: %w", id, domain.ErrNotFound)
	}
	if !e.flow.State.Terminal() {
		e.cancelled = true
	}
	cancel := e.cancel
	r.mu.Unlock()

	cancel()
	<-e.done
	return r.Get(id)
}

func (r *registry) Wait(c ctx.Ctx, id string) (*flow.Flow, error) {
	r.mu.Lock()
	e, ok := r.flows[id]
	r.mu.Unlock()
	if !ok {
		return nil, xerrors.Errorf("flow %s: %w", id, domain.ErrNotFound)
	}
	select {
	case <-e.done:
		return r.Get(id)
	case <-c.Done():
		return nil, c.Err()
	}
}

func (r *registry) Pending(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byKey[key]
	return ok
}
