package flow

import (
	"context"
	"errors"
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

type Kind string

const (
	KindBuy    Kind = "buy"
	KindResell Kind = "resell"
	KindMint   Kind = "mint"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateConfirming State = "confirming"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// Terminal reports whether the flow can no longer change.
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateFailed
}

type ErrorKind string

const (
	ErrorKindNone                 ErrorKind = ""
	ErrorKindConfigurationMissing ErrorKind = "ConfigurationMissing"
	ErrorKindWalletUnavailable    ErrorKind = "WalletUnavailable"
	ErrorKindUploadFailure        ErrorKind = "UploadFailure"
	ErrorKindTransactionFailed    ErrorKind = "TransactionFailed"
	ErrorKindMetadataUnresolvable ErrorKind = "MetadataUnresolvable"
	ErrorKindEventNotFound        ErrorKind = "EventNotFound"
	ErrorKindTimeout              ErrorKind = "Timeout"
	ErrorKindCancelled            ErrorKind = "Cancelled"
	ErrorKindUnknown              ErrorKind = "Unknown"
)

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{domain.ErrTimeout, ErrorKindTimeout},
	{context.DeadlineExceeded, ErrorKindTimeout},
	{domain.ErrCancelled, ErrorKindCancelled},
	{context.Canceled, ErrorKindCancelled},
	{domain.ErrConfigurationMissing, ErrorKindConfigurationMissing},
	{domain.ErrContractAddressMissing, ErrorKindConfigurationMissing},
	{domain.ErrWalletUnavailable, ErrorKindWalletUnavailable},
	{domain.ErrUploadFailure, ErrorKindUploadFailure},
	{domain.ErrTransactionFailed, ErrorKindTransactionFailed},
	{domain.ErrMetadataUnresolvable, ErrorKindMetadataUnresolvable},
	{domain.ErrEventNotFound, ErrorKindEventNotFound},
}

// ClassifyError maps a flow failure onto its kind.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrorKindNone
	}
	for _, ek := range errorKinds {
		if errors.Is(err, ek.err) {
			return ek.kind
		}
	}
	return ErrorKindUnknown
}

// Flow is a snapshot of one write.
type Flow struct {
	Id        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	Key       string         `json:"key"`
	State     State          `json:"state"`
	Pending   bool           `json:"pending"`
	Error     ErrorKind      `json:"error,omitempty"`
	Message   string         `json:"message,omitempty"`
	TxHash    domain.TxHash  `json:"txHash,omitempty"`
	TokenId   domain.TokenId `json:"tokenId,omitempty"`
	Redirect  string         `json:"redirect,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type Result struct {
	TokenId  domain.TokenId
	Redirect string
}

// Progress lets a running flow report that its transaction was submitted.
type Progress interface {
	Confirming(txHash domain.TxHash)
}

// Run is the body of a flow. It must honour c's cancellation.
type Run func(c ctx.Ctx, p Progress) (*Result, error)

type Registry interface {
	// Start runs fn in the background under key. Only one non-terminal flow
	// may hold a key; a second start fails with ErrFlowBusy.
	Start(c ctx.Ctx, kind Kind, key string, fn Run) (*Flow, error)
	Get(id string) (*Flow, error)
	Cancel(id string) (*Flow, error)
	// Wait blocks until the flow is terminal or c is done.
	Wait(c ctx.Ctx, id string) (*Flow, error)
	Pending(key string) bool
}
