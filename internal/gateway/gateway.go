// Package gateway implements the remote data gateways: stateless adapters that
// turn table and bucket calls into typed results for one entity family each.
//
// Every failure leaving a gateway is errs.ErrAuthRequired, *errs.BackendError
// or *errs.UploadError.
package gateway

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/session"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

type base struct {
	principal session.Principal
	log       *zap.Logger
}

func newBase(principal session.Principal, log *zap.Logger) base {
	if log == nil {
		log = zap.NewNop()
	}
	return base{principal: principal, log: log}
}

// call resolves the principal, runs fn and maps its outcome onto the gateway error set.
// Panics are recovered into a BackendError.
func call[T any](ctx context.Context, b base, op string, fn func(ctx context.Context, userID uuid.UUID) (T, error)) (out T, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("panic",
				zap.Any("reason", r),
				zap.ByteString("stack", debug.Stack()),
				zap.String("op", op),
			)
			var zero T
			out, err = zero, &errs.BackendError{Op: op, Err: fmt.Errorf("internal error: %v", r)}
		}
		// metadata only, never payloads
		b.log.Debug("gateway",
			zap.String("op", op),
			zap.Duration("dur", time.Since(start)),
			zap.Error(err),
		)
	}()

	userID, ok := b.principal.UserID()
	if !ok {
		return out, errs.ErrAuthRequired
	}
	out, err = fn(ctx, userID)
	if err != nil && !errs.IsUpload(err) {
		err = errs.Backend(op, err)
	}
	return out, err
}

type none struct{}
