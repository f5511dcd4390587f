package middlewares

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/soulsync/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction commits when the handler responds with a status below 400 and rolls back otherwise.
// The response is held back until the commit succeeds, so a failed commit turns into a 500.
// Functions registered with AfterCommit run once the commit succeeds and are dropped on rollback.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "request_id", requestID(r.Context()), "error", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, commitHooksKey{}, hooks)

			bw := &bufferedWriter{header: w.Header(), statusCode: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "request_id", requestID(ctx), "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "request_id", requestID(ctx), "error", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			hooks.run()
			bw.flush(w)
		})
	}
}

// bufferedWriter collects a response so it can be sent after the transaction ends.
// Headers go straight to the underlying writer's header map.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedWriter) Header() http.Header { return bw.header }

func (bw *bufferedWriter) WriteHeader(code int) { bw.statusCode = code }

func (bw *bufferedWriter) Write(b []byte) (int, error) { return bw.body.Write(b) }

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	w.WriteHeader(bw.statusCode)
	if _, err := bw.body.WriteTo(w); err != nil {
		logger.Log.Errorw("failed to write response", "error", err)
	}
}

type txKey struct{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

type commitHooksKey struct{}

type commitHooks struct {
	mu  sync.Mutex
	fns []func()
}

func (h *commitHooks) add(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

func (h *commitHooks) run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// AfterCommit defers fn until the request transaction in ctx commits.
// Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(commitHooksKey{}).(*commitHooks)
	if !ok {
		fn()
		return
	}
	hooks.add(fn)
}
