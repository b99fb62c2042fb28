package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hooksync/pkg/utils/logging"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	newCtx := logging.With(ctx, logger)
	retrieved := logging.From(newCtx)
	gt.V(t, retrieved).Equal(logger)
}

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		ctx := context.Background()
		logger := slog.Default()
		ctx = logging.With(ctx, logger)

		retrieved := logging.From(ctx)
		gt.V(t, retrieved).Equal(logger)
	})

	t.Run("get logger from context without logger", func(t *testing.T) {
		ctx := context.Background()
		retrieved := logging.From(ctx)
		retrieved2 := logging.From(ctx)
		gt.V(t, retrieved).Equal(retrieved2)
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRunID(t *testing.T) {
	t.Run("get new run ID from context", func(t *testing.T) {
		ctx := context.Background()

		runID, newCtx := logging.CtxRunID(ctx)
		gt.V(t, string(runID)).NotEqual("")
		retrievedID, _ := logging.CtxRunID(newCtx)
		gt.V(t, retrievedID).Equal(runID)
	})

	t.Run("get existing run ID from context", func(t *testing.T) {
		ctx := context.Background()

		runID1, ctx1 := logging.CtxRunID(ctx)
		runID2, _ := logging.CtxRunID(ctx1)
		gt.V(t, runID2).Equal(runID1)
	})
}
