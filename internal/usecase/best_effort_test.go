package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunBestEffort_LogsFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	u := &LinkUsecase{logger: zap.New(core)}

	u.runBestEffort(context.Background(), "revalidate tag", func(context.Context) error {
		return errors.New("hook 500")
	})
	u.runBestEffort(context.Background(), "noop", func(context.Context) error {
		return nil
	})

	entries := logs.FilterMessage("best-effort task failed").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "revalidate tag", entries[0].ContextMap()["task"])
	}
}

func TestGoBestEffort_RecoversPanic(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	u := &LinkUsecase{logger: zap.New(core)}

	u.goBestEffort(context.Background(), "increment clicks", func(context.Context) error {
		panic("boom")
	})
	u.Wait()

	assert.Equal(t, 1, logs.FilterMessage("best-effort task panicked").Len())
}

func TestGoBestEffort_HasDeadline(t *testing.T) {
	u := &LinkUsecase{logger: zap.NewNop()}

	var hasDeadline bool
	u.goBestEffort(context.Background(), "deadline", func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	})
	u.Wait()

	assert.True(t, hasDeadline)
}
