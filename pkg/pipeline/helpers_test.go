package pipeline_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dataprep/pkg/pipeline"
	"github.com/askiada/go-dataprep/pkg/pipeline/model"
)

func addIntRoot(t *testing.T, pipe *pipeline.Pipeline, total int) *model.Step[int] {
	t.Helper()

	root, err := pipeline.AddRootStep(pipe, "root", func(ctx context.Context, rootChan chan<- int) error {
		for i := 0; i < total; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- i:
			}
		}

		return nil
	})
	require.NoError(t, err)

	return root
}

type collector[I any] struct {
	mu  sync.Mutex
	got []I
}

func (c *collector[I]) sink(_ context.Context, input I) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = append(c.got, input)

	return nil
}

func (c *collector[I]) values() []I {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]I(nil), c.got...)
}

func double(_ context.Context, input int) (int, error) {
	return input * 2, nil
}

// shaped implements measure.Shaper.
type shaped struct {
	rows, cols int
}

func (s shaped) Shape() (int, int) { return s.rows, s.cols }
