package measure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-dataprep/pkg/pipeline/measure"
)

func TestDefaultMetric(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	mt := msr.AddMetric("step", 2)
	assert.Same(t, mt, msr.GetMetric("step"))
	assert.Nil(t, msr.GetMetric("unknown"))

	assert.Equal(t, time.Duration(0), mt.AVGDuration())
	mt.AddDuration(2 * time.Millisecond)
	mt.AddDuration(4 * time.Millisecond)
	assert.Equal(t, int64(2), mt.Count())
	assert.Equal(t, 3*time.Millisecond, mt.AVGDuration())

	mt.AddTransportDuration("root", 8*time.Millisecond)
	mt.AddTransportDuration("root", 4*time.Millisecond)
	// averaged over the inputs then over the 2 workers
	assert.Equal(t, map[string]time.Duration{"root": 3 * time.Millisecond}, mt.AVGTransportDuration())
	assert.Equal(t, map[string]time.Duration{"root": 3 * time.Millisecond}, mt.AVGTransportDuration())

	_, _, ok := mt.Shape()
	assert.False(t, ok)
	mt.SetShape(3, 4)
	rows, cols, ok := mt.Shape()
	assert.True(t, ok)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)

	mt.SetTotalDuration(time.Second)
	assert.Equal(t, time.Second, mt.GetTotalDuration())
}

func TestAllMetricsIsACopy(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	msr.AddMetric("a", 1)
	all := msr.AllMetrics()
	delete(all, "a")
	assert.NotNil(t, msr.GetMetric("a"))
}
