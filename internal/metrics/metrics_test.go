package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordNotification(t *testing.T) {
	c := notificationsTotal.WithLabelValues("WARNING")
	before := testutil.ToFloat64(c)
	RecordNotification("WARNING")
	RecordNotification("WARNING")
	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestRecordFlush(t *testing.T) {
	ok := flushesTotal.WithLabelValues(ResultOK)
	failed := flushesTotal.WithLabelValues(ResultError)
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordFlush(nil)
	RecordFlush(errors.New("disk full"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}

func TestRecordActivation(t *testing.T) {
	c := activationsTotal.WithLabelValues(ResultRejected)
	before := testutil.ToFloat64(c)
	RecordActivation(ResultRejected)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
