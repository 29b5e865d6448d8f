package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_WritesToSink(t *testing.T) {
	sink := NewMemorySink(10)
	d := NewDispatcher(sink, nil)

	d.Dispatch(Event{Action: "appointment_confirmed", Entity: "appointment", EntityID: "APT-1"})
	d.Dispatch(Event{Action: "appointment_cancelled", Entity: "appointment", EntityID: "APT-2", Metadata: map[string]string{"by": "staff"}})
	d.Close()

	logs, err := d.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "appointment_cancelled", logs[0].Action)
	assert.JSONEq(t, `{"by":"staff"}`, logs[0].Metadata)
	assert.Equal(t, "APT-1", logs[1].EntityID)
}

func TestDispatcher_DropsAfterClose(t *testing.T) {
	sink := NewMemorySink(10)
	d := NewDispatcher(sink, nil)
	d.Close()

	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "late"}) })
	d.Close()

	logs, err := d.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestDispatcher_NilSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}

func TestMemorySink_KeepsLatest(t *testing.T) {
	s := NewMemorySink(2)
	ctx := context.Background()
	for _, a := range []string{"a", "b", "c"} {
		d := Event{Action: a}
		require.NoError(t, s.Write(ctx, toLog(d)))
	}

	logs, _ := s.List(ctx, 10)
	require.Len(t, logs, 2)
	assert.Equal(t, "c", logs[0].Action)
	assert.Equal(t, "b", logs[1].Action)

	logs, _ = s.List(ctx, 1)
	assert.Len(t, logs, 1)
}
