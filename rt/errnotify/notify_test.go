package errnotify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_CallsSubscribersInOrder(t *testing.T) {
	t.Parallel()

	n, rl := newRecorded()
	var seq []string
	var gotOpts []any
	var fbs []Failback

	n.Init([]any{
		Named{Name: "a", Func: func(err error, opts any, fb Failback) {
			seq = append(seq, "a:"+err.Error())
			gotOpts = append(gotOpts, opts)
			fbs = append(fbs, fb)
		}},
		Named{Name: "b", Func: func(err error, opts any, fb Failback) {
			seq = append(seq, "b:"+err.Error())
			gotOpts = append(gotOpts, opts)
			fbs = append(fbs, fb)
		}},
	}, true, false)

	n.Notify(errors.New("boom"), "ctx")

	assert.Equal(t, []string{"a:boom", "b:boom"}, seq)
	assert.Equal(t, []any{"ctx", "ctx"}, gotOpts)
	require.Len(t, fbs, 2)

	n.EnableLogging()
	fbs[0](nil, 1)
	fbs[1](nil, 2)
	assert.Equal(t, []logLine{
		{Level: "INFO", Msg: "Error subscriber a succeeded with", Args: []any{"data", 1}},
		{Level: "INFO", Msg: "Error subscriber b succeeded with", Args: []any{"data", 2}},
	}, rl.Lines())
}

func TestNotify_NilErrorIsIgnored(t *testing.T) {
	t.Parallel()

	n, _ := newRecorded()
	ss := &structSubscriber{}
	n.Init([]any{ss}, true, false)

	n.Notify(nil, nil)
	assert.Empty(t, ss.got)
}

func TestNotify_WorksWithCatchingDisabled(t *testing.T) {
	t.Parallel()

	n, _ := newRecorded()
	ss := &structSubscriber{}
	n.Init([]any{ss}, false, false)

	n.Notify(errors.New("manual"), nil)
	assert.Len(t, ss.got, 1)
}

func TestNotify_PanickingSubscriberStopsIteration(t *testing.T) {
	t.Parallel()

	for _, logging := range []bool{false, true} {
		n, rl := newRecorded()
		after := &structSubscriber{}
		calledBefore := false

		n.Init([]any{
			Named{Name: "before", Func: func(error) { calledBefore = true }},
			Named{Name: "broken", Func: func(error) { panic("subscriber boom") }},
			after,
		}, true, logging)

		assert.NotPanics(t, func() { n.Notify(errors.New("x"), nil) })
		assert.True(t, calledBefore)
		assert.Empty(t, after.got, "subscribers after a failing one are not notified (logging=%v)", logging)

		if !logging {
			assert.Empty(t, rl.Lines())
			continue
		}
		lines := rl.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "ERROR", lines[0].Level)
		assert.Equal(t, "Skipping error subscriber: broken", lines[0].Msg)
		assert.Equal(t, []any{"error", "subscriber boom"}, lines[0].Args)
	}
}

func TestMakeFailback_LogsWhenEnabled(t *testing.T) {
	t.Parallel()

	n, rl := newRecorded()
	n.EnableLogging()
	fb := n.MakeFailback("sub")

	err := errors.New("upload failed")
	fb(err, nil)
	fb(nil, map[string]int{"sent": 1})
	fb(err, "both")
	fb(nil, nil)

	assert.Equal(t, []logLine{
		{Level: "ERROR", Msg: "Error subscriber sub failed with error", Args: []any{"error", err}},
		{Level: "INFO", Msg: "Error subscriber sub succeeded with", Args: []any{"data", map[string]int{"sent": 1}}},
		{Level: "ERROR", Msg: "Error subscriber sub failed with error", Args: []any{"error", err}},
		{Level: "INFO", Msg: "Error subscriber sub succeeded with", Args: []any{"data", "both"}},
	}, rl.Lines())
}

func TestMakeFailback_NoopWhenLoggingDisabled(t *testing.T) {
	t.Parallel()

	n, rl := newRecorded()
	fb := n.MakeFailback("sub")
	fb(errors.New("x"), "data")
	assert.Empty(t, rl.Lines())

	// The flag is read at call time, not when the failback is made.
	n.EnableLogging()
	fb(nil, "late")
	assert.Equal(t, []string{"Error subscriber sub succeeded with"}, rl.Messages())
}

func TestNotify_FailbackCarriesSubscriberName(t *testing.T) {
	t.Parallel()

	n, rl := newRecorded()
	var saved Failback
	n.Init([]any{
		Named{Name: "async", Func: func(err error, _ any, fb Failback) { saved = fb }},
	}, true, true)

	n.Notify(errors.New("x"), nil)
	require.NotNil(t, saved)

	// Reported after the notify cycle returned.
	saved(nil, "delivered")
	assert.Equal(t, []string{"Error subscriber async succeeded with"}, rl.Messages())
}
