package logrussink

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evan-idocoding/zcatch/rt/errnotify"
)

func TestLogger_Levels(t *testing.T) {
	base, hook := test.NewNullLogger()
	l := New(base)

	l.Info("succeeded", "data", 3)
	l.Warn("skipped")
	l.Error("failed", "error", "boom", "dangling")

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, logrus.Fields{"data": 3}, entries[0].Data)
	assert.Equal(t, logrus.WarnLevel, entries[1].Level)
	assert.Empty(t, entries[1].Data)
	assert.Equal(t, logrus.ErrorLevel, entries[2].Level)
	assert.Equal(t, logrus.Fields{"error": "boom", badKey: "dangling"}, entries[2].Data)
}

func TestNewEntry_KeepsFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	l := NewEntry(base.WithField("component", "billing"))

	l.Warn("skipped", 42, "x")

	e := hook.LastEntry()
	require.NotNil(t, e)
	assert.Equal(t, logrus.Fields{"component": "billing", "42": "x"}, e.Data)
}

func TestLogger_AsNotifierSink(t *testing.T) {
	base, hook := test.NewNullLogger()
	n := errnotify.New(errnotify.WithLogger(New(base)))

	n.Init([]any{"not a func"}, true, true)

	msgs := make([]string, 0, len(hook.AllEntries()))
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{
		"Skipping error subscriber: not a func at errorSubscribers index 0",
		"Subscriber is not a function",
		"No valid error subscribers provided. Use Init to pass valid error subscribers",
	}, msgs)
}
