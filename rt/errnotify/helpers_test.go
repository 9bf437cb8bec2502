package errnotify

import "sync"

type logLine struct {
	Level string
	Msg   string
	Args  []any
}

// recordLogger is a Logger that keeps every line in memory.
type recordLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (l *recordLogger) Info(msg string, args ...any)  { l.add("INFO", msg, args) }
func (l *recordLogger) Warn(msg string, args ...any)  { l.add("WARN", msg, args) }
func (l *recordLogger) Error(msg string, args ...any) { l.add("ERROR", msg, args) }

func (l *recordLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, logLine{Level: level, Msg: msg, Args: args})
}

func (l *recordLogger) Lines() []logLine {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]logLine, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *recordLogger) Messages() []string {
	lines := l.Lines()
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.Msg
	}
	return out
}

func newRecorded(opts ...Option) (*Notifier, *recordLogger) {
	rl := &recordLogger{}
	return New(append([]Option{WithLogger(rl)}, opts...)...), rl
}

func errorSubscriber(error) {}

func bad() {}

func wrongFirst(string, error) {}

func tooMany(error, any, Failback, int) {}

type handlerFunc func(err error, opts any)

type structSubscriber struct {
	got []error
}

func (s *structSubscriber) NotifyError(err error, _ any, _ Failback) { s.got = append(s.got, err) }

func (s *structSubscriber) SubscriberName() string { return "struct-subscriber" }

type anonymousSubscriber struct{}

func (anonymousSubscriber) NotifyError(error, any, Failback) {}

type fieldNamedSubscriber struct {
	name string
}

func (s *fieldNamedSubscriber) NotifyError(error, any, Failback) {}

func (s *fieldNamedSubscriber) SubscriberName() string { return s.name }

// callbackLogger runs onLog for every line, after recording it.
type callbackLogger struct {
	recordLogger
	onLog func()
}

func (l *callbackLogger) Info(msg string, args ...any)  { l.add("INFO", msg, args); l.onLog() }
func (l *callbackLogger) Warn(msg string, args ...any)  { l.add("WARN", msg, args); l.onLog() }
func (l *callbackLogger) Error(msg string, args ...any) { l.add("ERROR", msg, args); l.onLog() }
