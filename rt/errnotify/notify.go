package errnotify

// Notify hands err and opts to every subscriber, in registration order.
//
// Each subscriber gets its own Failback. If a subscriber panics, the panic is recovered,
// logged (if logging is enabled), and the remaining subscribers are NOT notified of err.
//
// A nil err is ignored. Notify does not consult the catching flag, so it can be used to
// report errors manually.
func (n *Notifier) Notify(err error, opts any) {
	if err == nil {
		return
	}
	for _, s := range n.list() {
		if !n.notifyOne(s, err, opts) {
			return
		}
	}
}

func (n *Notifier) notifyOne(s Subscriber, err error, opts any) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			ok = false
			if n.logging.Load() {
				n.log().Error(msgSkipping+s.Name, "error", p)
			}
		}
	}()
	s.fn(err, opts, n.MakeFailback(s.Name))
	return true
}

// MakeFailback returns a Failback that logs outcomes reported by the subscriber called name.
//
// The logging flag is checked on every call; with logging disabled the Failback does nothing.
// A non-nil err and a non-nil data are logged independently.
func (n *Notifier) MakeFailback(name string) Failback {
	return func(err error, data any) {
		if !n.logging.Load() {
			return
		}
		if err != nil {
			n.log().Error("Error subscriber "+name+" failed with error", "error", err)
		}
		if data != nil {
			n.log().Info("Error subscriber "+name+" succeeded with", "data", data)
		}
	}
}
