package observable

type listenerEntry struct {
	fn     Listener
	active bool
}

type listenerList struct {
	entries []*listenerEntry
}

type subscription struct {
	list  *listenerList
	entry *listenerEntry
}

func (s *subscription) Unsubscribe() {
	if s.entry == nil || !s.entry.active {
		return
	}
	s.entry.active = false
	s.list.remove(s.entry)
}

func (l *listenerList) add(fn Listener) Subscription {
	e := &listenerEntry{fn: fn, active: true}
	l.entries = append(l.entries, e)
	return &subscription{list: l, entry: e}
}

func (l *listenerList) remove(e *listenerEntry) {
	for i, cur := range l.entries {
		if cur == e {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *listenerList) len() int {
	return len(l.entries)
}

// notify calls every listener registered at the time of the call. A listener
// removed by an earlier listener of the same round is skipped.
func (l *listenerList) notify(oldValue, newValue any) {
	snapshot := make([]*listenerEntry, len(l.entries))
	copy(snapshot, l.entries)
	for _, e := range snapshot {
		if e.active {
			e.fn(oldValue, newValue)
		}
	}
}
