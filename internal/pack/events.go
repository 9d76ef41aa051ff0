package pack

// EventKind identifies a change to the component list.
type EventKind int

const (
	// EventReset means the whole list was replaced.
	EventReset EventKind = iota
	// EventInserted means a component was inserted at Index.
	EventInserted
	// EventRemoved means the component at Index was removed.
	EventRemoved
	// EventMoved means the component at Index swapped places with the one at To.
	EventMoved
	// EventChanged means the component at Index changed in place.
	EventChanged
)

func (k EventKind) String() string {
	switch k {
	case EventReset:
		return "reset"
	case EventInserted:
		return "inserted"
	case EventRemoved:
		return "removed"
	case EventMoved:
		return "moved"
	case EventChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// Event describes one change. Events are delivered after the change is made.
type Event struct {
	Kind  EventKind
	Index int
	To    int
}

// Subscribe registers fn for change events and returns a function that
// unregisters it. fn is called on the goroutine that made the change, after
// the list lock has been released, so it may read the list.
func (l *List) Subscribe(fn func(Event)) (cancel func()) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()

	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	return func() {
		l.subsMu.Lock()
		defer l.subsMu.Unlock()
		delete(l.subs, id)
	}
}

func (l *List) notify(events []Event) {
	if len(events) == 0 {
		return
	}
	l.subsMu.Lock()
	fns := make([]func(Event), 0, len(l.subs))
	for i := 0; i < l.nextSub; i++ {
		if fn, ok := l.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	l.subsMu.Unlock()

	for _, e := range events {
		for _, fn := range fns {
			fn(e)
		}
	}
}
