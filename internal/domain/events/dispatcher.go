package events

import "sync"

const (
	KindCodeRedeemed    = "code.redeemed"
	KindFilePreDownload = "file.pre_download"
)

// Event is published around redemption and download so external observers
// can react without the domain code knowing who is listening.
type Event struct {
	Kind      string
	SubjectID string
	// Payload carries the domain object the event is about.
	Payload any
}

type Handler func(Event)

// Dispatcher is a synchronous, in-process observer list. It is handed to
// the components that publish events at construction time; there is no
// process-wide registry.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

func (d *Dispatcher) Subscribe(kind string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Publish invokes every handler subscribed to the event's kind, in
// subscription order, on the caller's goroutine.
func (d *Dispatcher) Publish(e Event) {
	if d == nil {
		return
	}
	d.mu.RLock()
	handlers := d.handlers[e.Kind]
	d.mu.RUnlock()
	for _, h := range handlers {
		h(e)
	}
}
