package dom

// EventType names a UI event.
type EventType string

const (
	EventMouseOver EventType = "mouseover"
	EventMouseOut  EventType = "mouseout"
	EventClick     EventType = "click"
	EventKeyPress  EventType = "keypress"
)

// KeyEnter is the activation key.
const KeyEnter = "Enter"

// Event is delivered to listeners.
type Event struct {
	Type   EventType
	Key    string
	Target *Element
}

// Listener handles one event synchronously.
type Listener func(Event)

// AddEventListener registers fn for events of type t on e.
func (e *Element) AddEventListener(t EventType, fn Listener) {
	if fn == nil {
		return
	}
	n := e.Node()
	byType, ok := e.doc.listeners[n]
	if !ok {
		byType = make(map[EventType][]Listener)
		e.doc.listeners[n] = byType
	}
	byType[t] = append(byType[t], fn)
}

// Listeners returns how many listeners of type t are attached to e.
func (e *Element) Listeners(t EventType) int {
	return len(e.doc.listeners[e.Node()][t])
}

// Dispatch runs every listener for ev.Type on e and returns how many ran.
func (e *Element) Dispatch(ev Event) int {
	ev.Target = e
	// Copy so a listener that registers more listeners does not see them
	// in this dispatch.
	pending := append([]Listener(nil), e.doc.listeners[e.Node()][ev.Type]...)
	for _, fn := range pending {
		fn(ev)
	}
	return len(pending)
}

// Click dispatches a click.
func (e *Element) Click() int {
	return e.Dispatch(Event{Type: EventClick})
}

// PressKey dispatches a keypress for key.
func (e *Element) PressKey(key string) int {
	return e.Dispatch(Event{Type: EventKeyPress, Key: key})
}

// Hover dispatches mouseover.
func (e *Element) Hover() int {
	return e.Dispatch(Event{Type: EventMouseOver})
}

// Leave dispatches mouseout.
func (e *Element) Leave() int {
	return e.Dispatch(Event{Type: EventMouseOut})
}
