// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие игрового цикла. Data зависит от Type, см. types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher доставляет события синхронно, в порядке подписки.
// Обработчик выполняется до возврата из Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for every given event type.
func (d *Dispatcher) Subscribe(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
