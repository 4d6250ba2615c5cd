package app

// Event names the slice of state a mutation changed.
type Event int

const (
	EventRecipe Event = iota
	EventServings
	EventSearch
	EventPage
	EventBookmarks
)

func (e Event) String() string {
	switch e {
	case EventRecipe:
		return "recipe"
	case EventServings:
		return "servings"
	case EventSearch:
		return "search"
	case EventPage:
		return "page"
	case EventBookmarks:
		return "bookmarks"
	default:
		return "unknown"
	}
}

// Handler runs synchronously on the goroutine that mutated the store.
type Handler func(Event)

// Subscribe registers h for ev. Handlers of one event run in registration
// order; nothing is promised across events.
func (s *Store) Subscribe(ev Event, h Handler) {
	if h == nil {
		return
	}
	s.handlers[ev] = append(s.handlers[ev], h)
}

func (s *Store) publish(ev Event) {
	for _, h := range s.handlers[ev] {
		h(ev)
	}
}
