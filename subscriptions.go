package vcui

// Subscriptions collects the tokens of one owner, so they can be removed together on teardown.
// The zero value is not usable, create with NewSubscriptions.
type Subscriptions struct {
	bus    *Bus
	tokens []Token
}

func NewSubscriptions(bus *Bus) *Subscriptions {
	return &Subscriptions{bus: bus}
}

// Add subscribes fn to category c and keeps the token.
func (s *Subscriptions) Add(c Category, fn Handler) error {
	t, err := s.bus.Subscribe(c, fn)
	if err != nil {
		return err
	}
	s.tokens = append(s.tokens, t)
	return nil
}

// Len returns the number of subscriptions held.
func (s *Subscriptions) Len() int {
	return len(s.tokens)
}

// Close unsubscribes everything. Calling it again is a no-op.
func (s *Subscriptions) Close() {
	for _, t := range s.tokens {
		s.bus.Unsubscribe(t)
	}
	s.tokens = nil
}
