package session

// Subscribe returns a channel that receives the current state immediately
// and again after every change. Each channel holds at most one pending
// snapshot; a slow reader skips intermediate states and sees the newest.
// The returned func cancels the subscription and closes the channel.
func (c *Container) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	c.subMu.Lock()
	defer c.subMu.Unlock()

	select {
	case <-c.done:
		close(ch)
		return ch, func() {}
	default:
	}

	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.State()

	cancel := func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (c *Container) publish(s State) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	for _, ch := range c.subs {
		// drop the stale snapshot, if any, so the send below never blocks
		select {
		case <-ch:
		default:
		}
		ch <- s.clone()
	}
}
