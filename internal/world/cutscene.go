package world

// Cutscene is a timed scripted sequence. While active the player has no
// control and the loop offers fast-forward.
type Cutscene struct {
	Duration  float64
	remaining float64
	active    bool
	played    bool
}

// Start begins the cutscene unless it already played.
func (c *Cutscene) Start() {
	if c.played || c.Duration <= 0 {
		return
	}
	c.active = true
	c.played = true
	c.remaining = c.Duration
}

// Active reports whether the cutscene is running.
func (c *Cutscene) Active() bool { return c.active }

// Progress returns the completed fraction in [0, 1].
func (c *Cutscene) Progress() float64 {
	if c.Duration <= 0 {
		return 1
	}
	return 1 - c.remaining/c.Duration
}

// Advance consumes dt seconds of the cutscene.
func (c *Cutscene) Advance(dt float64) {
	if !c.active {
		return
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		c.active = false
	}
}
