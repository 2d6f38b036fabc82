package scene

import "image/draw"

// Sprite is a visual element updated and drawn once per tick.
type Sprite interface {
	Update(dt float64)
	Draw(dst draw.Image)
}

// Animator is implemented by sprites that keep animating while the
// simulation is blocked, e.g. during a cutscene.
type Animator interface {
	Animate(dt float64)
}

// Group is an ordered set of sprites drawn back to front.
type Group struct {
	sprites []Sprite
}

// Add appends s unless it is already a member.
func (g *Group) Add(s Sprite) {
	for _, existing := range g.sprites {
		if existing == s {
			return
		}
	}
	g.sprites = append(g.sprites, s)
}

// Remove drops s from the group.
func (g *Group) Remove(s Sprite) {
	for i, existing := range g.sprites {
		if existing == s {
			g.sprites = append(g.sprites[:i], g.sprites[i+1:]...)
			return
		}
	}
}

// Len returns the number of sprites.
func (g *Group) Len() int { return len(g.sprites) }

// Update advances every sprite.
func (g *Group) Update(dt float64) {
	for _, s := range g.sprites {
		s.Update(dt)
	}
}

// UpdateBlocked advances only the visual interpolation of animators.
func (g *Group) UpdateBlocked(dt float64) {
	for _, s := range g.sprites {
		if a, ok := s.(Animator); ok {
			a.Animate(dt)
		}
	}
}

// Draw paints every sprite in insertion order.
func (g *Group) Draw(dst draw.Image) {
	for _, s := range g.sprites {
		s.Draw(dst)
	}
}
