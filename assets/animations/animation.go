package animations

import (
	"sort"

	"github.com/automoto/trianglejam/character"
)

// Animation is a timed clip. Time is in seconds.
type Animation struct {
	Length   float64
	Looped   bool // Set once a looping clip wraps
	loop     bool
	elapsed  float64
	finished bool
}

func NewAnimation(length float64, loop bool) *Animation {
	return &Animation{Length: length, loop: loop}
}

// Update advances the clip and reports whether a one-shot clip finished.
func (a *Animation) Update(dt float64) bool {
	if a.finished {
		return false
	}
	a.elapsed += dt
	if a.elapsed < a.Length {
		return false
	}
	if a.loop {
		a.Looped = true
		for a.elapsed >= a.Length {
			a.elapsed -= a.Length
		}
		return false
	}
	a.elapsed = a.Length
	a.finished = true
	return true
}

// Progress returns the playback position in [0, 1].
func (a *Animation) Progress() float64 {
	if a.Length <= 0 {
		return 1
	}
	return a.elapsed / a.Length
}

func (a *Animation) Restart() {
	a.elapsed = 0
	a.finished = false
	a.Looped = false
}

type playing struct {
	anim  *Animation
	onEnd []func(interrupted bool)
	seq   int
}

// Player plays montages by name. It implements character.Animator.
type Player struct {
	lengths map[character.Montage]float64
	active  map[character.Montage]*playing
	seq     int
}

var _ character.Animator = (*Player)(nil)

// NewPlayer creates a player that knows the given clip lengths. A montage
// with no positive length cannot be played.
func NewPlayer(lengths map[character.Montage]float64) *Player {
	l := make(map[character.Montage]float64, len(lengths))
	for k, v := range lengths {
		l[k] = v
	}
	return &Player{
		lengths: l,
		active:  make(map[character.Montage]*playing),
	}
}

// Play starts m from the beginning and returns its length, or 0 if m is
// unknown. Replacing a playing montage ends it as interrupted.
func (p *Player) Play(m character.Montage, loop bool) float64 {
	length := p.lengths[m]
	if length <= 0 {
		return 0
	}
	if old, ok := p.active[m]; ok {
		delete(p.active, m)
		fire(old, true)
	}
	p.seq++
	p.active[m] = &playing{anim: NewAnimation(length, loop), seq: p.seq}
	return length
}

func (p *Player) IsPlaying(m character.Montage) bool {
	_, ok := p.active[m]
	return ok
}

// Stop ends m as interrupted. The blend-out time is accepted for parity with
// the animation system and has no effect on when callbacks fire.
func (p *Player) Stop(m character.Montage, blendOut float64) {
	pl, ok := p.active[m]
	if !ok {
		return
	}
	delete(p.active, m)
	fire(pl, true)
}

// OnEnd registers fn for the current playback of m. It is dropped when m is
// not playing.
func (p *Player) OnEnd(m character.Montage, fn func(interrupted bool)) {
	if pl, ok := p.active[m]; ok {
		pl.onEnd = append(pl.onEnd, fn)
	}
}

// Update advances every playing montage and fires end callbacks in the order
// the montages were started.
func (p *Player) Update(dt float64) {
	var done []*playing
	for m, pl := range p.active {
		if pl.anim.Update(dt) {
			delete(p.active, m)
			done = append(done, pl)
		}
	}
	sort.Slice(done, func(i, j int) bool { return done[i].seq < done[j].seq })
	for _, pl := range done {
		fire(pl, false)
	}
}

// Progress reports how far m has played, and whether it is playing.
func (p *Player) Progress(m character.Montage) (float64, bool) {
	pl, ok := p.active[m]
	if !ok {
		return 0, false
	}
	return pl.anim.Progress(), true
}

// Playing lists the active montages in start order.
func (p *Player) Playing() []character.Montage {
	type entry struct {
		m   character.Montage
		seq int
	}
	var list []entry
	for m, pl := range p.active {
		list = append(list, entry{m, pl.seq})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].seq < list[j].seq })
	out := make([]character.Montage, len(list))
	for i, e := range list {
		out[i] = e.m
	}
	return out
}

func fire(pl *playing, interrupted bool) {
	for _, fn := range pl.onEnd {
		fn(interrupted)
	}
}
