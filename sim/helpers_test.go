package sim

import "github.com/automoto/flagrun/shared/gamemath"

func controls(left, right, jump bool) gamemath.Controls {
	return gamemath.Controls{Left: left, Right: right, Jump: jump}
}

// scriptedInput replays a fixed input list and then asks to quit.
type scriptedInput struct {
	inputs []Input
	polls  int
}

func (s *scriptedInput) Poll() Input {
	s.polls++
	if s.polls > len(s.inputs) {
		return Input{Quit: true}
	}
	return s.inputs[s.polls-1]
}

// endlessInput never asks to quit.
type endlessInput struct{}

func (endlessInput) Poll() Input { return Input{} }

type recordingRenderer struct {
	frames []Snapshot
	onTick func()
}

func (r *recordingRenderer) Render(s Snapshot) {
	r.frames = append(r.frames, s)
	if r.onTick != nil {
		r.onTick()
	}
}
