package board

// Patch is a partial State. A nil field means "leave that key alone"; a
// set field replaces the key wholesale. There is no deep merge: a patch
// carrying players must carry the complete desired players slice.
type Patch struct {
	Players     *[]Player  `json:"players,omitempty"`
	Ball        *Ball      `json:"ball,omitempty"`
	Drawings    *[]Drawing `json:"drawings,omitempty"`
	Frames      *[]Frame   `json:"frames,omitempty"`
	IsAnimating *bool      `json:"isAnimating,omitempty"`
}

// Merge applies p onto s key by key and returns the result. Only the
// top-level keys present in p are replaced; everything else is untouched.
// No validation happens here: odd coordinates or duplicate ids pass
// through and degrade at render time.
func Merge(s State, p Patch) State {
	out := s
	if p.Players != nil {
		out.Players = *p.Players
	}
	if p.Ball != nil {
		out.Ball = *p.Ball
	}
	if p.Drawings != nil {
		out.Drawings = *p.Drawings
	}
	if p.Frames != nil {
		out.Frames = *p.Frames
	}
	if p.IsAnimating != nil {
		out.IsAnimating = *p.IsAnimating
	}
	return out
}

// AsPatch wraps a full state as a patch touching every key. Clients use
// this to transmit complete replacements after a local merge.
func AsPatch(s State) Patch {
	return Patch{
		Players:     &s.Players,
		Ball:        &s.Ball,
		Drawings:    &s.Drawings,
		Frames:      &s.Frames,
		IsAnimating: &s.IsAnimating,
	}
}
