package anim

import (
	"context"
	"time"

	"lousa/board"
)

// Timeline maps elapsed playback time to a pose. It is pure: two clients
// asking for the same elapsed time over the same frames get the same
// answer.
type Timeline struct {
	frames     []board.Frame
	attachedID string
}

func NewTimeline(frames []board.Frame, attachedID string) *Timeline {
	return &Timeline{frames: frames, attachedID: attachedID}
}

// Segments is the number of frame-to-frame transitions.
func (tl *Timeline) Segments() int {
	if len(tl.frames) < 2 {
		return 0
	}
	return len(tl.frames) - 1
}

// Duration is the total playback time: one window plus one pause per
// segment.
func (tl *Timeline) Duration() time.Duration {
	return time.Duration(tl.Segments()) * (SegmentDuration + SegmentPause)
}

// At returns the pose for the given elapsed time and whether playback is
// finished. During a segment's pause the pose holds at the segment's end.
func (tl *Timeline) At(elapsed time.Duration) (Pose, bool) {
	segments := tl.Segments()
	if segments == 0 {
		if len(tl.frames) == 1 {
			f := tl.frames[0]
			return Interpolate(f, f, 1, tl.attachedID), true
		}
		return Pose{}, true
	}

	slot := SegmentDuration + SegmentPause
	seg := int(elapsed / slot)
	if seg >= segments {
		last := segments - 1
		return Interpolate(tl.frames[last], tl.frames[last+1], 1, tl.attachedID), true
	}

	within := elapsed - time.Duration(seg)*slot
	t := float64(within) / float64(SegmentDuration)
	return Interpolate(tl.frames[seg], tl.frames[seg+1], t, tl.attachedID), false
}

// Play drives a timeline on a real clock, emitting poses until it
// finishes or ctx is cancelled. tick controls the emit rate; zero picks
// ~60Hz.
func Play(ctx context.Context, tl *Timeline, tick time.Duration, emit func(Pose)) {
	if tl.Segments() == 0 {
		return
	}
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}

	start := time.Now()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			pose, done := tl.At(now.Sub(start))
			emit(pose)
			if done {
				return
			}
		}
	}
}
