package client

import (
	"context"

	"lousa/anim"
	"lousa/board"
)

// FramesToAnimate picks the playback source: the two expanded endpoint
// frames in total-frame mode, the shared frames list otherwise.
func (c *Controller) FramesToAnimate() []board.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.totalFrameMode && c.startFrame != nil && c.endFrame != nil {
		return anim.ExpandTotal(*c.startFrame, *c.endFrame, anim.TotalModeSteps)
	}
	frames := make([]board.Frame, len(c.state.Frames))
	for i, f := range c.state.Frames {
		frames[i] = board.CloneFrame(f)
	}
	return frames
}

// RunAnimation plays the frame sequence locally. The isAnimating toggle
// travels over the wire so peers grey out their editing tools, but the
// interpolated poses themselves stay local: every peer computes the
// identical sequence from the same synced frames.
func (c *Controller) RunAnimation(ctx context.Context) error {
	frames := c.FramesToAnimate()
	if len(frames) < 2 {
		return nil
	}

	animating := true
	if err := c.ApplyLocalEdit(board.Patch{IsAnimating: &animating}); err != nil {
		return err
	}

	tl := anim.NewTimeline(frames, c.AttachedPlayerID())
	anim.Play(ctx, tl, 0, func(p anim.Pose) {
		c.applyLocalPose(p)
	})

	animating = false
	return c.ApplyLocalEdit(board.Patch{IsAnimating: &animating})
}

// applyLocalPose updates the mirror for one animation tick without
// transmitting anything.
func (c *Controller) applyLocalPose(p anim.Pose) {
	c.mu.Lock()
	c.state.Players = p.Players
	c.state.Ball = p.Ball
	snap := board.Clone(c.state)
	c.mu.Unlock()
	c.notifyState(snap)
}
