package client

import (
	"context"
	"fmt"
	"time"

	"lousa/advisor"
	"lousa/board"
)

// playProposalDelay gives the user a moment to read the explanation
// before proposed frames start playing.
var playProposalDelay = time.Second

const framesAppliedReply = "Entendido! Veja a jogada que preparei para você."

// Assistant is the advisory service surface the controller needs.
// *advisor.Service satisfies it.
type Assistant interface {
	Advise(ctx context.Context, prompt string, boardState any) (advisor.Advice, error)
}

// Consult asks the assistant about the current board and acts on the
// outcome: a frame proposal is applied and scheduled for playback, a
// save proposal is forwarded to the relay, prose is returned as-is. Any
// failure returns the generic error message with the board untouched.
func (c *Controller) Consult(ctx context.Context, svc Assistant, prompt string) (string, error) {
	adv, err := svc.Advise(ctx, prompt, c.State())
	if err != nil {
		return advisor.FallbackMessage, err
	}

	switch {
	case len(adv.Frames) > 0:
		frames := framesFromAdvice(adv.Frames)
		if err := c.ApplyLocalEdit(board.Patch{Frames: &frames}); err != nil {
			return advisor.FallbackMessage, err
		}
		time.AfterFunc(playProposalDelay, func() {
			c.PlayAnimation()
		})
		if adv.Explanation != "" {
			return adv.Explanation, nil
		}
		return framesAppliedReply, nil

	case adv.TacticName != "":
		if err := c.SaveTactic(adv.TacticName); err != nil {
			return advisor.FallbackMessage, err
		}
		return fmt.Sprintf("Tática %q salva com sucesso! Você pode encontrá-la na lista à esquerda.", adv.TacticName), nil

	default:
		return adv.Text, nil
	}
}

func framesFromAdvice(in []advisor.AdviceFrame) []board.Frame {
	frames := make([]board.Frame, len(in))
	for i, f := range in {
		players := make([]board.Player, len(f.Players))
		for j, p := range f.Players {
			players[j] = board.Player{
				ID:     p.ID,
				X:      p.X,
				Y:      p.Y,
				Color:  p.Color,
				Number: p.Number,
				Team:   board.Team(p.Team),
			}
		}
		frames[i] = board.Frame{
			Players: players,
			Ball:    board.Ball{X: f.Ball.X, Y: f.Ball.Y},
		}
	}
	return frames
}
