package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"lousa/advisor"
	"lousa/board"
)

type fakeAssistant struct {
	advice advisor.Advice
	err    error
	asked  string
}

func (f *fakeAssistant) Advise(ctx context.Context, prompt string, boardState any) (advisor.Advice, error) {
	f.asked = prompt
	return f.advice, f.err
}

func TestConsultAppliesFramesAndSchedulesPlayback(t *testing.T) {
	oldDelay := playProposalDelay
	playProposalDelay = 20 * time.Millisecond
	defer func() { playProposalDelay = oldDelay }()

	url := startRelay(t)
	play := make(chan struct{}, 1)
	a := dialOrFail(t, url, Handlers{OnPlay: func() { play <- struct{}{} }})

	fake := &fakeAssistant{advice: advisor.Advice{
		Frames: []advisor.AdviceFrame{
			{Players: []advisor.AdvicePlayer{{ID: "a1", X: 0.1, Y: 0.5, Team: "A", Number: "1", Color: board.TeamAColor}}, Ball: advisor.AdviceBall{X: 0.5, Y: 0.5}},
			{Players: []advisor.AdvicePlayer{{ID: "a1", X: 0.4, Y: 0.5, Team: "A", Number: "1", Color: board.TeamAColor}}, Ball: advisor.AdviceBall{X: 0.4, Y: 0.5}},
		},
		Explanation: "Escapada pelo corredor.",
	}}

	reply, err := a.Consult(context.Background(), fake, "mostre uma escapada")
	if err != nil {
		t.Fatalf("Consult: %v", err)
	}
	if reply != "Escapada pelo corredor." {
		t.Fatalf("reply = %q", reply)
	}
	if fake.asked != "mostre uma escapada" {
		t.Fatalf("prompt forwarded as %q", fake.asked)
	}
	if got := a.State().Frames; len(got) != 2 || got[1].Players[0].X != 0.4 {
		t.Fatalf("frames not applied: %+v", got)
	}

	// The proposal schedules a relay-wide play trigger after the delay.
	select {
	case <-play:
	case <-time.After(2 * time.Second):
		t.Fatalf("playback never triggered")
	}
}

func TestConsultForwardsSaveProposal(t *testing.T) {
	url := startRelay(t)
	tactics := make(chan []board.Tactic, 4)
	a := dialOrFail(t, url, Handlers{OnTactics: func(ts []board.Tactic) { tactics <- ts }})

	fake := &fakeAssistant{advice: advisor.Advice{TacticName: "Trenzinho"}}
	reply, err := a.Consult(context.Background(), fake, "salve como trenzinho")
	if err != nil {
		t.Fatalf("Consult: %v", err)
	}
	if reply != `Tática "Trenzinho" salva com sucesso! Você pode encontrá-la na lista à esquerda.` {
		t.Fatalf("reply = %q", reply)
	}

	select {
	case ts := <-tactics:
		if len(ts) != 1 || ts[0].Name != "Trenzinho" {
			t.Fatalf("tactics = %+v", ts)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("save never reached the relay")
	}
}

func TestConsultReturnsProseUntouched(t *testing.T) {
	url := startRelay(t)
	a := dialOrFail(t, url, Handlers{})

	before := a.State()
	fake := &fakeAssistant{advice: advisor.Advice{Text: "Pressione alto com cobertura."}}
	reply, err := a.Consult(context.Background(), fake, "como marcar?")
	if err != nil {
		t.Fatalf("Consult: %v", err)
	}
	if reply != "Pressione alto com cobertura." {
		t.Fatalf("reply = %q", reply)
	}
	if len(a.State().Frames) != len(before.Frames) {
		t.Fatalf("prose reply changed the board")
	}
}

func TestConsultFailureLeavesBoardUntouched(t *testing.T) {
	url := startRelay(t)
	a := dialOrFail(t, url, Handlers{})

	before := a.State()
	fake := &fakeAssistant{err: errors.New("upstream down")}
	reply, err := a.Consult(context.Background(), fake, "oi")
	if err == nil {
		t.Fatalf("expected the advisory error to propagate")
	}
	if reply != advisor.FallbackMessage {
		t.Fatalf("reply = %q, want the generic fallback", reply)
	}

	after := a.State()
	if len(after.Players) != len(before.Players) || after.Ball != before.Ball || len(after.Frames) != len(before.Frames) {
		t.Fatalf("failure altered board state")
	}
}
