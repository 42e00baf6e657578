package advisor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func fakeGemini(t *testing.T, responseBody string, gotBody *[]byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if gotBody != nil {
			b, _ := io.ReadAll(r.Body)
			*gotBody = b
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(responseBody))
	}))
}

func TestAdviseParsesTextReply(t *testing.T) {
	body := `{"candidates":[{"content":{"parts":[{"text":"Use o rodízio "},{"text":"3-1."}]}}]}`
	srv := fakeGemini(t, body, nil)
	defer srv.Close()

	svc := NewWithBaseURL("key", "test-model", srv.URL)
	adv, err := svc.Advise(context.Background(), "como atacar?", map[string]any{"ball": map[string]float64{"x": 0.5, "y": 0.5}})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if adv.Text != "Use o rodízio 3-1." {
		t.Fatalf("text = %q", adv.Text)
	}
	if adv.Frames != nil || adv.TacticName != "" {
		t.Fatalf("text reply should carry no proposal: %+v", adv)
	}
}

func TestAdviseParsesAnimationProposal(t *testing.T) {
	body := `{"candidates":[{"content":{"parts":[{"functionCall":{"name":"updateBoardWithAnimation","args":{
		"frames":[
			{"players":[{"id":"a1","x":0.1,"y":0.5,"team":"A","number":"1","color":"#3b82f6"}],"ball":{"x":0.5,"y":0.5}},
			{"players":[{"id":"a1","x":0.3,"y":0.5,"team":"A","number":"1","color":"#3b82f6"}],"ball":{"x":0.4,"y":0.5}}
		],
		"explanation":"Escapada pelo corredor."
	}}}]}}]}`
	srv := fakeGemini(t, body, nil)
	defer srv.Close()

	svc := NewWithBaseURL("key", "test-model", srv.URL)
	adv, err := svc.Advise(context.Background(), "mostre uma escapada", nil)
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if len(adv.Frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(adv.Frames))
	}
	if adv.Frames[1].Players[0].X != 0.3 {
		t.Fatalf("frame decoding wrong: %+v", adv.Frames[1])
	}
	if adv.Explanation != "Escapada pelo corredor." {
		t.Fatalf("explanation = %q", adv.Explanation)
	}
}

func TestAdviseParsesSaveProposal(t *testing.T) {
	body := `{"candidates":[{"content":{"parts":[{"functionCall":{"name":"saveTactic","args":{"name":"Katrina"}}}]}}]}`
	srv := fakeGemini(t, body, nil)
	defer srv.Close()

	svc := NewWithBaseURL("key", "test-model", srv.URL)
	adv, err := svc.Advise(context.Background(), "salve essa jogada", nil)
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if adv.TacticName != "Katrina" {
		t.Fatalf("tactic name = %q", adv.TacticName)
	}
}

func TestAdviseSendsBoardAndPrompt(t *testing.T) {
	var got []byte
	srv := fakeGemini(t, `{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`, &got)
	defer srv.Close()

	svc := NewWithBaseURL("key", "test-model", srv.URL)
	if _, err := svc.Advise(context.Background(), "pergunta aqui", map[string]string{"marker": "estado-x"}); err != nil {
		t.Fatalf("Advise: %v", err)
	}

	var req genRequest
	if err := json.Unmarshal(got, &req); err != nil {
		t.Fatalf("request body not JSON: %v", err)
	}
	if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
		t.Fatalf("request contents = %+v", req.Contents)
	}
	text := req.Contents[0].Parts[0].Text
	if !strings.Contains(text, "estado-x") || !strings.Contains(text, "pergunta aqui") {
		t.Fatalf("request text missing board or prompt: %q", text)
	}
	if len(req.Tools) != 1 {
		t.Fatalf("tools = %+v", req.Tools)
	}
	if !strings.Contains(req.SystemInstruction.Parts[0].Text, "treinador de futsal") {
		t.Fatalf("system instruction missing")
	}
}

func TestAdviseFailures(t *testing.T) {
	errSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer errSrv.Close()

	svc := NewWithBaseURL("key", "test-model", errSrv.URL)
	if _, err := svc.Advise(context.Background(), "oi", nil); err == nil {
		t.Fatalf("expected error on 500")
	}

	emptySrv := fakeGemini(t, `{"candidates":[]}`, nil)
	defer emptySrv.Close()
	svc = NewWithBaseURL("key", "test-model", emptySrv.URL)
	if _, err := svc.Advise(context.Background(), "oi", nil); err == nil {
		t.Fatalf("expected error on empty candidates")
	}

	badTool := fakeGemini(t, `{"candidates":[{"content":{"parts":[{"functionCall":{"name":"launchRockets","args":{}}}]}}]}`, nil)
	defer badTool.Close()
	svc = NewWithBaseURL("key", "test-model", badTool.URL)
	if _, err := svc.Advise(context.Background(), "oi", nil); err == nil {
		t.Fatalf("expected error on unknown tool")
	}
}
