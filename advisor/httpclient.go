package advisor

import (
	"log"
	"net/http"
	"sync"
)

type loggingRoundTripper struct {
	rt http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	log.Printf("HTTP Request: %s %s", req.Method, req.URL)
	resp, err := l.rt.RoundTrip(req)
	if err != nil {
		log.Printf("HTTP Request failed: %v", err)
		return nil, err
	}
	log.Printf("HTTP Response: %s %s", resp.Status, req.URL)
	return resp, nil
}

var (
	clientInstance *http.Client
	once           sync.Once
)

func loggingClient() *http.Client {
	once.Do(func() {
		clientInstance = &http.Client{
			Transport: &loggingRoundTripper{rt: http.DefaultTransport},
		}
	})
	return clientInstance
}
