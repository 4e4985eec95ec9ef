package llm

import (
	"context"
	"sync"
)

// Scripted is an in-memory Client that replays canned replies. Tests use it
// in place of a real provider.
type Scripted struct {
	mu       sync.Mutex
	replies  []Response
	err      error
	Requests []Request
}

// NewScripted returns a client that answers with replies in order and then
// keeps repeating the last one.
func NewScripted(replies ...string) *Scripted {
	s := &Scripted{}
	for _, r := range replies {
		s.replies = append(s.replies, Response{Content: r, PromptTokens: 10, CompletionTokens: 20})
	}
	return s
}

// FailWith makes every subsequent call return err.
func (s *Scripted) FailWith(err error) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

func (s *Scripted) Complete(_ context.Context, req Request) (Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Requests = append(s.Requests, req)
	if s.err != nil {
		return Response{}, s.err
	}
	if len(s.replies) == 0 {
		return Response{}, nil
	}
	r := s.replies[0]
	if len(s.replies) > 1 {
		s.replies = s.replies[1:]
	}
	return r, nil
}

func (s *Scripted) Model() string { return "scripted" }

// Calls returns how many completions were requested.
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Requests)
}
