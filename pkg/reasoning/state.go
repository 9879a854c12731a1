// Package reasoning holds the conversation state and routing logic of the
// research loop: an append-only transcript with iteration and token
// accounting, and the decision function that picks the next step after each
// model response.
package reasoning

import (
	"github.com/dbhatt90/ai-research-assistant/pkg/llms"
)

// State is the working state of one research query. The transcript is
// append-only; the iteration counter tracks reasoning steps to bound the
// loop.
type State struct {
	query       string
	messages    []llms.Message
	iteration   int
	totalTokens int
}

// NewState creates the state for a query, seeding the transcript with the
// user message.
func NewState(query string) *State {
	return &State{
		query: query,
		messages: []llms.Message{
			{Role: llms.RoleUser, Content: query},
		},
	}
}

// Query returns the original user query.
func (s *State) Query() string {
	return s.query
}

// Iteration returns the current reasoning-step count.
func (s *State) Iteration() int {
	return s.iteration
}

// NextIteration increments the reasoning-step counter and returns the new
// value.
func (s *State) NextIteration() int {
	s.iteration++
	return s.iteration
}

// TotalTokens returns the tokens used so far across all LLM calls.
func (s *State) TotalTokens() int {
	return s.totalTokens
}

// AddTokens adds to the token tally.
func (s *State) AddTokens(tokens int) {
	s.totalTokens += tokens
}

// AddMessage appends a message to the transcript.
func (s *State) AddMessage(msg llms.Message) {
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of the transcript for building LLM requests.
func (s *State) Messages() []llms.Message {
	out := make([]llms.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// LastMessage returns the most recent transcript entry.
func (s *State) LastMessage() llms.Message {
	if len(s.messages) == 0 {
		return llms.Message{}
	}
	return s.messages[len(s.messages)-1]
}
