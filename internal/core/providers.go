package core

import "context"

type AIProvider interface {
	Chat(ctx context.Context, history []Message) (Message, error)
}

// Disambiguator maps an utterance the resolver could not place to a landmark.
type Disambiguator interface {
	Disambiguate(ctx context.Context, text string) (LandmarkID, bool)
}
