package core

import "context"

type CmdRouter interface {
	Execute(ctx context.Context, session SessionView, input string) (string, bool)
	ListCommands() []Command
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, session SessionView, args []string) (string, error)
}

// SessionView is the read-only part of a conversation that commands may inspect.
type SessionView interface {
	SessionID() string
	CurrentTopic() (LandmarkID, bool)
}
