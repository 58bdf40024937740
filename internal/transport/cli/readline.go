package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/campusbot/internal/core"
	"github.com/sandevgo/campusbot/internal/service/chat"
	"github.com/sandevgo/campusbot/internal/service/ui"
	"github.com/sandevgo/campusbot/pkg/log"
)

const (
	Farewell  = "Thank you for chatting about RPI history! Goodbye!"
	Interrupt = "Goodbye!"
	Apology   = "I apologize, but I encountered an error. Please try again."
)

var exitWords = []string{"quit", "exit", "bye"}

type Replier interface {
	Reply(ctx context.Context, s *chat.Session, input string) string
}

type lineReader interface {
	Readline() (string, error)
	Close() error
}

type ReadLine struct {
	bot     Replier
	router  core.CmdRouter
	session *chat.Session
	rl      lineReader
	out     io.Writer
}

func NewReadLine(bot Replier, router core.CmdRouter) (*ReadLine, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ui.UserStyle.Render("You:") + " ",
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, err
	}

	return newReadLine(bot, router, rl, rl.Stdout()), nil
}

func newReadLine(bot Replier, router core.CmdRouter, rl lineReader, out io.Writer) *ReadLine {
	return &ReadLine{
		bot:     bot,
		router:  router,
		session: chat.NewSession(),
		rl:      rl,
		out:     out,
	}
}

// Start runs the chat loop until the user leaves, input ends or ctx is
// cancelled.
func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx).With().Str("session", r.session.ID).Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Msg("Chat started")

	fmt.Fprintln(r.out, ui.Banner(
		"Welcome to the RPI History Chatbot!",
		"Ask me anything about RPI's Landmarks.",
		"Type 'quit' to exit.",
	))

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintf(r.out, "\n%s\n", Interrupt)
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				fmt.Fprintf(r.out, "\n%s\n", Interrupt)
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if slices.Contains(exitWords, strings.ToLower(line)) {
			fmt.Fprintf(r.out, "\n%s\n", Farewell)
			return nil
		}

		fmt.Fprintf(r.out, "\n%s %s\n\n", ui.BotStyle.Render("Bot:"), r.turn(ctx, line))
	}
}

// turn produces the reply to one line. A panic is logged and answered with
// an apology so the loop keeps going.
func (r *ReadLine) turn(ctx context.Context, line string) (reply string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.FromCtx(ctx).Error().Interface("panic", rec).Str("input", line).Msg("Turn failed")
			reply = Apology
		}
	}()

	if r.router != nil {
		if out, ok := r.router.Execute(ctx, r.session, line); ok {
			return out
		}
	}
	return r.bot.Reply(ctx, r.session, line)
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
