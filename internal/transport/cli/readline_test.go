package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/campusbot/internal/core"
	"github.com/sandevgo/campusbot/internal/service/chat"
)

type scriptedReader struct {
	lines  []string
	end    error
	closed bool
}

func (s *scriptedReader) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", s.end
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedReader) Close() error {
	s.closed = true
	return nil
}

type echoBot struct {
	inputs []string
}

func (b *echoBot) Reply(_ context.Context, _ *chat.Session, input string) string {
	if input == "boom" {
		panic("renderer exploded")
	}
	b.inputs = append(b.inputs, input)
	return "echo: " + input
}

type slashRouter struct{}

func (slashRouter) Execute(_ context.Context, _ core.SessionView, input string) (string, bool) {
	if strings.HasPrefix(input, "/") {
		return "command " + input, true
	}
	return "", false
}

func (slashRouter) ListCommands() []core.Command { return nil }

func run(t *testing.T, lines []string, end error) (string, *echoBot, *scriptedReader) {
	t.Helper()
	bot := &echoBot{}
	reader := &scriptedReader{lines: lines, end: end}
	var out bytes.Buffer

	r := newReadLine(bot, slashRouter{}, reader, &out)
	require.NoError(t, r.Start(context.Background()))
	require.NoError(t, r.Shutdown(context.Background()))
	assert.True(t, reader.closed)
	return out.String(), bot, reader
}

func TestReadLine_Banner(t *testing.T) {
	out, _, _ := run(t, nil, io.EOF)
	assert.Contains(t, out, "Welcome to the RPI History Chatbot!")
	assert.Contains(t, out, "Ask me anything about RPI's Landmarks.")
	assert.Contains(t, out, "Type 'quit' to exit.")
}

func TestReadLine_ExitWords(t *testing.T) {
	for _, word := range []string{"quit", "EXIT", "  Bye  "} {
		t.Run(word, func(t *testing.T) {
			out, bot, _ := run(t, []string{"west hall", word, "never read"}, io.EOF)
			assert.Contains(t, out, Farewell)
			assert.Equal(t, []string{"west hall"}, bot.inputs)
		})
	}
}

func TestReadLine_EndOfInput(t *testing.T) {
	tests := []struct {
		name string
		end  error
	}{
		{name: "eof", end: io.EOF},
		{name: "ctrl-c", end: readline.ErrInterrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, _ := run(t, []string{"hello"}, tt.end)
			assert.True(t, strings.HasSuffix(out, "\n"+Interrupt+"\n"))
			assert.NotContains(t, out, Farewell)
		})
	}
}

func TestReadLine_ReadError(t *testing.T) {
	reader := &scriptedReader{end: errors.New("terminal gone")}
	r := newReadLine(&echoBot{}, nil, reader, io.Discard)
	assert.EqualError(t, r.Start(context.Background()), "terminal gone")
}

func TestReadLine_RepliesAndCommands(t *testing.T) {
	out, bot, _ := run(t, []string{"  west hall  ", "/topic", ""}, io.EOF)

	assert.Contains(t, out, "echo: west hall")
	assert.Contains(t, out, "command /topic")
	assert.Contains(t, out, "Bot:")
	assert.Equal(t, []string{"west hall", ""}, bot.inputs)
}

func TestReadLine_PanicIsRecovered(t *testing.T) {
	out, bot, _ := run(t, []string{"boom", "still here"}, io.EOF)

	assert.Contains(t, out, Apology)
	assert.Contains(t, out, "echo: still here")
	assert.Equal(t, []string{"still here"}, bot.inputs)
}

func TestReadLine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bot := &echoBot{}
	var out bytes.Buffer
	r := newReadLine(bot, nil, &scriptedReader{lines: []string{"west hall"}, end: io.EOF}, &out)

	require.NoError(t, r.Start(ctx))
	assert.Empty(t, bot.inputs)
	assert.Contains(t, out.String(), Interrupt)
}
