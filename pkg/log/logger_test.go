package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewContextWithWriter_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "debug enabled", debug: true, wantDebug: true},
		{name: "info only", debug: false, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx, flush := NewContextWithWriter(context.Background(), &buf, tt.debug)

			logger := FromCtx(ctx)
			logger.Debug().Msg("debug line")
			logger.Info().Msg("info line")
			flush()

			out := buf.String()
			if !strings.Contains(out, "info line") {
				t.Errorf("expected info line in output, got %q", out)
			}
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v (output %q)", got, tt.wantDebug, out)
			}
		})
	}
}
