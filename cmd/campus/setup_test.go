package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/campusbot/internal/config"
)

func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "")
	cmd.Flags().StringVarP(&knowledgePath, "knowledge", "k", "", "")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "")
	return cmd
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    config.AppConfig
		wantErr bool
	}{
		{
			name: "no flags keep config",
			args: nil,
			want: config.AppConfig{MatchThreshold: 70, KnowledgePath: "data/knowledge_base.json"},
		},
		{
			name: "overrides",
			args: []string{"-t", "80", "--knowledge", "kb.yaml"},
			want: config.AppConfig{MatchThreshold: 80, KnowledgePath: "kb.yaml"},
		},
		{
			name: "explicit zero threshold",
			args: []string{"--threshold", "0"},
			want: config.AppConfig{MatchThreshold: 0, KnowledgePath: "data/knowledge_base.json"},
		},
		{
			name: "strict profile",
			args: []string{"--profile", "strict"},
			want: config.AppConfig{MatchThreshold: 80, MatchProfile: "strict", KnowledgePath: "data/knowledge_base.json"},
		},
		{
			name: "threshold beats profile",
			args: []string{"-p", "strict", "-t", "75"},
			want: config.AppConfig{MatchThreshold: 75, MatchProfile: "strict", KnowledgePath: "data/knowledge_base.json"},
		},
		{
			name:    "unknown profile",
			args:    []string{"--profile", "loose"},
			wantErr: true,
		},
		{
			name:    "out of range",
			args:    []string{"-t", "101"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newFlagCommand()
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg := &config.AppConfig{MatchThreshold: 70, KnowledgePath: "data/knowledge_base.json"}
			err := applyFlags(cmd, cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestApplyFlags_ProfileFromEnv(t *testing.T) {
	cmd := newFlagCommand()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg := &config.AppConfig{MatchThreshold: 70, MatchProfile: "Strict"}
	require.NoError(t, applyFlags(cmd, cfg))
	assert.Equal(t, 80, cfg.MatchThreshold)
}

func TestInitEnv(t *testing.T) {
	workDir := t.TempDir()
	runtimeDir := t.TempDir()
	t.Chdir(workDir)

	require.NoError(t, os.WriteFile(".env", []byte("CAMPUS_TEST_SHARED=work\nCAMPUS_TEST_WORK=1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(runtimeDir, ".env"), []byte("CAMPUS_TEST_SHARED=runtime\nCAMPUS_TEST_RUNTIME=1\n"), 0o600))

	for _, k := range []string{"CAMPUS_TEST_SHARED", "CAMPUS_TEST_WORK", "CAMPUS_TEST_RUNTIME"} {
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}

	require.NoError(t, initEnv(context.Background(), runtimeDir))

	assert.Equal(t, "work", os.Getenv("CAMPUS_TEST_SHARED"))
	assert.Equal(t, "1", os.Getenv("CAMPUS_TEST_WORK"))
	assert.Equal(t, "1", os.Getenv("CAMPUS_TEST_RUNTIME"))
}

func TestInitEnv_NoFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, initEnv(context.Background(), t.TempDir()))
}
