package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Provider    string  `env:"LLM_PROVIDER" envDefault:"openai"`
	Threshold   int     `env:"CAMPUS_MATCH_THRESHOLD"`
	Temperature float64 `env:"LLM_TEMPERATURE"`
	Debug       bool    `env:"CAMPUS_DEBUG"`
	APIKey      string  `env:"OPENAI_API_KEY,required"`
	Untagged    string
	hidden      string `env:"HIDDEN"`
}

func TestMarshalEnv(t *testing.T) {
	c := &sample{
		Provider:    "gemini",
		Threshold:   80,
		Temperature: 0.3,
		Debug:       true,
		Untagged:    "ignored",
		hidden:      "ignored",
	}

	out, err := MarshalEnv(c)
	require.NoError(t, err)

	assert.Equal(t, "LLM_PROVIDER=gemini\nCAMPUS_MATCH_THRESHOLD=80\nLLM_TEMPERATURE=0.3\nCAMPUS_DEBUG=true\n", out)
}

func TestMarshalEnv_AllZero(t *testing.T) {
	out, err := MarshalEnv(&sample{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMarshalEnv_MultipleStructsAndQuoting(t *testing.T) {
	a := &sample{Provider: "custom"}
	b := &struct {
		BaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
		Note    string `env:"NOTE"`
	}{BaseURL: "http://localhost:8080", Note: "two words"}

	out, err := MarshalEnv(a, b)
	require.NoError(t, err)
	assert.Equal(t, "LLM_PROVIDER=custom\nCUSTOM_OPENAI_BASE_URL=http://localhost:8080\nNOTE=\"two words\"\n", out)
}

func TestMarshalEnv_RejectsNonStruct(t *testing.T) {
	_, err := MarshalEnv("nope")
	assert.Error(t, err)
}
