package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with separate value",
			args:    []string{"-a", "http://10.0.0.5:8000/api", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://10.0.0.5:8000/api"},
		},
		{
			name:    "keeps allowed flag with equals form",
			args:    []string{"--config=client.json", "-v"},
			allowed: []string{"--config"},
			want:    []string{"--config=client.json"},
		},
		{
			name:    "drops unknown flags entirely",
			args:    []string{"-z", "1", "-q=2"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "flag without value at end of args",
			args:    []string{"-t"},
			allowed: []string{"-t"},
			want:    []string{"-t"},
		},
		{
			name:    "value starting with dash is not consumed",
			args:    []string{"-t", "-a", "addr"},
			allowed: []string{"-t", "-a"},
			want:    []string{"-t", "-a", "addr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cli", "-a", "http://host:8000", "-c", "client.json"}
	require.Equal(t, "client.json", JsonConfigFlags())

	os.Args = []string{"cli", "-config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"cli", "-a", "http://host:8000"}
	require.Equal(t, "", JsonConfigFlags())
}
