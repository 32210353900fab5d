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
			name:    "separate value",
			args:    []string{"-a", "http://x:1", "-z", "nope"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://x:1"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-a=http://x:1"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-a", "-t", "30"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-a", "-t", "30"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "http://x:1"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJSONConfigFlags(t *testing.T) {
	old := os.Args
	t.Cleanup(func() { os.Args = old })

	os.Args = []string{"client", "-c", "conf.json", "-a", "http://x:1"}
	require.Equal(t, "conf.json", JSONConfigFlags())

	os.Args = []string{"client", "-a", "http://x:1"}
	require.Empty(t, JSONConfigFlags())
}
