package flagx

import (
	"reflect"
	"testing"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-a", "http://localhost:3000", "-x", "1"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "http://localhost:3000"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--api-url=http://api.local", "-x", "1"},
			allowedFlags: []string{"-a", "--api-url"},
			want:         []string{"--api-url=http://api.local"},
		},
		{
			name:         "both forms present, order preserved",
			args:         []string{"--api-url=first", "-a", "second", "-x", "1"},
			allowedFlags: []string{"-a", "--api-url"},
			want:         []string{"--api-url=first", "-a", "second"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-a"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a"},
		},
		{
			name:         "repeated flag kept every time",
			args:         []string{"-a", "one", "-a", "two"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "one", "-a", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
