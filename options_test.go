package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options
	}{
		{"nothing", nil, options{}},
		{"files", []string{"-i", "in.jpg", "-o", "out.png"}, options{input: "in.jpg", output: "out.png"}},
		{"pipes", []string{"-stdin", "-stdout"}, options{stdin: true, stdout: true}},
		{"blank", []string{"-width", "50", "-height", "40", "-o", "x.png"}, options{width: 50, height: 40, output: "x.png"}},
		{"config", []string{"-config", "my.toml", "-debug"}, options{configPath: "my.toml", debug: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			got, err := parseOptions(tt.args, &stderr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
			assert.Empty(t, stderr.String())
		})
	}
}

func TestParseOptionsHelp(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseOptions([]string{"-h"}, &stderr)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "Usage: pie")
	assert.Contains(t, stderr.String(), "-stdin")
}

func TestParseOptionsErrors(t *testing.T) {
	tests := map[string][]string{
		"input conflict":  {"-i", "a.png", "-stdin"},
		"output conflict": {"-o", "a.png", "-stdout"},
		"missing value":   {"-i"},
		"empty input":     {"-i", ""},
		"empty output":    {"-o", ""},
		"zero width":      {"-width", "0"},
		"negative height": {"-height", "-3"},
		"not a number":    {"-width", "wide"},
		"unknown flag":    {"-zoom", "2"},
		"stray argument":  {"-stdout", "extra"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseOptions(args, &bytes.Buffer{})
			assert.Error(t, err)
			assert.NotErrorIs(t, err, flag.ErrHelp)
		})
	}
}

func TestOptionsSources(t *testing.T) {
	o := options{}
	assert.False(t, o.hasInput())
	assert.False(t, o.hasOutput())
	o = options{stdin: true, output: "x.png"}
	assert.True(t, o.hasInput())
	assert.True(t, o.hasOutput())
}
