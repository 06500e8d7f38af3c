package main

import (
	"errors"
	"testing"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr error
	}{
		{
			name: "flag",
			args: []string{"-atlas", "assets/atlas.png"},
			want: Config{AtlasPath: "assets/atlas.png", Watch: true, Width: 1280, Height: 720},
		},
		{
			name: "positional",
			args: []string{"-scale", "2", "-watch=false", "atlas.png"},
			want: Config{AtlasPath: "atlas.png", Scale: 2, Width: 1280, Height: 720},
		},
		{
			name: "flag wins over positional",
			args: []string{"-atlas", "a.png", "-say", "hi there", "-stdin", "b.png"},
			want: Config{AtlasPath: "a.png", Say: "hi there", Stdin: true, Watch: true, Width: 1280, Height: 720},
		},
		{
			name:    "missing atlas",
			args:    []string{"-config", "x.json"},
			wantErr: errNoAtlas,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseConfig(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseConfig: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"-scale", "-1", "a.png"},
		{"-w", "0", "a.png"},
		{"-nope", "a.png"},
	} {
		if _, err := parseConfig(args); err == nil {
			t.Fatalf("parseConfig(%q) succeeded", args)
		}
	}
}
