package cmd

import (
	"errors"
	"testing"

	"github.com/brogergvhs/hqnews/internal/news"

	"github.com/spf13/cobra"
)

func setRequestFlags(t *testing.T, title, link, u string) {
	t.Helper()

	oldTitle, oldLink, oldURL := flagTitle, flagLink, flagURL
	t.Cleanup(func() { flagTitle, flagLink, flagURL = oldTitle, oldLink, oldURL })

	flagTitle, flagLink, flagURL = title, link, u
}

func TestBuildRequestUsesFlagsWithoutPrompting(t *testing.T) {
	tests := []struct {
		name  string
		mode  news.Mode
		title string
		link  string
		url   string
		want  news.Request
	}{
		{
			name:  "manual with title",
			mode:  news.ModeManual,
			title: "Nova tecnologia revoluciona o mercado",
			link:  "https://example.com/n",
			want:  news.Request{Mode: news.ModeManual, Title: "Nova tecnologia revoluciona o mercado", Link: "https://example.com/n"},
		},
		{
			name:  "manual with title and no link",
			mode:  news.ModeManual,
			title: "Eleição",
			want:  news.Request{Mode: news.ModeManual, Title: "Eleição"},
		},
		{
			name: "url with url",
			mode: news.ModeURL,
			url:  "https://example.com/artigo",
			want: news.Request{Mode: news.ModeURL, URL: "https://example.com/artigo"},
		},
		{
			name: "automatic never prompts",
			mode: news.ModeAutomatic,
			want: news.Request{Mode: news.ModeAutomatic},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequestFlags(t, tt.title, tt.link, tt.url)

			got, err := buildRequest(tt.mode)
			if err != nil {
				t.Fatalf("buildRequest: %v", err)
			}
			if got != tt.want {
				t.Errorf("buildRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPickModeFromFlag(t *testing.T) {
	oldMode := flagMode
	t.Cleanup(func() { flagMode = oldMode })

	tests := []struct {
		value   string
		want    news.Mode
		wantErr error
	}{
		{value: "manual", want: news.ModeManual},
		{value: "url", want: news.ModeURL},
		{value: "auto", want: news.ModeAutomatic},
		{value: "rss", wantErr: news.ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c := &cobra.Command{Use: "generate"}
			c.Flags().StringVar(&flagMode, "mode", "", "")
			if err := c.Flags().Set("mode", tt.value); err != nil {
				t.Fatalf("set flag: %v", err)
			}

			got, err := pickMode(c)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("pickMode() = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}
