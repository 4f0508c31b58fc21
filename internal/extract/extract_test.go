package extract

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
)

// stubBackend replies with canned text per prompt kind. The publisher
// prompt is recognized by its "Filename:" user content.
type stubBackend struct {
	dateReply   string
	sourceReply string
	err         error
}

func (s *stubBackend) Complete(_ context.Context, _, user string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if strings.HasPrefix(user, "Filename:") {
		return s.sourceReply, nil
	}
	return s.dateReply, nil
}

func newTestExtractor(t *testing.T, backend *stubBackend, format string) *Extractor {
	t.Helper()
	e, err := New(backend, format, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNewRejectsInvalidDateFormat(t *testing.T) {
	if _, err := New(&stubBackend{}, "%J", io.Discard); err == nil {
		t.Fatal("expected error for unknown strftime directive")
	}
}

func TestPublishDate(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "formats extracted date",
			reply: `{"end_date": "2025-02-10", "reasoning": "date near the byline"}`,
			want:  "20250210",
		},
		{
			name:  "empty end_date yields empty result",
			reply: `{"end_date": "", "reasoning": "'Today' is a relative date"}`,
			want:  "",
		},
		{
			name:  "missing end_date yields empty result",
			reply: `{"reasoning": "no date found"}`,
			want:  "",
		},
		{
			name:  "malformed reply yields empty result",
			reply: `the model rambled instead of returning JSON`,
			want:  "",
		},
		{
			name:  "non-ISO date yields empty result",
			reply: `{"end_date": "Feb 10, 2025", "reasoning": "found a date"}`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExtractor(t, &stubBackend{dateReply: tt.reply}, "%Y%m%d")
			got, err := e.PublishDate(context.Background(), "page text")
			if err != nil {
				t.Fatalf("PublishDate: %v", err)
			}
			if got != tt.want {
				t.Errorf("PublishDate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPublishDateHonorsFormat(t *testing.T) {
	e := newTestExtractor(t, &stubBackend{
		dateReply: `{"end_date": "2025-02-10", "reasoning": "ok"}`,
	}, "%Y-%m-%d")
	got, err := e.PublishDate(context.Background(), "text")
	if err != nil {
		t.Fatalf("PublishDate: %v", err)
	}
	if got != "2025-02-10" {
		t.Errorf("PublishDate = %q, want 2025-02-10", got)
	}
}

func TestPublishDatePropagatesBackendError(t *testing.T) {
	e := newTestExtractor(t, &stubBackend{err: fmt.Errorf("connection refused")}, "%Y%m%d")
	if _, err := e.PublishDate(context.Background(), "text"); err == nil {
		t.Fatal("expected backend error to propagate")
	}
}

func TestTitlePublisher(t *testing.T) {
	tests := []struct {
		name          string
		reply         string
		filename      string
		wantTitle     string
		wantPublisher string
	}{
		{
			name:          "model values win",
			reply:         `{"publisher": "The New York Times", "title": "China Is at Heart of Trump Tariffs", "reasoning": "separator"}`,
			filename:      "China Is at Heart of Trump Tariffs - The New York Times.pdf",
			wantTitle:     "China Is at Heart of Trump Tariffs",
			wantPublisher: "The New York Times",
		},
		{
			name:          "missing publisher filled from heuristics",
			reply:         `{"publisher": "", "title": "Some Title", "reasoning": "no suffix"}`,
			filename:      "Some Title - WIRED.pdf",
			wantTitle:     "Some Title",
			wantPublisher: "WIRED",
		},
		{
			name:          "missing title filled from heuristics",
			reply:         `{"publisher": "WIRED", "title": "", "reasoning": "only the suffix was clear"}`,
			filename:      "Some Title - WIRED.pdf",
			wantTitle:     "Some Title",
			wantPublisher: "WIRED",
		},
		{
			name:          "both missing on separator-free name",
			reply:         `{"publisher": "", "title": "", "reasoning": "opaque filename"}`,
			filename:      "p251201antitrustguidelines2025.pdf",
			wantTitle:     "p251201antitrustguidelines2025",
			wantPublisher: "no-publisher",
		},
		{
			name:          "malformed reply falls back entirely",
			reply:         `not json at all`,
			filename:      "Title_Publisher.pdf",
			wantTitle:     "Title",
			wantPublisher: "Publisher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExtractor(t, &stubBackend{sourceReply: tt.reply}, "%Y%m%d")
			title, publisher, err := e.TitlePublisher(context.Background(), tt.filename)
			if err != nil {
				t.Fatalf("TitlePublisher: %v", err)
			}
			if title != tt.wantTitle || publisher != tt.wantPublisher {
				t.Errorf("TitlePublisher(%q) = (%q, %q), want (%q, %q)",
					tt.filename, title, publisher, tt.wantTitle, tt.wantPublisher)
			}
		})
	}
}

func TestParseDateReply(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		status ParseStatus
	}{
		{"valid", `{"end_date": "2024-12-19", "reasoning": "x"}`, ParseOK},
		{"empty field", `{"end_date": "", "reasoning": "x"}`, ParseMissingField},
		{"absent field", `{"reasoning": "x"}`, ParseMissingField},
		{"whitespace field", `{"end_date": "  ", "reasoning": "x"}`, ParseMissingField},
		{"not json", `oops`, ParseMalformed},
		{"json array", `[1, 2]`, ParseMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, status := parseDateReply(tt.raw); status != tt.status {
				t.Errorf("parseDateReply(%q) status = %d, want %d", tt.raw, status, tt.status)
			}
		})
	}
}

func TestParseSourceReplyKeepsPartialFields(t *testing.T) {
	reply, status := parseSourceReply(`{"publisher": "WIRED", "title": "", "reasoning": "x"}`)
	if status != ParseMissingField {
		t.Fatalf("status = %d, want ParseMissingField", status)
	}
	if reply.Publisher != "WIRED" {
		t.Errorf("partial publisher lost: %q", reply.Publisher)
	}
}
