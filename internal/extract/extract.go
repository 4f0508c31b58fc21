// Package extract derives a publish date, title, and publisher for a news
// article PDF, using a language-model backend with string heuristics as
// fallback.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/anwarhahn/pdf-renamer/internal/model"
)

// Sentinel values substituted when extraction yields nothing.
const (
	SentinelDate      = "no-date"
	SentinelPublisher = "no-publisher"
)

// ParseStatus classifies a model reply after schema validation. Callers
// branch on the status rather than probing fields for presence.
type ParseStatus int

const (
	// ParseOK means the reply parsed and all required fields are non-empty.
	ParseOK ParseStatus = iota

	// ParseMalformed means the reply was not a single JSON object.
	ParseMalformed

	// ParseMissingField means the reply parsed but a required field is
	// absent or empty.
	ParseMissingField
)

// dateReply is the expected schema of the publish-date prompt reply.
type dateReply struct {
	EndDate   string `json:"end_date"`
	Reasoning string `json:"reasoning"`
}

// sourceReply is the expected schema of the publisher/title prompt reply.
type sourceReply struct {
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Reasoning string `json:"reasoning"`
}

// Extractor produces (date, title, publisher) for one document at a time.
type Extractor struct {
	backend    model.Backend
	dateFormat *strftime.Strftime
	w          io.Writer
}

// New builds an Extractor. dateFormat is a strftime pattern applied to
// successfully extracted dates; an invalid pattern is a configuration
// error, reported before any document is processed.
func New(backend model.Backend, dateFormat string, w io.Writer) (*Extractor, error) {
	f, err := strftime.New(dateFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid date format %q: %w", dateFormat, err)
	}
	return &Extractor{backend: backend, dateFormat: f, w: w}, nil
}

// PublishDate asks the model for the article's publish date in the
// first-page text and reformats it with the configured pattern. It
// returns "" when the reply is malformed, the date field is missing, or
// the date is not an ISO calendar date; the caller substitutes
// SentinelDate. A backend transport error is returned to the caller and
// fails the document.
func (e *Extractor) PublishDate(ctx context.Context, text string) (string, error) {
	raw, err := e.backend.Complete(ctx, datePromptSystem, text)
	if err != nil {
		return "", fmt.Errorf("date prompt: %w", err)
	}

	reply, status := parseDateReply(raw)
	switch status {
	case ParseMalformed:
		fmt.Fprintf(e.w, "  date extraction failed: malformed reply\n")
		return "", nil
	case ParseMissingField:
		fmt.Fprintf(e.w, "  date extraction failed: no end_date returned\n")
		return "", nil
	}

	day, err := time.Parse("2006-01-02", strings.TrimSpace(reply.EndDate))
	if err != nil {
		fmt.Fprintf(e.w, "  date extraction failed: %q is not an ISO date\n", reply.EndDate)
		return "", nil
	}

	formatted := e.dateFormat.FormatString(day)
	fmt.Fprintf(e.w, "  extracted publish date: %s\n", formatted)
	return formatted, nil
}

// TitlePublisher asks the model to infer the article title and publisher
// from the original filename. Fields the model could not supply are
// filled from the heuristic splitter; model-derived values take
// precedence. Both return values are always non-empty strings or
// sentinels, never raw absence.
func (e *Extractor) TitlePublisher(ctx context.Context, filename string) (title, publisher string, err error) {
	prompt, err := renderSourcePrompt(filename)
	if err != nil {
		return "", "", fmt.Errorf("rendering prompt: %w", err)
	}

	raw, err := e.backend.Complete(ctx, sourcePromptSystem, prompt)
	if err != nil {
		return "", "", fmt.Errorf("publisher prompt: %w", err)
	}

	reply, status := parseSourceReply(raw)
	switch status {
	case ParseMalformed:
		fmt.Fprintf(e.w, "  publisher extraction failed: malformed reply\n")
		reply = sourceReply{}
	case ParseMissingField:
		fmt.Fprintf(e.w, "  publisher extraction incomplete: title=%q publisher=%q\n", reply.Title, reply.Publisher)
	}

	title = strings.TrimSpace(reply.Title)
	publisher = strings.TrimSpace(reply.Publisher)

	if title == "" || publisher == "" {
		stem := strings.TrimSuffix(filename, filepath.Ext(filename))
		hTitle, hPublisher := SplitStem(stem)
		if title == "" {
			title = hTitle
		}
		if publisher == "" {
			publisher = hPublisher
		}
		fmt.Fprintf(e.w, "  heuristic split: title=%q publisher=%q\n", hTitle, hPublisher)
	}

	return title, publisher, nil
}

// parseDateReply validates a publish-date reply against its schema.
func parseDateReply(raw string) (dateReply, ParseStatus) {
	var r dateReply
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return dateReply{}, ParseMalformed
	}
	if strings.TrimSpace(r.EndDate) == "" {
		return r, ParseMissingField
	}
	return r, ParseOK
}

// parseSourceReply validates a publisher/title reply against its schema.
// A missing-field status still carries whichever fields were present.
func parseSourceReply(raw string) (sourceReply, ParseStatus) {
	var r sourceReply
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return sourceReply{}, ParseMalformed
	}
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Publisher) == "" {
		return r, ParseMissingField
	}
	return r, ParseOK
}
