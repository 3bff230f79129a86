package verdict

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/mocks"
)

var foundEvidence = domain.NewFoundEvidence("the earth is flat", "Flat Earth - Wikipedia",
	"The flat Earth model is an archaic conception.", "https://en.wikipedia.org/wiki/Flat_Earth")

// blockingGenerator waits for the request context to expire.
type blockingGenerator struct{}

func (blockingGenerator) GenerateText(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

type panickingGenerator struct{}

func (panickingGenerator) GenerateText(context.Context, string) (string, error) {
	panic("boom")
}

func TestFormatVerdict_Unconfigured(t *testing.T) {
	f := New(nil, Options{MaxReplyChars: DefaultMaxReplyChars})
	assert.False(t, f.Enabled())

	v := f.FormatVerdict(context.Background(), "the earth is flat", foundEvidence, false)

	assert.Equal(t, domain.OutcomeDegraded, v.Outcome)
	assert.Equal(t, "Claim: the earth is flat\n\nEvidence: "+foundEvidence.Text(), v.Text)
}

func TestFormatVerdict_BackendFailureMatchesUnconfigured(t *testing.T) {
	unconfigured := New(nil, Options{}).FormatVerdict(context.Background(), "the earth is flat", foundEvidence, false)

	gen := mocks.NewMockGenerator(t)
	gen.On("GenerateText", mock.Anything, mock.Anything).Return("", errors.New("503 unavailable")).Once()

	failing := New(gen, Options{}).FormatVerdict(context.Background(), "the earth is flat", foundEvidence, false)

	assert.Equal(t, unconfigured.Text, failing.Text)
	assert.Equal(t, domain.OutcomeDegraded, failing.Outcome)
	gen.AssertNumberOfCalls(t, "GenerateText", 1)
}

func TestFormatVerdict_EmptyOutputDegrades(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("GenerateText", mock.Anything, mock.Anything).Return("   \n", nil).Once()

	v := New(gen, Options{}).FormatVerdict(context.Background(), "claim", domain.NewNoResultsEvidence("claim"), false)

	assert.Equal(t, domain.OutcomeDegraded, v.Outcome)
	assert.Equal(t, "Claim: claim\n\nEvidence: No results found for \"claim\".", v.Text)
}

func TestFormatVerdict_Enriched(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("GenerateText", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "the earth is flat") &&
			strings.Contains(prompt, foundEvidence.Link)
	})).Return("  Verdict: FALSE\nConfidence: high  \n", nil).Once()

	v := New(gen, Options{}).FormatVerdict(context.Background(), "the earth is flat", foundEvidence, false)

	assert.Equal(t, domain.OutcomeEnriched, v.Outcome)
	assert.Equal(t, "Verdict: FALSE\nConfidence: high", v.Text)
}

func TestFormatVerdict_ForwardPrefix(t *testing.T) {
	t.Run("degraded", func(t *testing.T) {
		v := New(nil, Options{}).FormatVerdict(context.Background(), "claim", foundEvidence, true)
		assert.True(t, strings.HasPrefix(v.Text, ForwardPrefix))
		assert.Equal(t, ForwardPrefix+Degraded("claim", foundEvidence), v.Text)
	})

	t.Run("enriched", func(t *testing.T) {
		gen := mocks.NewMockGenerator(t)
		gen.On("GenerateText", mock.Anything, mock.Anything).Return("Verdict: SCAM", nil).Once()

		v := New(gen, Options{}).FormatVerdict(context.Background(), "claim", foundEvidence, true)
		assert.Equal(t, ForwardPrefix+"Verdict: SCAM", v.Text)
	})

	t.Run("not forwarded", func(t *testing.T) {
		v := New(nil, Options{}).FormatVerdict(context.Background(), "claim", foundEvidence, false)
		assert.False(t, strings.HasPrefix(v.Text, ForwardPrefix))
	})
}

func TestFormatVerdict_Timeout(t *testing.T) {
	f := New(blockingGenerator{}, Options{Timeout: 20 * time.Millisecond})

	start := time.Now()
	v := f.FormatVerdict(context.Background(), "claim", foundEvidence, false)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, domain.OutcomeDegraded, v.Outcome)
	assert.Equal(t, Degraded("claim", foundEvidence), v.Text)

	enrichment := f.enrich(context.Background(), "claim", foundEvidence)
	assert.Equal(t, OutcomeTimeout, enrichment.Outcome)
	assert.ErrorIs(t, enrichment.Err, context.DeadlineExceeded)
}

func TestFormatVerdict_GeneratorPanic(t *testing.T) {
	f := New(panickingGenerator{}, Options{})

	var v domain.Verdict
	require.NotPanics(t, func() {
		v = f.FormatVerdict(context.Background(), "claim", foundEvidence, false)
	})
	assert.Equal(t, domain.OutcomeDegraded, v.Outcome)

	enrichment := f.enrich(context.Background(), "claim", foundEvidence)
	assert.Equal(t, OutcomeBackendError, enrichment.Outcome)
}

func TestFormatVerdict_Truncation(t *testing.T) {
	long := strings.Repeat("word ", 100)
	gen := mocks.NewMockGenerator(t)
	gen.On("GenerateText", mock.Anything, mock.Anything).Return(long, nil).Once()

	v := New(gen, Options{MaxReplyChars: 50}).FormatVerdict(context.Background(), "claim", foundEvidence, false)

	assert.Equal(t, 50, utf8.RuneCountInString(v.Text))
	assert.True(t, strings.HasSuffix(v.Text, ellipsis))
}

func TestEnrich_Classification(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		err     error
		outcome Outcome
	}{
		{"success", "Verdict: TRUE", nil, OutcomeEnriched},
		{"blank output", "", nil, OutcomeEmptyOutput},
		{"empty generation error", "", domain.ErrEmptyGeneration, OutcomeEmptyOutput},
		{"deadline", "", context.DeadlineExceeded, OutcomeTimeout},
		{"backend error", "", errors.New("quota exceeded"), OutcomeBackendError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := mocks.NewMockGenerator(t)
			gen.On("GenerateText", mock.Anything, mock.Anything).Return(tt.text, tt.err).Once()

			got := New(gen, Options{}).enrich(context.Background(), "claim", foundEvidence)
			assert.Equal(t, tt.outcome, got.Outcome)
		})
	}

	t.Run("unconfigured", func(t *testing.T) {
		got := New(nil, Options{}).enrich(context.Background(), "claim", foundEvidence)
		assert.Equal(t, OutcomeUnconfigured, got.Outcome)
		assert.NoError(t, got.Err)
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"disabled", "hello world", 0, "hello world"},
		{"fits", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"cut trims trailing space", "hello world", 7, "hello…"},
		{"multibyte", "📩📩📩📩", 3, "📩📩…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.text, tt.max))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("  the earth is flat ", "No results found.", 0)

	assert.Contains(t, prompt, "Claim:\nthe earth is flat\n")
	assert.Contains(t, prompt, "Evidence:\nNo results found.")
	assert.Contains(t, prompt, "under 1550 characters")
	assert.Contains(t, prompt, "MISLEADING/SUSPICIOUS")
}
