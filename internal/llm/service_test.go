package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-sage/internal/config"
	"github.com/sevigo/code-sage/internal/core"
	"github.com/sevigo/code-sage/mocks"
)

func newTestService(t *testing.T, gen core.Generator, timeout time.Duration) *ReviewService {
	t.Helper()
	pm, err := NewPromptManager()
	require.NoError(t, err)

	cfg := &config.Config{LLMProvider: config.ProviderGemini, ReviewTimeout: timeout}
	svc, err := NewReviewService(cfg, pm, gen, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return svc
}

func TestReviewService_Review(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Name().Return("gemini/test").AnyTimes()

	code := "const x = 1\n"
	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), code).
		DoAndReturn(func(_ context.Context, system, _ string) (string, error) {
			assert.Contains(t, system, "expert code reviewer")
			return "Summary: Looks fine.\n\nSuggestions:\n- Use const\n- Add tests\n", nil
		})

	svc := newTestService(t, gen, time.Second)
	got, err := svc.Review(context.Background(), code)
	require.NoError(t, err)

	assert.Equal(t, "Looks fine.", got.Summary)
	assert.Equal(t, []string{"- Use const", "- Add tests"}, got.Suggestions)
}

func TestReviewService_EmptyCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Name().Return("gemini/test").AnyTimes()
	gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := newTestService(t, gen, time.Second)
	_, err := svc.Review(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestReviewService_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Name().Return("gemini/test").AnyTimes()

	cause := errors.New("quota exceeded")
	gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", cause)

	svc := newTestService(t, gen, time.Second)
	_, err := svc.Review(context.Background(), "x")
	assert.ErrorIs(t, err, core.ErrUpstream)
	assert.ErrorIs(t, err, cause)
}

func TestReviewService_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Name().Return("gemini/test").AnyTimes()

	started := make(chan struct{})
	release := make(chan struct{})
	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string) (string, error) {
			close(started)
			<-release
			return "Summary: late", nil
		})

	svc := newTestService(t, gen, 20*time.Millisecond)
	_, err := svc.Review(context.Background(), "x")
	assert.ErrorIs(t, err, core.ErrUpstream)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	<-started
	close(release)
}

func TestReviewService_UnstructuredReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Name().Return("gemini/test").AnyTimes()
	gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("free text", nil)

	svc := newTestService(t, gen, time.Second)
	got, err := svc.Review(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, got.Summary)
	assert.NotNil(t, got.Suggestions)
	assert.Empty(t, got.Suggestions)
}
