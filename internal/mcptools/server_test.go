package mcptools

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/advisor"
	"github.com/fyrsmithlabs/launchpad/internal/genai"
	"github.com/fyrsmithlabs/launchpad/internal/session"
	"github.com/fyrsmithlabs/launchpad/internal/store"
	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

// replayClient returns canned text replies, one per Generate call.
type replayClient struct {
	replies []string
}

func (r *replayClient) Generate(_ context.Context, _ *genai.Request) (*genai.Response, error) {
	if len(r.replies) == 0 {
		return nil, fmt.Errorf("replay client: unexpected call")
	}
	text := r.replies[0]
	r.replies = r.replies[1:]
	return &genai.Response{Parts: []genai.Part{{Text: text}}}, nil
}

func testDeps(t *testing.T) (*store.Store, *session.Session, *advisor.Service) {
	t.Helper()
	st, err := store.New(store.NewMemKV(), zap.NewNop())
	require.NoError(t, err)
	sess, err := session.New(st, zap.NewNop())
	require.NoError(t, err)
	client := genai.NewGeminiClient(genai.Config{APIKey: "test"}, zap.NewNop())
	adv, err := advisor.NewService(client, advisor.Config{}, zap.NewNop())
	require.NoError(t, err)
	return st, sess, adv
}

func TestNewServer(t *testing.T) {
	st, sess, adv := testDeps(t)

	srv, err := NewServer(nil, st, sess, adv, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_RequiresServices(t *testing.T) {
	st, sess, adv := testDeps(t)

	_, err := NewServer(nil, nil, sess, adv, nil)
	assert.Error(t, err)

	_, err = NewServer(nil, st, nil, adv, nil)
	assert.Error(t, err)

	_, err = NewServer(nil, st, sess, nil, nil)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "launchpad", cfg.Name)
	assert.NotEmpty(t, cfg.Version)
}

func TestMentorChatPersistsTranscript(t *testing.T) {
	st, err := store.New(store.NewMemKV(), zap.NewNop())
	require.NoError(t, err)
	sess, err := session.New(st, zap.NewNop())
	require.NoError(t, err)
	adv, err := advisor.NewService(&replayClient{replies: []string{"Make it simpler."}}, advisor.Config{}, zap.NewNop())
	require.NoError(t, err)
	srv, err := NewServer(nil, st, sess, adv, zap.NewNop())
	require.NoError(t, err)

	p, err := st.Create("Plantly")
	require.NoError(t, err)

	out, err := srv.mentorChat(context.Background(), mentorChatInput{
		ProjectID: p.ID,
		Message:   "How do I focus?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Make it simpler.", out.Reply)

	persisted, err := st.Get(p.ID)
	require.NoError(t, err)
	require.Len(t, persisted.Data.Mentor.Messages, 2)
	assert.Equal(t, venture.MentorRoleUser, persisted.Data.Mentor.Messages[0].Role)
	assert.Equal(t, "How do I focus?", persisted.Data.Mentor.Messages[0].Text)
	assert.Equal(t, venture.MentorRoleMentor, persisted.Data.Mentor.Messages[1].Role)
	assert.Equal(t, "Make it simpler.", persisted.Data.Mentor.Messages[1].Text)
}

func TestMentorChatRequiresMessage(t *testing.T) {
	st, sess, adv := testDeps(t)
	srv, err := NewServer(nil, st, sess, adv, zap.NewNop())
	require.NoError(t, err)

	_, err = srv.mentorChat(context.Background(), mentorChatInput{ProjectID: "p1"})
	require.Error(t, err)
}
