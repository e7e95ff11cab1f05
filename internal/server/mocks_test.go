package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"forumapi/internal/config"
	"forumapi/internal/featureflags"
	"forumapi/internal/models"
	"forumapi/internal/notifications"
	"forumapi/internal/security"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockThreadRepository struct {
	mock.Mock
}

func (m *MockThreadRepository) Add(ctx context.Context, thread *models.NewThread) (*models.AddedThread, error) {
	args := m.Called(ctx, thread)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AddedThread), args.Error(1)
}

func (m *MockThreadRepository) VerifyExists(ctx context.Context, threadID string) error {
	args := m.Called(ctx, threadID)
	return args.Error(0)
}

func (m *MockThreadRepository) GetDetail(ctx context.Context, threadID string) (*models.ThreadDetail, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ThreadDetail), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Add(ctx context.Context, comment *models.NewComment) (*models.AddedComment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AddedComment), args.Error(1)
}

func (m *MockCommentRepository) VerifyInThread(ctx context.Context, commentID, threadID string) error {
	args := m.Called(ctx, commentID, threadID)
	return args.Error(0)
}

func (m *MockCommentRepository) GetOwner(ctx context.Context, commentID string) (string, error) {
	args := m.Called(ctx, commentID)
	return args.String(0), args.Error(1)
}

func (m *MockCommentRepository) SoftDelete(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByThread(ctx context.Context, threadID string) ([]models.CommentDetail, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentDetail), args.Error(1)
}

type MockReplyRepository struct {
	mock.Mock
}

func (m *MockReplyRepository) Add(ctx context.Context, reply *models.NewReply) (*models.AddedReply, error) {
	args := m.Called(ctx, reply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AddedReply), args.Error(1)
}

func (m *MockReplyRepository) VerifyInComment(ctx context.Context, replyID, commentID string) error {
	args := m.Called(ctx, replyID, commentID)
	return args.Error(0)
}

func (m *MockReplyRepository) GetOwner(ctx context.Context, replyID string) (string, error) {
	args := m.Called(ctx, replyID)
	return args.String(0), args.Error(1)
}

func (m *MockReplyRepository) SoftDelete(ctx context.Context, replyID string) error {
	args := m.Called(ctx, replyID)
	return args.Error(0)
}

func (m *MockReplyRepository) ListByComment(ctx context.Context, commentID string) ([]models.ReplyDetail, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReplyDetail), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Exists(ctx context.Context, commentID, userID string) (bool, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Add(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockLikeRepository) Remove(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockLikeRepository) CountByComment(ctx context.Context, commentID string) (int, error) {
	args := m.Called(ctx, commentID)
	return args.Int(0), args.Error(1)
}

func (m *MockLikeRepository) CountByThread(ctx context.Context, threadID string) (map[string]int, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, user *models.RegisterUser) (*models.RegisteredUser, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegisteredUser), args.Error(1)
}

func (m *MockUserRepository) VerifyUsernameAvailable(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockUserRepository) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) GetIDByUsername(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

type MockAuthenticationRepository struct {
	mock.Mock
}

func (m *MockAuthenticationRepository) Add(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthenticationRepository) VerifyExists(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthenticationRepository) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockHealthRepository struct {
	mock.Mock
}

func (m *MockHealthRepository) Now(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

// testServer bundles a Server wired to mocks with the mocks themselves.
type testServer struct {
	*Server
	threads  *MockThreadRepository
	comments *MockCommentRepository
	replies  *MockReplyRepository
	likes    *MockLikeRepository
	users    *MockUserRepository
	auths    *MockAuthenticationRepository
	health   *MockHealthRepository
	tokens   *security.TokenManager
}

func newTestServer(t *testing.T, flags string) *testServer {
	t.Helper()
	tokens := security.NewTokenManager("access-key-for-server-tests", "refresh-key-for-server-tests", time.Hour)
	ts := &testServer{
		threads:  new(MockThreadRepository),
		comments: new(MockCommentRepository),
		replies:  new(MockReplyRepository),
		likes:    new(MockLikeRepository),
		users:    new(MockUserRepository),
		auths:    new(MockAuthenticationRepository),
		health:   new(MockHealthRepository),
		tokens:   tokens,
	}
	ts.Server = &Server{
		config:       &config.Config{AllowedOrigins: "http://localhost:5173"},
		threadRepo:   ts.threads,
		commentRepo:  ts.comments,
		replyRepo:    ts.replies,
		likeRepo:     ts.likes,
		userRepo:     ts.users,
		authRepo:     ts.auths,
		healthRepo:   ts.health,
		tokens:       tokens,
		hasher:       &security.BcryptHasher{Cost: bcrypt.MinCost},
		hub:          notifications.NewThreadHub(),
		featureFlags: featureflags.NewManager(flags),
	}
	return ts
}

// routes returns an app with the production routes and error handler but
// without the global middleware chain.
func (ts *testServer) routes() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	ts.SetupRoutes(app)
	return app
}

func (ts *testServer) bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := ts.tokens.CreateAccessToken(security.TokenPayload{ID: userID, Username: "dicoding"})
	require.NoError(t, err)
	return "Bearer " + token
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = strings.NewReader(string(raw))
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

// doRaw issues a GET and decodes the body as a plain JSON object.
func doRaw(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}
