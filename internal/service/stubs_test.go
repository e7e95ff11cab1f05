package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"forumapi/internal/models"
	"forumapi/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threadRepoStub is a stub for repository.ThreadRepository.
type threadRepoStub struct {
	addFn          func(context.Context, *models.NewThread) (*models.AddedThread, error)
	verifyExistsFn func(context.Context, string) error
	getDetailFn    func(context.Context, string) (*models.ThreadDetail, error)
}

func (s *threadRepoStub) Add(ctx context.Context, t *models.NewThread) (*models.AddedThread, error) {
	return s.addFn(ctx, t)
}
func (s *threadRepoStub) VerifyExists(ctx context.Context, id string) error {
	return s.verifyExistsFn(ctx, id)
}
func (s *threadRepoStub) GetDetail(ctx context.Context, id string) (*models.ThreadDetail, error) {
	return s.getDetailFn(ctx, id)
}

func noopThreadRepo() *threadRepoStub {
	return &threadRepoStub{
		addFn: func(_ context.Context, t *models.NewThread) (*models.AddedThread, error) {
			return &models.AddedThread{ID: "thread-123", Title: t.Title, Owner: t.Owner}, nil
		},
		verifyExistsFn: func(_ context.Context, _ string) error { return nil },
		getDetailFn: func(_ context.Context, id string) (*models.ThreadDetail, error) {
			return &models.ThreadDetail{ID: id, Title: "judul", Body: "isi", Username: "dicoding",
				Date: models.TimeOf(time.Date(2021, 8, 8, 7, 19, 9, 775000000, time.UTC))}, nil
		},
	}
}

func missingThreadRepo() *threadRepoStub {
	repo := noopThreadRepo()
	repo.verifyExistsFn = func(_ context.Context, _ string) error {
		return models.NewNotFoundError(models.MsgThreadNotFound)
	}
	repo.getDetailFn = func(_ context.Context, _ string) (*models.ThreadDetail, error) {
		return nil, models.NewNotFoundError(models.MsgThreadNotFound)
	}
	return repo
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	addFn            func(context.Context, *models.NewComment) (*models.AddedComment, error)
	verifyInThreadFn func(context.Context, string, string) error
	getOwnerFn       func(context.Context, string) (string, error)
	softDeleteFn     func(context.Context, string) error
	listByThreadFn   func(context.Context, string) ([]models.CommentDetail, error)
}

func (s *commentRepoStub) Add(ctx context.Context, c *models.NewComment) (*models.AddedComment, error) {
	return s.addFn(ctx, c)
}
func (s *commentRepoStub) VerifyInThread(ctx context.Context, commentID, threadID string) error {
	return s.verifyInThreadFn(ctx, commentID, threadID)
}
func (s *commentRepoStub) GetOwner(ctx context.Context, id string) (string, error) {
	return s.getOwnerFn(ctx, id)
}
func (s *commentRepoStub) SoftDelete(ctx context.Context, id string) error {
	return s.softDeleteFn(ctx, id)
}
func (s *commentRepoStub) ListByThread(ctx context.Context, threadID string) ([]models.CommentDetail, error) {
	return s.listByThreadFn(ctx, threadID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		addFn: func(_ context.Context, c *models.NewComment) (*models.AddedComment, error) {
			return &models.AddedComment{ID: "comment-123", Content: c.Content, Owner: c.Owner}, nil
		},
		verifyInThreadFn: func(_ context.Context, _, _ string) error { return nil },
		getOwnerFn:       func(_ context.Context, _ string) (string, error) { return "user-123", nil },
		softDeleteFn:     func(_ context.Context, _ string) error { return nil },
		listByThreadFn:   func(_ context.Context, _ string) ([]models.CommentDetail, error) { return nil, nil },
	}
}

// replyRepoStub is a stub for repository.ReplyRepository.
type replyRepoStub struct {
	addFn             func(context.Context, *models.NewReply) (*models.AddedReply, error)
	verifyInCommentFn func(context.Context, string, string) error
	getOwnerFn        func(context.Context, string) (string, error)
	softDeleteFn      func(context.Context, string) error
	listByCommentFn   func(context.Context, string) ([]models.ReplyDetail, error)
}

func (s *replyRepoStub) Add(ctx context.Context, r *models.NewReply) (*models.AddedReply, error) {
	return s.addFn(ctx, r)
}
func (s *replyRepoStub) VerifyInComment(ctx context.Context, replyID, commentID string) error {
	return s.verifyInCommentFn(ctx, replyID, commentID)
}
func (s *replyRepoStub) GetOwner(ctx context.Context, id string) (string, error) {
	return s.getOwnerFn(ctx, id)
}
func (s *replyRepoStub) SoftDelete(ctx context.Context, id string) error {
	return s.softDeleteFn(ctx, id)
}
func (s *replyRepoStub) ListByComment(ctx context.Context, commentID string) ([]models.ReplyDetail, error) {
	return s.listByCommentFn(ctx, commentID)
}

func noopReplyRepo() *replyRepoStub {
	return &replyRepoStub{
		addFn: func(_ context.Context, r *models.NewReply) (*models.AddedReply, error) {
			return &models.AddedReply{ID: "reply-123", Content: r.Content, Owner: r.Owner}, nil
		},
		verifyInCommentFn: func(_ context.Context, _, _ string) error { return nil },
		getOwnerFn:        func(_ context.Context, _ string) (string, error) { return "user-123", nil },
		softDeleteFn:      func(_ context.Context, _ string) error { return nil },
		listByCommentFn:   func(_ context.Context, _ string) ([]models.ReplyDetail, error) { return nil, nil },
	}
}

// likeRepoStub keeps likes in memory so toggles can be observed.
type likeRepoStub struct {
	likes         map[[2]string]bool
	existsErr     error
	countByThread func(context.Context, string) (map[string]int, error)
}

func newLikeRepoStub() *likeRepoStub {
	return &likeRepoStub{likes: map[[2]string]bool{}}
}

func (s *likeRepoStub) Exists(_ context.Context, commentID, userID string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.likes[[2]string{commentID, userID}], nil
}
func (s *likeRepoStub) Add(_ context.Context, commentID, userID string) error {
	s.likes[[2]string{commentID, userID}] = true
	return nil
}
func (s *likeRepoStub) Remove(_ context.Context, commentID, userID string) error {
	delete(s.likes, [2]string{commentID, userID})
	return nil
}
func (s *likeRepoStub) CountByComment(_ context.Context, commentID string) (int, error) {
	n := 0
	for k := range s.likes {
		if k[0] == commentID {
			n++
		}
	}
	return n, nil
}
func (s *likeRepoStub) CountByThread(ctx context.Context, threadID string) (map[string]int, error) {
	if s.countByThread != nil {
		return s.countByThread(ctx, threadID)
	}
	return map[string]int{}, nil
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	addFn                     func(context.Context, *models.RegisterUser) (*models.RegisteredUser, error)
	verifyUsernameAvailableFn func(context.Context, string) error
	getPasswordByUsernameFn   func(context.Context, string) (string, error)
	getIDByUsernameFn         func(context.Context, string) (string, error)
}

func (s *userRepoStub) Add(ctx context.Context, u *models.RegisterUser) (*models.RegisteredUser, error) {
	return s.addFn(ctx, u)
}
func (s *userRepoStub) VerifyUsernameAvailable(ctx context.Context, username string) error {
	return s.verifyUsernameAvailableFn(ctx, username)
}
func (s *userRepoStub) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	return s.getPasswordByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetIDByUsername(ctx context.Context, username string) (string, error) {
	return s.getIDByUsernameFn(ctx, username)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		addFn: func(_ context.Context, u *models.RegisterUser) (*models.RegisteredUser, error) {
			return &models.RegisteredUser{ID: "user-123", Username: u.Username, Fullname: u.Fullname}, nil
		},
		verifyUsernameAvailableFn: func(_ context.Context, _ string) error { return nil },
		getPasswordByUsernameFn:   func(_ context.Context, _ string) (string, error) { return "hashed:secret", nil },
		getIDByUsernameFn:         func(_ context.Context, _ string) (string, error) { return "user-123", nil },
	}
}

// authRepoStub keeps refresh tokens in memory.
type authRepoStub struct {
	tokens map[string]bool
}

func newAuthRepoStub(tokens ...string) *authRepoStub {
	s := &authRepoStub{tokens: map[string]bool{}}
	for _, t := range tokens {
		s.tokens[t] = true
	}
	return s
}

func (s *authRepoStub) Add(_ context.Context, token string) error {
	s.tokens[token] = true
	return nil
}
func (s *authRepoStub) VerifyExists(_ context.Context, token string) error {
	if !s.tokens[token] {
		return models.NewValidationError(models.MsgRefreshTokenNotFound)
	}
	return nil
}
func (s *authRepoStub) Delete(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

// fakeHasher prefixes passwords instead of hashing them.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Compare(password, hash string) error {
	if "hashed:"+password != hash {
		return models.NewUnauthorizedError("kredensial yang Anda masukkan salah")
	}
	return nil
}

// fakeTokens issues readable tokens of the form kind:id:username.
type fakeTokens struct{}

func (fakeTokens) CreateAccessToken(p security.TokenPayload) (string, error) {
	return "access:" + p.ID + ":" + p.Username, nil
}
func (fakeTokens) CreateRefreshToken(p security.TokenPayload) (string, error) {
	return "refresh:" + p.ID + ":" + p.Username, nil
}
func (fakeTokens) VerifyRefreshToken(token string) (*security.TokenPayload, error) {
	if !strings.HasPrefix(token, "refresh:") {
		return nil, models.NewValidationError("refresh token tidak valid")
	}
	return fakeTokens{}.DecodePayload(token)
}
func (fakeTokens) DecodePayload(token string) (*security.TokenPayload, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 {
		return nil, errors.New("malformed token")
	}
	return &security.TokenPayload{ID: parts[1], Username: parts[2]}, nil
}

// eventRecorder collects events passed to an EventHook.
type eventRecorder struct {
	events []models.ThreadEvent
}

func (r *eventRecorder) hook() EventHook {
	return func(_ context.Context, ev models.ThreadEvent) {
		r.events = append(r.events, ev)
	}
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertDomainError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *models.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %T: %v", err, err)
	assert.Equal(t, code, domainErr.Code)
}
