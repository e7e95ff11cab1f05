package server

import "forumapi/internal/service"

// Services are built on first use so tests can construct a Server with only
// the repositories a handler needs.

func (s *Server) userSvc() *service.UserService {
	if s.userService == nil {
		s.userService = service.NewUserService(s.userRepo, s.hasher)
	}
	return s.userService
}

func (s *Server) authSvc() *service.AuthService {
	if s.authService == nil {
		s.authService = service.NewAuthService(s.userRepo, s.authRepo, s.tokens, s.hasher)
	}
	return s.authService
}

func (s *Server) threadSvc() *service.ThreadService {
	if s.threadService == nil {
		s.threadService = service.NewThreadService(
			s.threadRepo, s.commentRepo, s.replyRepo, s.likeRepo, s.featureFlags, s.views)
	}
	return s.threadService
}

func (s *Server) commentSvc() *service.CommentService {
	if s.commentService == nil {
		s.commentService = service.NewCommentService(s.threadRepo, s.commentRepo, s.onThreadChange)
	}
	return s.commentService
}

func (s *Server) replySvc() *service.ReplyService {
	if s.replyService == nil {
		s.replyService = service.NewReplyService(s.threadRepo, s.commentRepo, s.replyRepo, s.onThreadChange)
	}
	return s.replyService
}

func (s *Server) likeSvc() *service.LikeService {
	if s.likeService == nil {
		s.likeService = service.NewLikeService(s.threadRepo, s.commentRepo, s.likeRepo, s.onThreadChange)
	}
	return s.likeService
}

func (s *Server) healthSvc() *service.HealthService {
	if s.healthService == nil {
		s.healthService = service.NewHealthService(s.healthRepo)
	}
	return s.healthService
}
