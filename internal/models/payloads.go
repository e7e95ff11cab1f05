package models

import (
	"forumapi/internal/validation"
)

// Payload is a decoded JSON request body. Values keep their JSON types so
// constructors can tell a missing property from one of the wrong type.
type Payload map[string]any

// stringProps extracts the named properties as strings. A property that is absent,
// null or empty is missing; a property that is present but not a string has the
// wrong type. Missing properties are reported before wrong types.
func (p Payload) stringProps(entity string, keys ...string) ([]string, error) {
	out := make([]string, len(keys))
	wrongType := false
	for i, key := range keys {
		raw, ok := p[key]
		if !ok || raw == nil {
			return nil, domainErr(entity, ReasonMissingProperty)
		}
		s, isStr := raw.(string)
		if !isStr {
			wrongType = true
			continue
		}
		if s == "" {
			return nil, domainErr(entity, ReasonMissingProperty)
		}
		out[i] = s
	}
	if wrongType {
		return nil, domainErr(entity, ReasonWrongType)
	}
	return out, nil
}

// NewThread is a validated request to create a thread.
type NewThread struct {
	Title string
	Body  string
	Owner string
}

// NewAddThread validates a thread payload. Markup is stripped from title and body.
func NewAddThread(p Payload, owner string) (*NewThread, error) {
	v, err := p.stringProps("ADD_THREAD", "title", "body")
	if err != nil {
		return nil, err
	}
	if owner == "" {
		return nil, domainErr("ADD_THREAD", ReasonMissingProperty)
	}
	title, body := validation.StripMarkup(v[0]), validation.StripMarkup(v[1])
	if title == "" || body == "" {
		return nil, domainErr("ADD_THREAD", ReasonMissingProperty)
	}
	return &NewThread{Title: title, Body: body, Owner: owner}, nil
}

// NewComment is a validated request to comment on a thread.
type NewComment struct {
	ThreadID string
	Content  string
	Owner    string
}

func NewAddComment(p Payload, threadID, owner string) (*NewComment, error) {
	v, err := p.stringProps("ADD_COMMENT", "content")
	if err != nil {
		return nil, err
	}
	content := validation.StripMarkup(v[0])
	if content == "" || threadID == "" || owner == "" {
		return nil, domainErr("ADD_COMMENT", ReasonMissingProperty)
	}
	return &NewComment{ThreadID: threadID, Content: content, Owner: owner}, nil
}

// NewReply is a validated request to reply to a comment.
type NewReply struct {
	CommentID string
	Content   string
	Owner     string
}

func NewAddReply(p Payload, commentID, owner string) (*NewReply, error) {
	v, err := p.stringProps("ADD_REPLY", "content")
	if err != nil {
		return nil, err
	}
	content := validation.StripMarkup(v[0])
	if content == "" || commentID == "" || owner == "" {
		return nil, domainErr("ADD_REPLY", ReasonMissingProperty)
	}
	return &NewReply{CommentID: commentID, Content: content, Owner: owner}, nil
}

// RegisterUser is a validated registration request. Password is plain text
// until the user service replaces it with a hash.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

func NewRegisterUser(p Payload) (*RegisterUser, error) {
	v, err := p.stringProps("REGISTER_USER", "username", "password", "fullname")
	if err != nil {
		return nil, err
	}
	switch validation.CheckUsername(v[0]) {
	case validation.UsernameTooLong:
		return nil, domainErr("REGISTER_USER", "USERNAME_LIMIT_CHAR")
	case validation.UsernameRestricted:
		return nil, domainErr("REGISTER_USER", "USERNAME_CONTAIN_RESTRICTED_CHARACTER")
	}
	return &RegisterUser{Username: v[0], Password: v[1], Fullname: v[2]}, nil
}

// UserLogin is a validated login request.
type UserLogin struct {
	Username string
	Password string
}

func NewUserLogin(p Payload) (*UserLogin, error) {
	v, err := p.stringProps("USER_LOGIN", "username", "password")
	if err != nil {
		return nil, err
	}
	return &UserLogin{Username: v[0], Password: v[1]}, nil
}

// Use case prefixes for refresh token payloads.
const (
	RefreshAuthentication = "REFRESH_AUTHENTICATION_USE_CASE"
	DeleteAuthentication  = "DELETE_AUTHENTICATION_USE_CASE"
)

// RefreshTokenFrom extracts the refreshToken property for the given use case.
func RefreshTokenFrom(p Payload, useCase string) (string, error) {
	raw, ok := p["refreshToken"]
	if !ok || raw == nil || raw == "" {
		return "", domainErr(useCase, "NOT_CONTAIN_REFRESH_TOKEN")
	}
	token, isStr := raw.(string)
	if !isStr {
		return "", domainErr(useCase, "PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return token, nil
}
