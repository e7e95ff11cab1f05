package models

// ThreadView is the nested read model returned by the thread detail endpoint.
type ThreadView struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Body     string        `json:"body"`
	Date     string        `json:"date"`
	Username string        `json:"username"`
	Comments []CommentView `json:"comments"`
}

type CommentView struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Date      string      `json:"date"`
	Content   string      `json:"content"`
	LikeCount *int        `json:"likeCount,omitempty"`
	Replies   []ReplyView `json:"replies"`
}

type ReplyView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

// AddedThread is returned after a thread is stored.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// AddedComment is returned after a comment is stored.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// AddedReply is returned after a reply is stored.
type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// RegisteredUser is returned after registration. It never carries the password.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// NewAddedThread checks that every field of a stored thread is present.
func NewAddedThread(id, title, owner string) (*AddedThread, error) {
	if id == "" || title == "" || owner == "" {
		return nil, domainErr("ADDED_THREAD", ReasonMissingProperty)
	}
	return &AddedThread{ID: id, Title: title, Owner: owner}, nil
}

// NewAddedComment checks that every field of a stored comment is present.
func NewAddedComment(id, content, owner string) (*AddedComment, error) {
	if id == "" || content == "" || owner == "" {
		return nil, domainErr("ADDED_COMMENT", ReasonMissingProperty)
	}
	return &AddedComment{ID: id, Content: content, Owner: owner}, nil
}

// NewAddedReply checks that every field of a stored reply is present.
func NewAddedReply(id, content, owner string) (*AddedReply, error) {
	if id == "" || content == "" || owner == "" {
		return nil, domainErr("ADDED_REPLY", ReasonMissingProperty)
	}
	return &AddedReply{ID: id, Content: content, Owner: owner}, nil
}

// ThreadEvent is published whenever a mutation changes what a thread view shows.
type ThreadEvent struct {
	Type      string `json:"type"`
	ThreadID  string `json:"thread_id"`
	CommentID string `json:"comment_id,omitempty"`
	ReplyID   string `json:"reply_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
}

// Thread event types.
const (
	EventCommentAdded   = "comment_added"
	EventCommentDeleted = "comment_deleted"
	EventReplyAdded     = "reply_added"
	EventReplyDeleted   = "reply_deleted"
	EventCommentLiked   = "comment_liked"
	EventCommentUnliked = "comment_unliked"
)
