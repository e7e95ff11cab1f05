// Package models contains data structures for the forum's domain models.
package models

import "time"

// User is a registered forum account.
type User struct {
	ID       string `gorm:"primaryKey;size:50" json:"id"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:text;not null" json:"-"`
	Fullname string `gorm:"type:text;not null" json:"fullname"`
}

// Authentication is an issued refresh token that has not been revoked.
type Authentication struct {
	Token string `gorm:"primaryKey;type:text" json:"token"`
}

// Thread is the root of a discussion.
type Thread struct {
	ID    string    `gorm:"primaryKey;size:50" json:"id"`
	Title string    `gorm:"type:text;not null" json:"title"`
	Body  string    `gorm:"type:text;not null" json:"body"`
	Owner string    `gorm:"size:50;not null;index" json:"owner"`
	Date  time.Time `gorm:"not null" json:"date"`
}

// Comment belongs to a thread. IsDelete is a one-way soft delete flag.
type Comment struct {
	ID       string    `gorm:"primaryKey;size:50" json:"id"`
	ThreadID string    `gorm:"size:50;not null;index" json:"thread_id"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	Owner    string    `gorm:"size:50;not null" json:"owner"`
	IsDelete bool      `gorm:"not null" json:"is_delete"`
	Date     time.Time `gorm:"not null" json:"date"`
}

// Reply belongs to a comment and follows the same soft delete rule.
type Reply struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	CommentID string    `gorm:"size:50;not null;index" json:"comment_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Owner     string    `gorm:"size:50;not null" json:"owner"`
	IsDelete  bool      `gorm:"not null" json:"is_delete"`
	Date      time.Time `gorm:"not null" json:"date"`
}

// CommentLike records that a user likes a comment.
// The combination of CommentID and UserID must be unique.
type CommentLike struct {
	ID        string `gorm:"primaryKey;size:50" json:"id"`
	CommentID string `gorm:"size:50;not null;uniqueIndex:idx_comment_user" json:"comment_id"`
	UserID    string `gorm:"size:50;not null;uniqueIndex:idx_comment_user" json:"user_id"`
}

// ThreadDetail is a thread row joined with its owner's username.
type ThreadDetail struct {
	ID       string
	Title    string
	Body     string
	Date     Timestamp
	Username string
}

// CommentDetail is a comment row joined with its owner's username.
// Content is the stored value; masking happens when the view is built.
type CommentDetail struct {
	ID       string
	Username string
	Date     Timestamp
	Content  string
	IsDelete bool
}

// ReplyDetail is a reply row joined with its owner's username.
type ReplyDetail struct {
	ID        string
	CommentID string
	Username  string
	Date      Timestamp
	Content   string
	IsDelete  bool
}
