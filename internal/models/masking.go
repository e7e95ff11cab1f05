package models

// Markers shown in place of soft deleted content.
const (
	DeletedCommentMarker = "**komentar telah dihapus**"
	DeletedReplyMarker   = "**balasan telah dihapus**"
)

// MaskComment returns the content a reader sees for a comment.
func MaskComment(content string, isDelete bool) string {
	if isDelete {
		return DeletedCommentMarker
	}
	return content
}

// MaskReply returns the content a reader sees for a reply.
func MaskReply(content string, isDelete bool) string {
	if isDelete {
		return DeletedReplyMarker
	}
	return content
}
