package client

import "github.com/evcraddock/comment-client/comment"

// CreateCommentRequest holds the fields for POST /comment.
type CreateCommentRequest struct {
	Name string
	Text string
}

// UpdateCommentRequest holds the fields for PUT /comment/{id}.
type UpdateCommentRequest struct {
	ID   string
	Name string
	Text string
}

// ListCommentsResult is the response from GET /comments, in server order.
type ListCommentsResult struct {
	Comments []comment.Comment
}

// CommentResult wraps the single comment returned by create and update.
type CommentResult struct {
	Comment comment.Comment
}

// commentPayload is the wire body for create and update.
type commentPayload struct {
	Name string `json:"name"`
	Text string `json:"text"`
}
