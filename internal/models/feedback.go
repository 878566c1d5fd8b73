package models

type FeedbackKind string

const (
	FeedbackNone    FeedbackKind = "none"
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
)

// OperationFeedback is the single-slot transient message derived from the
// most recent remote operation on a resource. At most one is shown per
// resource at a time; a new edit session clears it.
type OperationFeedback struct {
	Kind    FeedbackKind `json:"kind"`
	Message string       `json:"message"`
}

func NoFeedback() OperationFeedback {
	return OperationFeedback{Kind: FeedbackNone}
}

func SuccessFeedback(msg string) OperationFeedback {
	return OperationFeedback{Kind: FeedbackSuccess, Message: msg}
}

func ErrorFeedback(msg string) OperationFeedback {
	return OperationFeedback{Kind: FeedbackError, Message: msg}
}
