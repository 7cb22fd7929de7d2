package models

// InsertResult is returned by create endpoints.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// UpdateResult is returned by upsert and status endpoints. UpsertedID is nil
// unless the write created a document.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// DeleteResult is returned by delete endpoints. A zero count is not an error.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// TokenResponse is returned by the token endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// Image describes an uploaded listing image.
type Image struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse builds an ErrorResponse with the given message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: true, Message: message}
}
