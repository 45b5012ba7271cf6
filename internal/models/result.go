package models

// InsertResult is returned to clients after a document is stored.
// InsertedID is a generated ObjectID unless the client supplied its own _id,
// in which case it is that value unchanged.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// DeleteResult is returned to clients after a delete by id.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
