package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Document is a schema-less record as stored in a collection. The gateway
// only ever reads the ownership and sort fields named below.
type Document = bson.M

const IDField = "_id"
