package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchLogEntry represents a persisted audit record of a proxied search.
type SearchLogEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	Message    string             `bson:"message" json:"message"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`

	// Translation details for requests that carried keywords.
	Keywords         string `bson:"keywords,omitempty" json:"keywords,omitempty"`
	ResolvedKeywords string `bson:"resolved_keywords,omitempty" json:"resolved_keywords,omitempty"`
	Outcome          string `bson:"outcome,omitempty" json:"outcome,omitempty"`
}
