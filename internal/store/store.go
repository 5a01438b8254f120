// Package store persists the course video catalog in DynamoDB.
//
// One item per uploaded video. Items are keyed by the catalog ID derived
// from the object key and the request that cataloged it, and attribute
// names match what the course web app reads (courseName, videoId, _id,
// title, order, watched, ...). Every write is a full-item PutItem, so a
// repeated write for the same ID replaces the earlier one.
package store

import (
	"context"
	"fmt"
)

// tablePrefix is combined with the deployment environment into the table name.
const tablePrefix = "video-course-app-videos-"

// DefaultEnv is used when no deployment environment is configured.
const DefaultEnv = "dev"

// VideoTableName returns the catalog table for a deployment environment.
func VideoTableName(env string) string {
	if env == "" {
		env = DefaultEnv
	}
	return tablePrefix + env
}

// Video is one catalog item.
type Video struct {
	ID          string  `dynamodbav:"_id" json:"_id"`
	VideoID     string  `dynamodbav:"videoId" json:"videoId"`
	CourseName  string  `dynamodbav:"courseName" json:"courseName"`
	Title       string  `dynamodbav:"title" json:"title"`
	Description string  `dynamodbav:"description" json:"description"`
	VideoURL    string  `dynamodbav:"videoUrl" json:"videoUrl"`
	Order       int     `dynamodbav:"order" json:"order"`
	Watched     bool    `dynamodbav:"watched" json:"watched"`
	WatchedAt   *string `dynamodbav:"watchedAt" json:"watchedAt"`
	CreatedAt   string  `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt   string  `dynamodbav:"updatedAt" json:"updatedAt"`
	RequestID   string  `dynamodbav:"requestId,omitempty" json:"requestId,omitempty"`
}

// Description returns the catalog description for an uploaded filename.
func Description(filename string) string {
	return fmt.Sprintf("Video: %s", filename)
}

// VideoStore writes catalog items.
type VideoStore interface {
	// PutVideo creates or replaces the item for video.ID.
	PutVideo(ctx context.Context, video *Video) error
}
