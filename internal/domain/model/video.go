package model

import (
	"errors"
	"time"
)

// State is the publication state of a video in the OpenVeo catalogue.
type State int

// StatePublished is the only state in which a video can be referenced.
const StatePublished State = 12

const (
	// ThumbnailStyle is appended to the remote thumbnail URL to get the
	// square preview used by the file picker.
	ThumbnailStyle = "?style=publish-square-142"
	ThumbnailSize  = 142
)

var (
	ErrNotPublished = errors.New("video is not published")
)

// Video is a video entity as returned by the OpenVeo web service.
type Video struct {
	ID        string
	Title     string
	State     State
	Thumbnail string
	// Date is expressed in milliseconds since the Unix epoch.
	Date int64
}

// IsPublished reports whether the video is publicly viewable.
// A nil video is never published.
func (v *Video) IsPublished() bool {
	return v != nil && v.State == StatePublished
}

// VideoReference is the normalized reference handed to the host, which
// stores it as an external file reference.
type VideoReference struct {
	ID           string
	Title        string
	ThumbnailURL string
	Extension    string
	// PublishedAt is expressed in seconds since the Unix epoch.
	PublishedAt int64
}

// NewVideoReference builds a reference from a published video.
// Returns ErrNotPublished for any other video, never a partial reference.
func NewVideoReference(v *Video, extension string) (*VideoReference, error) {
	if !v.IsPublished() {
		return nil, ErrNotPublished
	}

	return &VideoReference{
		ID:           v.ID,
		Title:        v.Title,
		ThumbnailURL: v.Thumbnail + ThumbnailStyle,
		Extension:    extension,
		PublishedAt:  v.Date / 1000,
	}, nil
}

// FileName is the synthetic file name stored by the host.
func (r *VideoReference) FileName() string {
	return r.Title + r.Extension
}

// PublishedTime returns PublishedAt as a time.Time.
func (r *VideoReference) PublishedTime() time.Time {
	return time.Unix(r.PublishedAt, 0).UTC()
}
