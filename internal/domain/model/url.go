package model

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var ErrInvalidVideoURL = errors.New("not an OpenVeo video URL")

var videoPathPattern = regexp.MustCompile(`^/publish/video/([\w-]+)$`)

// ParseVideoURL extracts the video id from a public OpenVeo URL such as
// https://openveo.example.com/publish/video/ryiKXvW1X?lang=en.
func ParseVideoURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidVideoURL
	}

	matches := videoPathPattern.FindStringSubmatch(u.Path)
	if matches == nil {
		return "", ErrInvalidVideoURL
	}
	return matches[1], nil
}

// VideoPath is the CDN path of a published video page.
func VideoPath(id string) string {
	return "/publish/video/" + id
}

var videoIDPattern = regexp.MustCompile(`^[\w-]+$`)

// IsValidVideoID reports whether id has the shape of an OpenVeo video id.
func IsValidVideoID(id string) bool {
	return videoIDPattern.MatchString(id)
}
