package models

import "time"

type Platform string

const (
	PlatformTwitter   Platform = "Twitter"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformGitHub    Platform = "GitHub"
)

var Platforms = []Platform{PlatformTwitter, PlatformLinkedIn, PlatformInstagram, PlatformFacebook, PlatformGitHub}

func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

type SocialMediaLink struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Platform  Platform  `json:"platform"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type SocialMediaLinkRequest struct {
	Platform Platform `json:"platform" binding:"required,platform"`
	URL      string   `json:"url" binding:"required,url"`
}
