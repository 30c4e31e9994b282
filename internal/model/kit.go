package model

import "time"

// KitContent is the generated coffeechat kit payload: common ground with the
// target, questions to open and sustain the conversation, and a one-line
// self-introduction for the user.
type KitContent struct {
	SharedInterests []string `json:"sharedInterests"`
	Starters        []string `json:"starters"`
	FollowUps       []string `json:"followUps"`
	OneLinePitch    string   `json:"oneLinePitch"`
}

// Contact is the networking target a kit was generated for.
type Contact struct {
	ID             int64
	OwnerUserID    int64
	Name           *string
	ProfileURL     *string
	RawProfileText string
	CreatedAt      time.Time
}

// Kit is a persisted kit generation, linked to its contact.
type Kit struct {
	ID           int64
	OwnerUserID  int64
	ContactID    int64
	Content      KitContent
	ModelVersion string
	CreatedAt    time.Time
}

// KitListItem is a kit joined with the bits of its contact that history
// listings show.
type KitListItem struct {
	Kit
	ContactName       *string
	ContactProfileURL *string
}

// KitUserInfo describes the requesting user for kit generation.
type KitUserInfo struct {
	Name       string
	Role       string
	Company    string
	Background string
	Goals      string
}

// KitTargetInfo describes the networking target.
type KitTargetInfo struct {
	ProfileText string
	ProfileURL  string
}
