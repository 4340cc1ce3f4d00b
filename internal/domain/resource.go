package domain

import "time"

// KYC is an identity document submitted by its owner.
type KYC struct {
	ID        string
	UserID    string
	Document  string
	ObjectKey string
	CreatedAt time.Time
}

// Post is a short piece of content owned by a user.
type Post struct {
	ID        string
	UserID    string
	Content   string
	CreatedAt time.Time
}
