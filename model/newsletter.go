package model

import "time"

type NewsletterSubscriber struct {
	ID           uint64    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SubscribeResponse struct {
	Message           string `json:"message"`
	AlreadySubscribed bool   `json:"already_subscribed"`
}
