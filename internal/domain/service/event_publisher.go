package service

import (
	"context"
	"time"
)

// ProposalKind names the kind of proposal a moderation event refers to.
type ProposalKind string

const (
	ProposalKindShop         ProposalKind = "shop"
	ProposalKindProductAlias ProposalKind = "product_alias"
)

// ProposalReviewedEvent is emitted after a proposal review has been committed.
type ProposalReviewedEvent struct {
	RequestID   string       `json:"request_id,omitempty"` // For distributed tracing
	ProposalID  string       `json:"proposal_id"`
	Kind        ProposalKind `json:"kind"`
	Status      string       `json:"status"`
	ReviewerID  string       `json:"reviewer_id"`
	CanonicalID string       `json:"canonical_id,omitempty"` // Shop or alias created on approval
	ReviewedAt  time.Time    `json:"reviewed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProposalReviewed publishes a moderation audit event
	PublishProposalReviewed(ctx context.Context, event *ProposalReviewedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
