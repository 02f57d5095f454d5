package entity

import (
	"time"

	"pricecheck/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidTransition is returned when a proposal is asked to move out of a terminal state.
var ErrInvalidTransition = errors.New("proposal has already been reviewed")

// ProposalStatus is the moderation state of a proposal.
// Pending is the only non-terminal state.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalApproved ProposalStatus = "approved"
	ProposalRejected ProposalStatus = "rejected"
)

// String returns the string representation of the ProposalStatus.
func (s ProposalStatus) String() string {
	return string(s)
}

// IsValid checks if the ProposalStatus is a valid value.
func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalPending, ProposalApproved, ProposalRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s ProposalStatus) IsTerminal() bool {
	return s == ProposalApproved || s == ProposalRejected
}

// Approve returns the state reached by approving from s.
func (s ProposalStatus) Approve() (ProposalStatus, error) {
	if s != ProposalPending {
		return s, ErrInvalidTransition
	}

	return ProposalApproved, nil
}

// Reject returns the state reached by rejecting from s. When allowReviewed is
// set, an already reviewed proposal may be re-marked as rejected; this keeps
// compatibility with deployments that relied on unconditional rejection.
func (s ProposalStatus) Reject(allowReviewed bool) (ProposalStatus, error) {
	if s != ProposalPending && !allowReviewed {
		return s, ErrInvalidTransition
	}

	return ProposalRejected, nil
}

// Review carries the moderation state shared by every proposal kind.
type Review struct {
	Status     ProposalStatus
	ReviewedBy *uuid.UUID
	ReviewedAt *time.Time
}

// Approve moves the review to approved and records the reviewer.
func (r *Review) Approve(reviewerID uuid.UUID, at time.Time) error {
	next, err := r.Status.Approve()
	if err != nil {
		return err
	}
	r.record(next, reviewerID, at)

	return nil
}

// Reject moves the review to rejected and records the reviewer.
func (r *Review) Reject(reviewerID uuid.UUID, at time.Time, allowReviewed bool) error {
	next, err := r.Status.Reject(allowReviewed)
	if err != nil {
		return err
	}
	r.record(next, reviewerID, at)

	return nil
}

func (r *Review) record(status ProposalStatus, reviewerID uuid.UUID, at time.Time) {
	r.Status = status
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &at
}

// ShopProposal is a user-submitted candidate shop awaiting review.
type ShopProposal struct {
	ID              uuid.UUID
	ProposedName    string
	ProposedAddress string
	Latitude        float64
	Longitude       float64
	ProposedBy      uuid.UUID
	Review
	CreatedAt time.Time
}

// ToShop derives the canonical shop created when the proposal is approved.
func (p *ShopProposal) ToShop() *Shop {
	return &Shop{
		Name:      p.ProposedName,
		Address:   p.ProposedAddress,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

// ProductAliasProposal is a user-submitted alternative name for a product.
type ProductAliasProposal struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	ProposedAlias string
	ProposedBy    uuid.UUID
	Review
	CreatedAt time.Time

	// CanonicalName is populated when listing proposals for review.
	CanonicalName string
}

// ToAlias derives the canonical alias created when the proposal is approved.
func (p *ProductAliasProposal) ToAlias() *ProductAlias {
	return &ProductAlias{
		ProductID: p.ProductID,
		AliasName: p.ProposedAlias,
	}
}
