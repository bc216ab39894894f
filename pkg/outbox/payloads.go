package outbox

import "github.com/google/uuid"

// Payload schemas for catalogue events, version 1.

type ItemCreatedEvent struct {
	ItemID      uuid.UUID  `json:"itemId"`
	ProjectID   uuid.UUID  `json:"projectId"`
	CategoryID  uuid.UUID  `json:"categoryId"`
	Name        string     `json:"name"`
	CandidateID *uuid.UUID `json:"candidateId,omitempty"`
}

type CandidatePromotedEvent struct {
	CandidateID uuid.UUID `json:"candidateId"`
	ItemID      uuid.UUID `json:"itemId"`
	ProjectID   uuid.UUID `json:"projectId"`
}

type LotAssignedEvent struct {
	ItemID            uuid.UUID `json:"itemId"`
	ProjectID         uuid.UUID `json:"projectId"`
	LotNumber         string    `json:"lotNumber"`
	PreviousLotNumber string    `json:"previousLotNumber,omitempty"`
	Condition         string    `json:"condition"`
}

type ItemDeletedEvent struct {
	ItemID         uuid.UUID `json:"itemId"`
	ProjectID      uuid.UUID `json:"projectId"`
	DetailsRemoved int64     `json:"detailsRemoved"`
}

type ProjectClosedEvent struct {
	ProjectID      uuid.UUID `json:"projectId"`
	ItemsRemoved   int64     `json:"itemsRemoved"`
	DetailsRemoved int64     `json:"detailsRemoved"`
}

type ProjectDeletedEvent struct {
	ProjectID         uuid.UUID `json:"projectId"`
	CategoriesRemoved int64     `json:"categoriesRemoved"`
	ItemsRemoved      int64     `json:"itemsRemoved"`
	DetailsRemoved    int64     `json:"detailsRemoved"`
}
