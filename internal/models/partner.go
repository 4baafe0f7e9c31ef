package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartnerStatus gates what a partner account may do. New accounts start
// pending and must be activated before quoting or submitting leads.
type PartnerStatus string

const (
	PartnerStatusPending PartnerStatus = "pending"
	PartnerStatusActive  PartnerStatus = "active"
	PartnerStatusDenied  PartnerStatus = "denied"
)

type Partner struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	FullName  string             `json:"full_name" bson:"full_name"`
	Company   string             `json:"company" bson:"company"`
	Email     string             `json:"email" bson:"email"`
	Phone     string             `json:"phone" bson:"phone"`
	Password  string             `json:"password,omitempty" bson:"password"`
	Status    PartnerStatus      `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
