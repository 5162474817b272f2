package model

import "time"

// CompanyType identifies the regulated vertical a customer operates in.
type CompanyType string

const (
	CompanyDigitalHealth CompanyType = "digital_health"
	CompanyInsurtech     CompanyType = "insurtech"
)

// User is a registered startup account
type User struct {
	ID          string      `json:"id" bson:"id"`
	Email       string      `json:"email" bson:"email"`
	CompanyName string      `json:"company_name" bson:"company_name"`
	CompanyType CompanyType `json:"company_type" bson:"company_type"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`

	// Never serialized to clients
	HashedPassword string `json:"-" bson:"hashed_password"`
}
