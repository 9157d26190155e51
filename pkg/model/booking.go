package model

import (
	"time"
)

// AddOn is an optional extra attached to a grooming service. Price is a
// structured field; it is never derived from the display label.
type AddOn struct {
	Name  string `json:"name" bson:"name" validate:"required,min=2,max=50"`
	Price int    `json:"price" bson:"price" validate:"min=0"`
}

type Pet struct {
	Name            string `json:"name" bson:"name" validate:"required,min=1,max=50"`
	Breed           string `json:"breed" bson:"breed" validate:"required,min=2,max=50"`
	Age             string `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,max=20"`
	Gender          string `json:"gender,omitempty" bson:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Birthdate       string `json:"birthdate,omitempty" bson:"birthdate,omitempty" validate:"omitempty,datekey"`
	Allergies       string `json:"allergies,omitempty" bson:"allergies,omitempty" validate:"omitempty,max=200"`
	LastVaccination string `json:"last_vaccination,omitempty" bson:"last_vaccination,omitempty" validate:"omitempty,datekey"`
	HealthHistory   string `json:"health_history,omitempty" bson:"health_history,omitempty" validate:"omitempty,max=1000"`
}

type Owner struct {
	Name          string `json:"name" bson:"name" validate:"required,min=2,max=100"`
	ContactNumber string `json:"contact_number" bson:"contact_number" validate:"required,min=7,max=20"`
	Email         string `json:"email" bson:"email" validate:"required,email"`
	Address       string `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,max=300"`
}

// BookingRecord is the immutable document written once per confirmed
// appointment, keyed by its 12-character reference code.
type BookingRecord struct {
	ReferenceCode   string    `json:"reference_code,omitempty" bson:"_id,omitempty" validate:"omitempty,len=12,alphanum"`
	CreatedAt       time.Time `json:"created_at,omitempty" bson:"created_at" validate:"omitempty"`
	ServiceType     string    `json:"service_type" bson:"service_type" validate:"required,min=2,max=100"`
	ServiceSize     string    `json:"service_size,omitempty" bson:"service_size,omitempty" validate:"omitempty,max=100"`
	AddOns          []AddOn   `json:"add_ons,omitempty" bson:"add_ons,omitempty" validate:"omitempty,max=10,dive"`
	TotalPrice      int       `json:"total_price" bson:"total_price" validate:"min=0"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes" validate:"required,min=15,max=480"`
	Date            string    `json:"date" bson:"date" validate:"required,datekey"`
	SlotLabel       string    `json:"slot_label" bson:"slot_label" validate:"required,min=5,max=50"`
	Pet             Pet       `json:"pet" bson:"pet" validate:"required"`
	Owner           Owner     `json:"owner" bson:"owner" validate:"required"`
}

// AddOnTotal sums the structured add-on prices.
func (b *BookingRecord) AddOnTotal() int {
	total := 0
	for _, a := range b.AddOns {
		total += a.Price
	}
	return total
}
