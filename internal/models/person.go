package models

import (
	"time"

	"github.com/google/uuid"
)

// Person is a phonebook entry. Name is stored exactly as given; uniqueness
// and lookups compare the canonicalized form. An empty Phone means the
// person has no number.
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address is the derived {street, city} view of a Person. It is never stored
// on its own.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// NewPerson creates a new Person with a generated UUID
func NewPerson(name, phone, street, city string) *Person {
	return &Person{
		ID:     uuid.New().String(),
		Name:   name,
		Phone:  phone,
		Street: street,
		City:   city,
	}
}

// Address returns the derived address view.
func (p *Person) Address() Address {
	return Address{Street: p.Street, City: p.City}
}

// HasPhone reports whether the person has a phone number on record.
func (p *Person) HasPhone() bool {
	return p.Phone != ""
}
