// Package model holds the employee record and the types used to query and
// mutate it.
package model

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrEmployeeNotFound is returned by the data access layer when no record
// matches the given identifier, including identifiers that are malformed.
var ErrEmployeeNotFound = errors.New("employee not found")

// Employee is the sole entity of the service.
//
// ID is assigned by the store on insert and rendered as a 24 character hex
// string in JSON.
type Employee struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Position string             `bson:"position,omitempty" json:"position"`
	Salary   float64            `bson:"salary" json:"salary"`
}

// EmployeeFilter narrows FindAll. Zero values mean "no constraint".
type EmployeeFilter struct {
	// Name is matched as a case-insensitive substring.
	Name string
	// MinSalary is an inclusive lower bound.
	MinSalary *float64
}

// EmployeeUpdate carries the fields of a partial update. Nil fields are left
// untouched in storage.
type EmployeeUpdate struct {
	Name     *string
	Position *string
	Salary   *float64
}

// IsEmpty reports whether the update changes nothing.
func (u EmployeeUpdate) IsEmpty() bool {
	return u.Name == nil && u.Position == nil && u.Salary == nil
}

// IsValidID reports whether s is structurally a record identifier: exactly
// 24 hexadecimal characters (a 12 byte ObjectID).
func IsValidID(s string) bool {
	return primitive.IsValidObjectID(s)
}
