package model_test

import (
	"encoding/json"
	"testing"

	"github.com/deppfellow/employee-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "generated", id: primitive.NewObjectID().Hex(), want: true},
		{name: "upper case hex", id: "65A1B2C3D4E5F6A7B8C9D0E1", want: true},
		{name: "empty", id: "", want: false},
		{name: "too short", id: "65a1b2c3d4e5f6a7b8c9d0e", want: false},
		{name: "too long", id: "65a1b2c3d4e5f6a7b8c9d0e1f", want: false},
		{name: "non hex", id: "zza1b2c3d4e5f6a7b8c9d0e1", want: false},
		{name: "twelve raw bytes", id: "abcdefghijkl", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.IsValidID(tt.id))
		})
	}
}

func TestEmployee_JSONRendersIDAsHex(t *testing.T) {
	id := primitive.NewObjectID()
	emp := model.Employee{ID: id, Name: "Ann", Position: "Eng", Salary: 90000}

	raw, err := json.Marshal(emp)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"`+id.Hex()+`","name":"Ann","position":"Eng","salary":90000}`, string(raw))
}

func TestEmployeeUpdate_IsEmpty(t *testing.T) {
	assert.True(t, model.EmployeeUpdate{}.IsEmpty())

	salary := 1.0
	assert.False(t, model.EmployeeUpdate{Salary: &salary}.IsEmpty())
}
