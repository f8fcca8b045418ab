package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("deleted").Valid())
	assert.False(t, Status("").Valid())
	// validity is case-sensitive: canonical form is lower case
	assert.False(t, Status("Active").Valid())
}

func TestGuarantorAt_Fallback(t *testing.T) {
	g1 := Guarantor{FullName: "Jane Smith", Relationship: "Sister"}
	u := &User{Guarantor: g1}

	assert.Equal(t, g1, u.GuarantorAt(0))
	// no second guarantor: index 1 falls back to the first
	assert.Equal(t, g1, u.GuarantorAt(1))

	g2 := Guarantor{FullName: "John Brown", Relationship: "Friend"}
	u.SecondGuarantor = &g2
	assert.Equal(t, g1, u.GuarantorAt(0))
	assert.Equal(t, g2, u.GuarantorAt(1))
}

func TestUserJSONRoundTrip(t *testing.T) {
	u := User{
		Id:           "42",
		Organization: "Lendsqr",
		Username:     "janesmith42",
		Email:        "jane.smith@gmail.com",
		PhoneNumber:  "08012345678",
		DateJoined:   "2021-06-01",
		Status:       StatusActive,
		FullName:     "Jane Smith",
		Guarantor:    Guarantor{FullName: "John Brown"},
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var got User
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, u, got)

	// optional second guarantor is omitted from the wire form when absent
	assert.NotContains(t, string(data), "guarantor2")
}

func TestFilterParamsIsZero(t *testing.T) {
	assert.True(t, FilterParams{}.IsZero())
	assert.False(t, FilterParams{Status: "active"}.IsZero())
}
