package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingInput struct {
	Title  string  `json:"title" validate:"required,max=10"`
	Kind   string  `json:"kind" validate:"required,oneof=residential commercial"`
	Price  float64 `json:"price" validate:"required,gt=0"`
	Email  string  `json:"email" validate:"omitempty,email"`
	Rating *int    `json:"rating" validate:"omitempty,gte=300,lte=850"`
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(listingInput{Title: "Villa", Kind: "residential", Price: 1}))
}

func TestStructReportsEveryViolation(t *testing.T) {
	rating := 200
	err := Struct(listingInput{Title: "far too long a title", Kind: "castle", Price: 0, Email: "nope", Rating: &rating})
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)

	byField := map[string]string{}
	for _, f := range verr.Fields {
		byField[f.Field] = f.Rule
	}
	assert.Equal(t, "max", byField["title"])
	assert.Equal(t, "oneof", byField["kind"])
	assert.Equal(t, "required", byField["price"])
	assert.Equal(t, "email", byField["email"])
	assert.Equal(t, "gte", byField["rating"])
}

func TestStructUsesWireFieldNames(t *testing.T) {
	err := Struct(listingInput{Kind: "residential", Price: 1})
	require.Error(t, err)

	verr := err.(*Error)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "title", verr.Fields[0].Field)
	assert.Contains(t, verr.Fields[0].Message, "title")
	assert.Contains(t, err.Error(), "validation failed")
}
