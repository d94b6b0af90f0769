package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_Required(t *testing.T) {
	details := ValidateStruct(createBookRequest{})
	require.Len(t, details, 3)

	fields := make([]string, len(details))
	for i, d := range details {
		fields[i] = d.Field
	}
	assert.Equal(t, []string{"title", "author", "isbn"}, fields, "details must carry wire field names")
	assert.Equal(t, "title is required", details[0].Message)
}

func TestValidateStruct_FreeTextISBN(t *testing.T) {
	// ISBN format is not validated; any non-empty string is accepted.
	for _, isbn := range []string{"123", "9780441172719", "978-0-441-17271-9", "not-an-isbn"} {
		details := ValidateStruct(createBookRequest{Title: "Dune", Author: "Herbert", ISBN: isbn})
		assert.Empty(t, details, "isbn %q must be accepted", isbn)
	}
}
