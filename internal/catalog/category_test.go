package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseCategory(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    Category
		expectError bool
	}{
		{name: "cruisers", input: "cruisers", expected: Cruiser},
		{name: "sport", input: "sport", expected: Sport},
		{name: "touring", input: "touring", expected: Touring},
		{name: "unknown name", input: "mopeds", expectError: true},
		{name: "empty name", input: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			c, err := ParseCategory(tc.input)
			// then
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c)
		})
	}
}

func Test_Category_RoundTrip(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.NotEmpty(t, c.Label())
	}
}
