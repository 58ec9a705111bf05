package inflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		upper    bool
		expected string
	}{
		{"user_name", false, "userName"},
		{"user_name", true, "UserName"},
		{"USER name", false, "userName"},
		{"user  profile__id", false, "userProfileId"},
		{"api_v2_key", false, "apiV2Key"},
		{"_leading", false, "Leading"},
		{"_leading", true, "Leading"},
		{"trailing_", false, "trailing"},
		{"id", false, "id"},
		{"", false, ""},
		{"", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CamelCase(tt.input, tt.upper))
		})
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"users", "Users"},
		{"user_profiles", "UserProfiles"},
		{"order items", "OrderItems"},
		{"a", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, PascalCase(tt.input))
			assert.Equal(t, CamelCase(tt.input, true), PascalCase(tt.input))
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"the_lord_of_the_rings", "The Lord of the Rings"},
		{"a tale of two cities", "A Tale of Two Cities"},
		{"man from the boondocks", "Man from the Boondocks"},
		{"x-men: the last stand", "X-Men: the Last Stand"},
		{"state-of-the-art design", "State-of-the-Art Design"},
		{"HELLO WORLD", "Hello World"},
		{"THE END", "THE End"},
		{"over__and  out", "Over and out"},
		{"walk__the  line", "Walk the Line"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleCase(tt.input))
		})
	}
}

func TestTitleCase_ExtraLowercaseWords(t *testing.T) {
	inf, err := New(Config{TitleLowercaseWords: []string{"Via", "vs"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Paris via Lyon vs the World", inf.TitleCase("paris via lyon vs the world"))
	assert.Equal(t, "Via Appia", inf.TitleCase("via appia"))
	assert.Equal(t, "Paris Via Lyon", TitleCase("paris via lyon"))
}

func TestUnderscore(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"BlogPost", "blog_post"},
		{"blogPost", "blog_post"},
		{"user accounts", "user_accounts"},
		{"User  Accounts", "user_accounts"},
		{"already_snake", "already_snake"},
		{"__private", "private"},
		{"HTTPServer", "h_t_t_p_server"},
		{"Author", "author"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Underscore(tt.input))
		})
	}
}

func TestDasherize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"blog_post", "blog-post"},
		{"Blog Post", "Blog-Post"},
		{"a _ b", "a-b"},
		{"already-dashed", "already-dashed"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Dasherize(tt.input))
		})
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		input          string
		startLowercase bool
		expected       string
	}{
		{"employee_salary", false, "Employee salary"},
		{"author_id", false, "Author"},
		{"tag_ids", false, "Tag"},
		{"AUTHOR_ID", false, "Author"},
		{"employee_salary", true, "employee salary"},
		{"id_card", false, "Id card"},
		{"first__name", false, "First name"},
		{"", false, ""},
		{"", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Humanize(tt.input, tt.startLowercase))
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "Hello"},
		{"HELLO WORLD", "Hello world"},
		{"éclair", "Éclair"},
		{"1st place", "1st place"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Capitalize(tt.input))
		})
	}
}
