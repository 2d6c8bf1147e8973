package validation_test

import (
	"strings"
	"testing"

	"toko-core/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  Hello there  ", "Hello there"},
		{"script block", "<script>alert('x')</script>Hello", "Hello"},
		{"script block any case", "<SCRIPT type=\"text/javascript\">\nsteal()\n</Script>Hi", "Hi"},
		{"tags", "Is this <b>in stock</b>?", "Is this in stock?"},
		{"javascript scheme", "click JavaScript:doIt()", "click doIt()"},
		{"only markup", "<script>x</script>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.Text(tt.in))
		})
	}
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+1 (555) 123-4567 ", validation.Phone("+1 (555) 123-4567 call me"))
	assert.Equal(t, "555-0100", validation.Phone("  555-0100 "))
	assert.Equal(t, "+62 812 3456", validation.Phone("+62\t812   3456"))
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@example.com", validation.Email("  Jane.Doe@Example.COM "))
}

func TestSearchQuery(t *testing.T) {
	assert.Equal(t, "shoes OR 1=1 --", validation.SearchQuery(" shoes' OR 1=1; -- "))
	assert.Equal(t, "ab", validation.SearchQuery("<a>&(b)%+\""))

	long := strings.Repeat("é", validation.MaxSearchQueryLength+50)
	assert.Equal(t, validation.MaxSearchQueryLength, len([]rune(validation.SearchQuery(long))))
}
