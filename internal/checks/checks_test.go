package checks

import (
	"errors"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-form-check/internal/eventloop"
	"github.com/MKhiriev/go-form-check/internal/logger"
	"github.com/MKhiriev/go-form-check/internal/observable"
	"github.com/MKhiriev/go-form-check/internal/validation"
	"github.com/MKhiriev/go-form-check/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T) (*Factory, *validation.Validator) {
	t.Helper()
	v := validation.NewValidator(validation.Settings{
		Loop:   eventloop.NewQueue(),
		Logger: logger.Nop(),
	})
	return NewFactory(v, nil), v
}

func messagesOf(t *testing.T, c *validation.Check) []models.ValidationMessage {
	t.Helper()
	require.NoError(t, c.Recheck())
	return c.Result().Messages()
}

func TestNonNil(t *testing.T) {
	f, _ := newFactory(t)
	n := 1
	p := observable.NewProperty[*int]("p", nil)
	c := f.NonNil(p, "text", models.Error)

	assert.Equal(t, []models.ValidationMessage{models.NewError("text mustn't be null")}, messagesOf(t, c))

	p.Set(&n)
	assert.Empty(t, messagesOf(t, c))
}

func TestNonBlank(t *testing.T) {
	f, _ := newFactory(t)
	p := observable.NewProperty("p", "   ")
	c := f.NonBlank(p, "text", models.Warning)

	assert.Equal(t, []models.ValidationMessage{models.NewWarning("text is required to not be blank")}, messagesOf(t, c))

	p.Set(" x ")
	assert.Empty(t, messagesOf(t, c))
}

func TestMinLength(t *testing.T) {
	f, _ := newFactory(t)
	p := observable.NewProperty("p", "ab")
	c := f.MinLength(p, "text", models.Error, 3)

	assert.Equal(t, []models.ValidationMessage{
		models.NewError("text with value of ['ab'] should be at least 3 characters long"),
	}, messagesOf(t, c))

	p.Set("äöü")
	assert.Empty(t, messagesOf(t, c))
}

func TestMaxLength(t *testing.T) {
	f, _ := newFactory(t)
	p := observable.NewProperty("p", "abcd")
	c := f.MaxLength(p, "text", models.Error, 3)

	assert.Equal(t, []models.ValidationMessage{
		models.NewError("text with value of ['abcd'] should be at most 3 characters long"),
	}, messagesOf(t, c))

	p.Set("abc")
	assert.Empty(t, messagesOf(t, c))
}

func TestIsMappable(t *testing.T) {
	f, _ := newFactory(t)
	p := observable.NewProperty("p", "ten")
	c := IsMappable(f, p, "age", models.Error, strconv.Atoi)

	assert.Equal(t, []models.ValidationMessage{models.NewError("age is not assignable")}, messagesOf(t, c))

	p.Set("10")
	assert.Empty(t, messagesOf(t, c))
}

func TestIsNumber(t *testing.T) {
	tests := []struct {
		name  string
		value string
		fails bool
	}{
		{name: "integer", value: "10"},
		{name: "decimal with spaces", value: " 10.5 "},
		{name: "negative", value: "-3"},
		{name: "word", value: "ten", fails: true},
		{name: "empty", value: "", fails: true},
		{name: "nan", value: "NaN", fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newFactory(t)
			c := f.IsNumber(observable.NewProperty("p", tt.value), "text", models.Error)
			if tt.fails {
				assert.Equal(t, []models.ValidationMessage{models.NewError("text is not a number")}, messagesOf(t, c))
				return
			}
			assert.Empty(t, messagesOf(t, c))
		})
	}
}

func TestIsNumberWithinBounds(t *testing.T) {
	f, _ := newFactory(t)
	p := observable.NewProperty("p", "10")
	c, err := f.IsNumberWithinBounds(p, "text", models.Error, 12, 20)
	require.NoError(t, err)

	assert.Equal(t, []models.ValidationMessage{
		models.NewError("text['10'] is not between 12.00 and 20.00"),
	}, messagesOf(t, c))

	p.Set("abc")
	assert.Equal(t, []models.ValidationMessage{
		models.NewError("text['NAN'] is not between 12.00 and 20.00"),
	}, messagesOf(t, c))

	p.Set("12")
	assert.Empty(t, messagesOf(t, c))
	p.Set("20")
	assert.Empty(t, messagesOf(t, c))
}

func TestIsNumberWithinBounds_InvalidBounds(t *testing.T) {
	f, v := newFactory(t)
	c, err := f.IsNumberWithinBounds(observable.NewProperty("p", "1"), "text", models.Error, 5, 1)

	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrInvalidBounds))
	assert.Empty(t, v.Checks())
}

func TestMatchesRegex(t *testing.T) {
	f, _ := newFactory(t)
	p := observable.NewProperty("p", "abc")
	c, err := f.MatchesRegex(p, "text", models.Error, "[abc]{2}")
	require.NoError(t, err)

	// the whole text has to match
	assert.Equal(t, []models.ValidationMessage{
		models.NewError("text['abc'] does not match the regex ['[abc]{2}']"),
	}, messagesOf(t, c))

	p.Set("ab")
	assert.Empty(t, messagesOf(t, c))
}

func TestMatchesRegex_InvalidPattern(t *testing.T) {
	f, _ := newFactory(t)
	c, err := f.MatchesRegex(observable.NewProperty("p", ""), "text", models.Error, "[")

	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrInvalidRegex))
}

func TestChecksShareOneObservable(t *testing.T) {
	q := eventloop.NewQueue()
	v := validation.NewValidator(validation.Settings{Loop: q, Logger: logger.Nop()})
	f := NewFactory(v, nil)
	p := observable.NewProperty("p", "")

	f.NonBlank(p, "name", models.Error).Immediate()
	f.MaxLength(p, "name", models.Warning, 2).Immediate()
	q.RunPending()

	assert.Equal(t, []models.ValidationMessage{models.NewError("name is required to not be blank")}, v.Result().Messages())

	p.Set("abc")
	assert.Equal(t, []models.ValidationMessage{
		models.NewWarning("name with value of ['abc'] should be at most 2 characters long"),
	}, v.Result().Messages())
	assert.False(t, v.ContainsErrors())
	assert.True(t, v.ContainsWarnings())
}

type shortMessages struct {
	DefaultMessages
}

func (shortMessages) NotBlank(field string) string { return field + " required" }

func TestNewFactory_CustomMessages(t *testing.T) {
	v := validation.NewValidator(validation.Settings{Loop: eventloop.NewQueue(), Logger: logger.Nop()})
	f := NewFactory(v, shortMessages{})
	p := observable.NewProperty("p", "")

	assert.Equal(t, []models.ValidationMessage{models.NewError("name required")}, messagesOf(t, f.NonBlank(p, "name", models.Error)))
	assert.Equal(t, []models.ValidationMessage{models.NewError("name is not a number")}, messagesOf(t, f.IsNumber(p, "name", models.Error)))
}
