package checks

import "fmt"

// Messages produces the texts of the convenience checks. Embed
// DefaultMessages to override only some of them.
type Messages interface {
	NotNil(field string) string
	NotBlank(field string) string
	MinLength(field, value string, minLength int) string
	MaxLength(field, value string, maxLength int) string
	NotMappable(field string) string
	NotANumber(field string) string
	NotWithinBounds(field, value string, minimum, maximum float64) string
	NoRegexMatch(field, value, regex string) string
}

// DefaultMessages holds the built-in English texts.
type DefaultMessages struct{}

var _ Messages = DefaultMessages{}

func (DefaultMessages) NotNil(field string) string {
	return fmt.Sprintf("%s mustn't be null", field)
}

func (DefaultMessages) NotBlank(field string) string {
	return fmt.Sprintf("%s is required to not be blank", field)
}

func (DefaultMessages) MinLength(field, value string, minLength int) string {
	return fmt.Sprintf("%s with value of ['%s'] should be at least %d characters long", field, value, minLength)
}

func (DefaultMessages) MaxLength(field, value string, maxLength int) string {
	return fmt.Sprintf("%s with value of ['%s'] should be at most %d characters long", field, value, maxLength)
}

func (DefaultMessages) NotMappable(field string) string {
	return fmt.Sprintf("%s is not assignable", field)
}

func (DefaultMessages) NotANumber(field string) string {
	return fmt.Sprintf("%s is not a number", field)
}

func (DefaultMessages) NotWithinBounds(field, value string, minimum, maximum float64) string {
	return fmt.Sprintf("%s['%s'] is not between %.2f and %.2f", field, value, minimum, maximum)
}

func (DefaultMessages) NoRegexMatch(field, value, regex string) string {
	return fmt.Sprintf("%s['%s'] does not match the regex ['%s']", field, value, regex)
}
