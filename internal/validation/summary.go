package validation

import (
	"github.com/MKhiriev/go-form-check/internal/observable"
	"github.com/MKhiriev/go-form-check/models"
)

// DefaultSummaryPrefix and DefaultSummarySeparator are used by
// DefaultSummary.
const (
	DefaultSummaryPrefix    = "• "
	DefaultSummarySeparator = "\n"
)

// Summary returns a string binding over the aggregate result. It joins the
// text of every message whose severity is in severities, each prefixed with
// prefix, using separator. No severities means errors only.
//
// The binding stays attached to v until Dispose is called on it.
func (v *Validator) Summary(prefix, separator string, severities ...models.Severity) *observable.Binding[string] {
	wanted := models.NewSeverities(severities...)
	return observable.NewBinding(func() string {
		return v.Result().Summary(prefix, separator, wanted)
	}, v.ResultProperty())
}

// DefaultSummary lists errors one per line, each prefixed with a bullet.
func (v *Validator) DefaultSummary() *observable.Binding[string] {
	return v.Summary(DefaultSummaryPrefix, DefaultSummarySeparator)
}
