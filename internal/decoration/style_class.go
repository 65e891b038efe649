package decoration

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-form-check/models"
)

// StyleClass decorates targets by adding style classes on Apply and taking
// them away on Remove.
type StyleClass struct {
	classes []string
}

// NewStyleClass returns a decoration toggling the given classes. Duplicates
// are collapsed. At least one class is required.
func NewStyleClass(classes ...string) (*StyleClass, error) {
	if len(classes) == 0 {
		return nil, ErrNoStyleClasses
	}
	uniq := make([]string, 0, len(classes))
	for _, c := range classes {
		if !slices.Contains(uniq, c) {
			uniq = append(uniq, c)
		}
	}
	return &StyleClass{classes: uniq}, nil
}

// Classes returns the classes this decoration toggles.
func (d *StyleClass) Classes() []string {
	return slices.Clone(d.classes)
}

// Apply adds every class not already present on target.
func (d *StyleClass) Apply(target Target) error {
	t, ok := target.(StyleClassTarget)
	if !ok {
		return fmt.Errorf("style class %v on %T: %w", d.classes, target, ErrUnsupportedTarget)
	}
	present := t.StyleClasses()
	toAdd := make([]string, 0, len(d.classes))
	for _, c := range d.classes {
		if !slices.Contains(present, c) {
			toAdd = append(toAdd, c)
		}
	}
	if len(toAdd) > 0 {
		t.AddStyleClasses(toAdd...)
	}
	return nil
}

// Remove takes all classes of this decoration off target.
func (d *StyleClass) Remove(target Target) error {
	t, ok := target.(StyleClassTarget)
	if !ok {
		return fmt.Errorf("style class %v on %T: %w", d.classes, target, ErrUnsupportedTarget)
	}
	t.RemoveStyleClasses(d.classes...)
	return nil
}

// StyleClassFactory returns a factory producing a StyleClass decoration with
// errorClass for errors and warningClass for warnings.
func StyleClassFactory(errorClass, warningClass string) Factory {
	return func(message models.ValidationMessage) (Decoration, error) {
		class := errorClass
		if message.Severity == models.Warning {
			class = warningClass
		}
		d, err := NewStyleClass(class)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}
