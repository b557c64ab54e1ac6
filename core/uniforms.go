// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// Uniforms is a collection of named values to bind to a program
type Uniforms interface {
	// VisitValues calls visit for each value. It stops at and
	// returns the first error visit returns.
	VisitValues(visit func(name string, value Value) error) error
}

// NamedValue is a value along with the name it's bound to
type NamedValue struct {
	Name  string
	Value Value
}

// UniformList visits values in the order they were added
type UniformList []NamedValue

// NewUniforms creates an empty UniformList
func NewUniforms() UniformList {
	return nil
}

// Add returns the list with the value appended
func (ul UniformList) Add(name string, value Value) UniformList {
	return append(ul, NamedValue{Name: name, Value: value})
}

// VisitValues implements interface
func (ul UniformList) VisitValues(visit func(string, Value) error) error {
	for _, nv := range ul {
		if err := visit(nv.Name, nv.Value); err != nil {
			return err
		}
	}
	return nil
}

// UniformMap visits values in unspecified order
type UniformMap map[string]Value

// VisitValues implements interface
func (um UniformMap) VisitValues(visit func(string, Value) error) error {
	for name, value := range um {
		if err := visit(name, value); err != nil {
			return err
		}
	}
	return nil
}

// EmptyUniforms has no values
type EmptyUniforms struct{}

// VisitValues implements interface
func (EmptyUniforms) VisitValues(func(string, Value) error) error {
	return nil
}

// Chain visits the values of each collection in turn
type Chain []Uniforms

// VisitValues implements interface
func (ch Chain) VisitValues(visit func(string, Value) error) error {
	for _, u := range ch {
		if err := u.VisitValues(visit); err != nil {
			return err
		}
	}
	return nil
}
