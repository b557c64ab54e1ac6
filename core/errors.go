// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "fmt"

// UniformTypeMismatchError is returned when a value can't be
// bound to a uniform because of its declared type
type UniformTypeMismatchError struct {
	Name     string
	Expected UniformType
}

func (e *UniformTypeMismatchError) Error() string {
	return fmt.Sprintf("uniform %q: value is not usable with the declared type %s", e.Name, e.Expected)
}

// UniformBlockLayoutMismatchError is returned when the buffer given for a
// block does not match the layout of the block in the program
type UniformBlockLayoutMismatchError struct {
	Name string
}

func (e *UniformBlockLayoutMismatchError) Error() string {
	return fmt.Sprintf("block %q: buffer layout does not match the program", e.Name)
}

// UniformValueToBlockError is returned when a value that is not a
// buffer is given for a block
type UniformValueToBlockError struct {
	Name string
}

func (e *UniformValueToBlockError) Error() string {
	return fmt.Sprintf("block %q: only a buffer can be bound to a block", e.Name)
}

// UniformBufferToValueError is returned when a buffer is given
// for a plain uniform
type UniformBufferToValueError struct {
	Name string
}

func (e *UniformBufferToValueError) Error() string {
	return fmt.Sprintf("uniform %q: a buffer can't be bound to a plain uniform", e.Name)
}
