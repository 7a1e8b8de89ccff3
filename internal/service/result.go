package service

import (
	"github.com/idilsaglam/todo/internal/fault"
	"github.com/idilsaglam/todo/internal/model"
)

// MsgNotFound is returned when the requested id does not exist.
const MsgNotFound = "Todo not found"

// Result is the envelope every Service operation returns. Error holds
// only the classified message, never raw fault text. Code and UserMessage
// are set for classified failures and left empty for "not found" lookups.
type Result[T any] struct {
	Success     bool
	Data        T
	Error       string
	Code        fault.Code
	UserMessage string
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func notFound[T any]() Result[T] {
	return Result[T]{Error: MsgNotFound}
}

// Optional marks an update field as supplied or not. The zero value is unset.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a supplied Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) { return o.value, o.set }
func (o Optional[T]) IsSet() bool    { return o.set }

// Or returns the supplied value, or fallback when unset.
func (o Optional[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// UpdateRequest lists the fields to change; unset fields keep their value.
type UpdateRequest struct {
	Title       Optional[string]
	Description Optional[string]
	Status      Optional[model.Status]
}
