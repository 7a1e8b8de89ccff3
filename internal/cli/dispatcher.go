package cli

import (
	"fmt"
	"sort"
)

// CommandResult is what a command reports back to the loop.
type CommandResult struct {
	Success bool
	Message string
	Data    any
}

// Handler runs one command.
type Handler func(args []string) (CommandResult, error)

// Dispatcher routes command names to handlers.
type Dispatcher struct {
	commands map[string]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{commands: make(map[string]Handler)}
}

// Register binds name to h, replacing any earlier handler.
func (d *Dispatcher) Register(name string, h Handler) {
	d.commands[name] = h
}

// Dispatch runs the handler for name. Handler errors and panics come back
// as a failed result, never as an error.
func (d *Dispatcher) Dispatch(name string, args []string) (res CommandResult) {
	h, found := d.commands[name]
	if !found {
		return CommandResult{Message: "Unknown command: " + name}
	}
	defer func() {
		if r := recover(); r != nil {
			res = CommandResult{Message: fmt.Sprintf("Command failed: %v", r)}
		}
	}()
	res, err := h(args)
	if err != nil {
		return CommandResult{Message: "Command failed: " + err.Error()}
	}
	return res
}

// Available lists registered command names in sorted order.
func (d *Dispatcher) Available() []string {
	names := make([]string, 0, len(d.commands))
	for n := range d.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
