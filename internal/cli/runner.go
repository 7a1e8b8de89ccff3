// Package cli is the interactive command loop over the todo service.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/service"
	"github.com/idilsaglam/todo/internal/ui"
)

// ExitMessage is the result message that ends the loop.
const ExitMessage = "exit"

var menu = []ui.Choice{
	{Label: "Create a new todo", Value: "create"},
	{Label: "List all todos", Value: "list"},
	{Label: "Show a specific todo", Value: "show"},
	{Label: "Update a todo", Value: "update"},
	{Label: "Delete a todo", Value: "delete"},
	{Label: "Mark todo as completed", Value: "complete"},
	{Label: "Mark todo as pending", Value: "pending"},
	{Label: "Show help", Value: "help"},
	{Label: "Exit", Value: "exit"},
}

var descriptions = map[string]string{
	"create":   "Create a new todo",
	"list":     "List all todos",
	"show":     "Show a specific todo by ID",
	"update":   "Update an existing todo",
	"delete":   "Delete a todo by ID",
	"complete": "Mark a todo as completed",
	"pending":  "Mark a todo as pending",
	"help":     "Show this help message",
	"exit":     "Exit the application",
}

var tableHeaders = []string{"id", "title", "description", "status"}

// App drives the service from console prompts.
type App struct {
	svc        *service.Service
	console    ui.Console
	dispatcher *Dispatcher
	logger     *log.Logger
}

// New wires an App and registers its commands. A nil logger discards output.
func New(svc *service.Service, console ui.Console, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &App{svc: svc, console: console, dispatcher: NewDispatcher(), logger: logger}
	a.register()
	return a
}

// Dispatcher exposes the command table.
func (a *App) Dispatcher() *Dispatcher { return a.dispatcher }

func (a *App) register() {
	for name, h := range map[string]Handler{
		"create":   a.create,
		"list":     a.list,
		"show":     a.show,
		"update":   a.update,
		"delete":   a.remove,
		"complete": a.complete,
		"pending":  a.pending,
		"help":     a.help,
		"exit":     a.exit,
	} {
		a.dispatcher.Register(name, cancellable(h))
	}
}

// Start runs the menu loop until the user exits, aborts the menu, or ctx
// is cancelled.
func (a *App) Start(ctx context.Context) error {
	a.console.Clear()
	a.console.Success("Welcome to Todo App!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := a.console.Select("What would you like to do?", menu)
		if errors.Is(err, ui.ErrAborted) {
			a.exit(nil)
			return nil
		}
		if err != nil {
			a.logger.Error("menu failed", "err", err)
			a.console.Error("An unexpected error occurred")
			return err
		}

		a.logger.Debug("dispatch", "command", choice)
		res := a.dispatcher.Dispatch(choice, nil)
		switch {
		case res.Message == ExitMessage:
			return nil
		case !res.Success:
			a.console.Error(res.Message)
		case res.Message != "":
			a.console.Success(res.Message)
		}
	}
}

// cancellable turns an aborted prompt into a quiet, successful result.
func cancellable(h Handler) Handler {
	return func(args []string) (CommandResult, error) {
		res, err := h(args)
		if errors.Is(err, ui.ErrAborted) {
			return CommandResult{Success: true, Message: "Cancelled"}, nil
		}
		return res, err
	}
}

// failed builds the result for a failed envelope, preferring the
// user-facing copy when the failure was classified.
func failed[T any](r service.Result[T]) CommandResult {
	msg := r.Error
	if r.UserMessage != "" {
		msg = r.UserMessage
	}
	return CommandResult{Message: msg}
}

func (a *App) promptID() (string, error) {
	id, err := a.console.Text("Enter todo ID:")
	return strings.TrimSpace(id), err
}

// -------------- command handlers ----------------

func (a *App) create([]string) (CommandResult, error) {
	title, err := a.console.Text("Enter todo title:")
	if err != nil {
		return CommandResult{}, err
	}
	desc, err := a.console.Text("Enter todo description:")
	if err != nil {
		return CommandResult{}, err
	}
	r := a.svc.Create(title, desc)
	if !r.Success {
		return failed(r), nil
	}
	return CommandResult{Success: true, Message: "Todo created successfully!", Data: r.Data}, nil
}

func (a *App) list([]string) (CommandResult, error) {
	r := a.svc.List()
	if !r.Success {
		return failed(r), nil
	}
	if len(r.Data) == 0 {
		a.console.Info("No todos found")
	} else {
		done, pending := stats(r.Data)
		a.console.Summary(done, pending)
		a.console.Table(tableHeaders, rows(r.Data...))
	}
	return CommandResult{Success: true, Message: fmt.Sprintf("Found %d todos", len(r.Data)), Data: r.Data}, nil
}

func (a *App) show([]string) (CommandResult, error) {
	id, err := a.promptID()
	if err != nil {
		return CommandResult{}, err
	}
	r := a.svc.Get(id)
	if !r.Success {
		return failed(r), nil
	}
	a.console.Table(tableHeaders, rows(r.Data))
	return CommandResult{Success: true, Message: "Todo found", Data: r.Data}, nil
}

func (a *App) update([]string) (CommandResult, error) {
	id, err := a.promptID()
	if err != nil {
		return CommandResult{}, err
	}
	title, err := a.console.Text("Enter new title (leave empty to keep current):")
	if err != nil {
		return CommandResult{}, err
	}
	desc, err := a.console.Text("Enter new description (leave empty to keep current):")
	if err != nil {
		return CommandResult{}, err
	}

	var req service.UpdateRequest
	if title != "" {
		req.Title = service.Some(title)
	}
	if desc != "" {
		req.Description = service.Some(desc)
	}
	r := a.svc.Update(id, req)
	if !r.Success {
		return failed(r), nil
	}
	return CommandResult{Success: true, Message: "Todo updated successfully!", Data: r.Data}, nil
}

func (a *App) remove([]string) (CommandResult, error) {
	id, err := a.promptID()
	if err != nil {
		return CommandResult{}, err
	}
	sure, err := a.console.Confirm("Are you sure you want to delete this todo?", false)
	if err != nil {
		return CommandResult{}, err
	}
	if !sure {
		return CommandResult{Success: true, Message: "Delete cancelled"}, nil
	}
	r := a.svc.Delete(id)
	if !r.Success {
		return failed(r), nil
	}
	return CommandResult{Success: true, Message: "Todo deleted successfully!"}, nil
}

func (a *App) complete([]string) (CommandResult, error) {
	id, err := a.promptID()
	if err != nil {
		return CommandResult{}, err
	}
	r := a.svc.MarkCompleted(id)
	if !r.Success {
		return failed(r), nil
	}
	return CommandResult{Success: true, Message: "Todo marked as completed!", Data: r.Data}, nil
}

func (a *App) pending([]string) (CommandResult, error) {
	id, err := a.promptID()
	if err != nil {
		return CommandResult{}, err
	}
	r := a.svc.MarkPending(id)
	if !r.Success {
		return failed(r), nil
	}
	return CommandResult{Success: true, Message: "Todo marked as pending!", Data: r.Data}, nil
}

func (a *App) help([]string) (CommandResult, error) {
	a.console.Info("Available commands:")
	for _, name := range a.dispatcher.Available() {
		desc, found := descriptions[name]
		if !found {
			desc = "No description available"
		}
		a.console.Message(fmt.Sprintf("  %s: %s", name, desc))
	}
	return CommandResult{Success: true}, nil
}

func (a *App) exit([]string) (CommandResult, error) {
	a.console.Success("Thank you for using Todo App! Goodbye!")
	return CommandResult{Success: true, Message: ExitMessage}, nil
}

// -------------- rendering helpers --------------

func stats(todos []*model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.IsCompleted() {
			done++
		} else {
			pending++
		}
	}
	return
}

func rows(todos ...*model.Todo) [][]string {
	th := ui.Current()
	out := make([][]string, 0, len(todos))
	for _, t := range todos {
		sym := th.SymPending
		if t.IsCompleted() {
			sym = th.SymDone
		}
		out = append(out, []string{t.ID(), t.Title(), t.Description(), sym + " " + string(t.Status())})
	}
	return out
}
