package command

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/nidhogg/concept-lab/internal/dialogue"
	"github.com/nidhogg/concept-lab/internal/service"
)

// Command is one /name handler.
type Command struct {
	Name        string
	Description string
	Usage       string
	Handler     CommandHandler
}

// CommandHandler runs a command. args is everything after the name.
type CommandHandler func(ctx context.Context, args string, cc *CommandContext) (*CommandResult, error)

// CommandContext identifies the caller and carries the services a command
// may need. SessionKey names the caller's guided conversation.
type CommandContext struct {
	Platform   string
	ChannelID  string
	UserID     string
	UserName   string
	SessionKey string
	Service    *service.ExplanationService
	Dialogues  *dialogue.Manager
}

// CommandResult is shown to the user as Content; Data is the structured
// form for API callers.
type CommandResult struct {
	Content string      `json:"content"`
	Data    interface{} `json:"data,omitempty"`
}

// Registry maps lower-case command names to commands.
type Registry struct {
	commands map[string]*Command
	mu       sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register replaces any command with the same name.
func (r *Registry) Register(cmd *Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[cmd.Name] = cmd
}

// Dispatch runs "/name args". Names are case-insensitive; an unknown name
// is answered, not returned as an error.
func (r *Registry) Dispatch(ctx context.Context, input string, cc *CommandContext) (*CommandResult, error) {
	name, args, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(input), "/"), " ")
	name = strings.ToLower(name)
	args = strings.TrimSpace(args)

	r.mu.RLock()
	cmd, ok := r.commands[name]
	r.mu.RUnlock()
	if !ok {
		return &CommandResult{
			Content: fmt.Sprintf("Unknown command: /%s. Type /help for available commands.", name),
		}, nil
	}

	return cmd.Handler(ctx, args, cc)
}

// List is sorted by name, for /help.
func (r *Registry) List() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
