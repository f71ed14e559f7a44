// Package dialogue drives the guided exploration conversation one input
// line at a time, so the same flow serves the terminal and chat platforms.
package dialogue

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nidhogg/concept-lab/internal/cognition"
	"github.com/nidhogg/concept-lab/internal/knowledge"
	"github.com/nidhogg/concept-lab/internal/service"
)

const (
	Welcome = "Welcome to the Human vs AI Concept Acquisition Chatbot!\n" +
		"Here, you can explore how humans and AI acquire and understand various concepts.\n" +
		"You will be asked to provide a concept, choose a cognitive system (human or AI), " +
		"and then explore specific categories of how that system forms a concept.\n" +
		"Type 'quit' to exit the chat."
	ChatEndedByUser = "\nChat ended by user."

	promptConcept  = "\nEnter the number of the concept you'd like to explore: "
	promptSystem   = "\nWould you like to explore the concept acquisition by 'human' or 'ai'?: "
	promptCategory = "\nEnter the number of the category you'd like to focus on: "
	promptMore     = "\nWould you like to explore another aspect of this concept/category? (1 for yes, 2 for no): "
	promptAnother  = "\nWould you like to explore another concept? (1 for yes, 2 for no): "

	invalidSystem   = "Invalid choice. Please choose either 'human' or 'ai'."
	invalidCategory = "Invalid category choice. Please choose a number between 1 and 5."
	invalidYesNo    = "Invalid input. Please enter 1 for yes or 2 for no."
)

type state int

const (
	stateConcept state = iota
	stateSystem
	stateCategory
	stateMore
	stateCross
	stateCrossCategory
	stateAnother
	stateDone
)

// Session is one user's walk through the menus. It is not safe for
// concurrent use; Manager serializes access.
type Session struct {
	svc    *service.ExplanationService
	state  state
	choice string // raw concept input, validated by the service
	system cognition.Kind
}

// NewSession starts at the concept menu.
func NewSession(svc *service.ExplanationService) *Session {
	return &Session{svc: svc}
}

// Start returns the banner and the first prompt.
func (s *Session) Start() string {
	return Welcome + "\n" + conceptMenu() + promptConcept
}

// Done reports whether the user has left the conversation.
func (s *Session) Done() bool { return s.state == stateDone }

// Step consumes one line of input and returns everything to show before
// the next input, ending with the next prompt.
func (s *Session) Step(ctx context.Context, input string) string {
	input = strings.TrimSpace(input)
	var out []string
	say := func(lines ...string) { out = append(out, lines...) }

	switch s.state {
	case stateConcept:
		if strings.EqualFold(input, service.QuitWord) {
			s.state = stateDone
			say(ChatEndedByUser)
			break
		}
		s.choice = input
		s.state = stateSystem
		say(promptSystem)

	case stateSystem:
		kind, ok := cognition.ParseKind(input)
		if !ok {
			s.state = stateConcept
			say(invalidSystem, conceptMenu()+promptConcept)
			break
		}
		s.system = kind
		s.state = stateCategory
		say(categoryMenu() + promptCategory)

	case stateCategory:
		cat, ok := parseCategory(input)
		if !ok {
			say(invalidCategory, categoryMenu()+promptCategory)
			break
		}
		say(s.svc.Explain(ctx, service.ParseSelector(s.choice), string(s.system), cat))
		s.state = stateMore
		say(promptMore)

	case stateMore:
		switch input {
		case "1":
			s.state = stateCategory
			say(categoryMenu() + promptCategory)
		case "2":
			s.state = stateCross
			say(s.crossPrompt())
		default:
			say(invalidYesNo, promptMore)
		}

	case stateCross:
		switch input {
		case "1":
			s.state = stateCrossCategory
			say(fmt.Sprintf("\nEnter the number of the category you'd like to focus on for %s: ", s.other().Label()))
		case "2":
			s.state = stateAnother
			say(promptAnother)
		default:
			say(invalidYesNo, s.crossPrompt())
		}

	case stateCrossCategory:
		// An invalid category here skips straight back to the concept menu.
		if cat, ok := parseCategory(input); ok {
			say(s.svc.Explain(ctx, service.ParseSelector(s.choice), string(s.other()), cat))
		}
		s.state = stateConcept
		say(conceptMenu() + promptConcept)

	case stateAnother:
		switch input {
		case "1":
			s.state = stateConcept
			say(conceptMenu() + promptConcept)
		case "2":
			s.state = stateDone
			say(ChatEndedByUser)
		default:
			say(invalidYesNo, promptAnother)
		}

	case stateDone:
	}

	return strings.Join(out, "\n")
}

func (s *Session) other() cognition.Kind {
	if s.system == cognition.KindHuman {
		return cognition.KindAI
	}
	return cognition.KindHuman
}

func (s *Session) crossPrompt() string {
	return fmt.Sprintf("\nWould you like to explore the same concept by %s? (1 for yes, 2 for no): ", s.other().Label())
}

func parseCategory(input string) (knowledge.Category, bool) {
	if strings.IndexFunc(input, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return "", false
	}
	i, err := strconv.Atoi(input)
	if err != nil {
		return "", false
	}
	return knowledge.CategoryAt(i)
}

func conceptMenu() string {
	var b strings.Builder
	b.WriteString("\nAvailable Concepts:")
	for i, c := range knowledge.Concepts() {
		fmt.Fprintf(&b, "\n%d. %s", i+1, c)
	}
	return b.String()
}

func categoryMenu() string {
	var b strings.Builder
	b.WriteString("\nAvailable Categories:")
	for i, c := range knowledge.Categories() {
		fmt.Fprintf(&b, "\n%d. %s", i+1, c)
	}
	return b.String()
}
