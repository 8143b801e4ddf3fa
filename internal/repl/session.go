// Package repl runs the outer project menu and hands lines for the selected
// project to a command.Dispatcher.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/archduke-go/internal/command"
	"github.com/nibzard/archduke-go/internal/project"
	"github.com/nibzard/archduke-go/internal/view"
)

const (
	MsgGoodbye        = "Bye. Hope to see you again soon!"
	MsgMissingProject = "Please enter a description for the new project."
	MsgNoProjects     = "There are no projects yet. Create one with: create <description>"
	DefaultPrompt     = "> "
)

// Greeting is shown when a session starts.
var Greeting = []string{
	"Hello! I'm ArchDuke",
	"What can I do for you? Type help to see the available commands.",
}

var menuHelp = []string{
	"Commands:",
	"  create <description>   start a new project",
	"  list                   list all projects",
	"  manage <index>         manage a project (type exit to come back)",
	"  delete <index>         delete a project",
	"  bye                    quit",
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for session events and passed to each
// Dispatcher.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session is the menu state machine. It is either at the outer menu or
// managing one project, until bye ends it.
type Session struct {
	repo       *project.Repository
	logger     *log.Logger
	dispatcher *command.Dispatcher
	done       bool
}

// NewSession returns a session over repo. A nil repo starts empty.
func NewSession(repo *project.Repository, opts ...Option) *Session {
	if repo == nil {
		repo = project.NewRepository()
	}
	s := &Session{repo: repo, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repository returns the projects known to the session.
func (s *Session) Repository() *project.Repository {
	return s.repo
}

// Done reports whether the session has ended.
func (s *Session) Done() bool {
	return s.done
}

// Managing returns the project being managed, if any.
func (s *Session) Managing() (*project.Project, bool) {
	if s.dispatcher == nil {
		return nil, false
	}
	return s.dispatcher.Project(), true
}

// Handle processes one line and returns the lines to show.
func (s *Session) Handle(line string) []string {
	if s.done {
		return nil
	}
	if s.dispatcher != nil {
		return s.handleProject(line)
	}
	return s.handleMenu(strings.TrimSpace(line))
}

func (s *Session) handleProject(line string) []string {
	p := s.dispatcher.Project()
	out := s.dispatcher.Handle(line)
	switch out.Kind {
	case command.Exit:
		s.dispatcher = nil
		s.logger.Info("left project", "project", p.ID(), "description", p.Description())
		return []string{"Exited project: " + p.Description()}
	case command.Quit:
		s.dispatcher = nil
		return s.quit()
	}
	return view.Outcome(out)
}

func (s *Session) handleMenu(line string) []string {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch verb {
	case "":
		return []string{command.MsgEmptyCommand}
	case "bye":
		if rest == "" {
			return s.quit()
		}
	case "help":
		if rest == "" {
			return menuHelp
		}
	case "list":
		if rest == "" {
			return s.list()
		}
	case "create":
		return s.create(rest)
	case "manage":
		return s.manage(rest)
	case "delete":
		return s.delete(rest)
	}
	return []string{command.MsgInvalidCommand}
}

func (s *Session) quit() []string {
	s.done = true
	s.logger.Debug("session ended")
	return []string{MsgGoodbye}
}

func (s *Session) list() []string {
	if s.repo.Len() == 0 {
		return []string{MsgNoProjects}
	}
	lines := []string{"Projects:"}
	for i, p := range s.repo.All() {
		lines = append(lines, fmt.Sprintf("%d. %s (%d members, %d tasks)",
			i+1, p.Description(), p.NumMembers(), p.NumTasks()))
	}
	return lines
}

func (s *Session) create(description string) []string {
	p, err := s.repo.Create(description)
	if errors.Is(err, project.ErrMissingDescription) {
		return []string{MsgMissingProject}
	}
	if err != nil {
		return []string{err.Error()}
	}
	s.logger.Info("created project", "project", p.ID(), "description", p.Description())
	return []string{
		"Added new project: " + p.Description(),
		fmt.Sprintf("Now you have %d project(s).", s.repo.Len()),
	}
}

func (s *Session) manage(arg string) []string {
	p, err := s.lookup(arg)
	if err != nil {
		return []string{err.Error()}
	}
	s.dispatcher = command.New(p, command.WithLogger(s.logger))
	s.logger.Info("entered project", "project", p.ID(), "description", p.Description())
	return []string{"Now managing: " + p.Description()}
}

func (s *Session) delete(arg string) []string {
	index, err := projectIndex(arg)
	if err == nil {
		var p *project.Project
		if p, err = s.repo.Delete(index); err == nil {
			s.logger.Info("deleted project", "project", p.ID(), "description", p.Description())
			return []string{"Deleted project: " + p.Description()}
		}
	}
	return []string{err.Error()}
}

func (s *Session) lookup(arg string) (*project.Project, error) {
	index, err := projectIndex(arg)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(index)
}

func projectIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &project.IndexError{Entity: project.EntityProject}
	}
	return n, nil
}

// Run prints the greeting and feeds lines from src to s until bye, end of
// input, or cancellation of ctx. End of input is not an error.
func Run(ctx context.Context, s *Session, src LineSource, w io.Writer, prompt string) error {
	view.Write(w, Greeting)
	for !s.Done() {
		fmt.Fprint(w, prompt)
		line, err := src.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return err
		}
		view.Write(w, s.Handle(line))
	}
	return nil
}
