package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/NelCSC/grupo-playlist-app/internal/models"
	"github.com/NelCSC/grupo-playlist-app/internal/player"
	"github.com/NelCSC/grupo-playlist-app/internal/server"
	"github.com/NelCSC/grupo-playlist-app/internal/shared"
	"github.com/NelCSC/grupo-playlist-app/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for
// each command action.
type Runner struct {
	config    *shared.Config
	generator server.Generator
	service   ui.PlaylistService
	logger    *log.Logger
	output    io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config    *shared.Config
	Generator server.Generator
	Service   ui.PlaylistService
	Logger    *log.Logger
	Output    io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:    opts.Config,
		generator: opts.Generator,
		service:   opts.Service,
		logger:    opts.Logger,
		output:    opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, generateCommand, playCommand, genresCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Serve runs the aggregator HTTP service until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if r.generator == nil {
		return fmt.Errorf("%w: a YouTube API key is required to serve", shared.ErrMissingCredentials)
	}

	host := cmd.String("host")
	if host == "" {
		host = r.config.Server.Host
	}
	port := int(cmd.Int("port"))
	if port == 0 {
		port = r.config.Server.Port
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(r.generator, r.logger, host, port)
	return srv.ListenAndServe(ctx)
}

// Generate runs a one-shot aggregation for the participants given on the
// command line and prints the shuffled playlist.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	if r.generator == nil {
		return fmt.Errorf("%w: a YouTube API key is required to generate", shared.ErrMissingCredentials)
	}

	participants, err := parseParticipants(cmd.StringSlice("participant"))
	if err != nil {
		return err
	}

	ids, err := r.generator.Generate(ctx, participants)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(models.GenerateResponse{Playlist: ids}, cmd.Bool("pretty"))
	}

	if len(ids) == 0 {
		return r.writePlain("no videos matched the selected preferences\n")
	}
	for i, id := range ids {
		if err := r.writePlain("%2d. https://www.youtube.com/watch?v=%s\n", i+1, id); err != nil {
			return err
		}
	}
	return nil
}

// Play launches the interactive playback TUI against a running aggregator.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	if r.service == nil {
		return fmt.Errorf("%w: playlist service not initialized", shared.ErrServiceUnavailable)
	}

	participants, err := parseParticipants(cmd.StringSlice("participant"))
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/grupo-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}

	controller := player.NewController(player.WithControllerLogger(fileLogger))
	browser := player.NewBrowserPlayer()

	model := ui.NewModel(ctx, r.service, controller, browser, participants)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// Genres prints the supported genre catalog.
func (r *Runner) Genres(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("json") {
		return r.writeJSON(models.Genres, cmd.Bool("pretty"))
	}
	for _, g := range models.Genres {
		if err := r.writePlain("%s\n", g); err != nil {
			return err
		}
	}
	return nil
}

// ConfigInit writes the example configuration to the given path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	return r.writePlain("created %s\n", path)
}

// parseParticipants turns repeated "age:genre,genre" flag values into
// validated participants.
func parseParticipants(specs []string) ([]models.Participant, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: at least one --participant is required", shared.ErrMissingArgument)
	}

	participants := make([]models.Participant, 0, len(specs))
	for _, spec := range specs {
		p, err := parseParticipantSpec(spec)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// parseParticipantSpec parses one "age:genre,genre" value, e.g.
// "25:Trap,Hip Hop".
func parseParticipantSpec(spec string) (models.Participant, error) {
	agePart, genrePart, found := strings.Cut(spec, ":")
	if !found {
		return models.Participant{}, fmt.Errorf("%w: %q is not in age:genre,genre form", shared.ErrInvalidInput, spec)
	}

	age, err := strconv.Atoi(strings.TrimSpace(agePart))
	if err != nil {
		return models.Participant{}, fmt.Errorf("%w: %q is not a valid age", shared.ErrInvalidInput, agePart)
	}

	genres := []string{}
	for _, g := range strings.Split(genrePart, ",") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}

	p := models.NewParticipant(age, genres)
	if err := p.Validate(); err != nil {
		return models.Participant{}, err
	}
	return p, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
