// Package game provides the main game loop: it turns terminal input into
// moves on a match session and redraws the table after each one.
package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/memorymatch/internal/deck"
	"github.com/samdwyer/memorymatch/internal/match"
	"github.com/samdwyer/memorymatch/internal/telemetry"
	"github.com/samdwyer/memorymatch/internal/ui"
)

// Terminal is the event source and drawing surface the loop runs on.
type Terminal interface {
	ui.Canvas
	PollEvent() tcell.Event
	Sync()
	Close()
}

// Game holds the entire game state.
type Game struct {
	terminal  Terminal
	renderer  *ui.Renderer
	layout    *ui.Layout
	session   *match.Session
	logger    zerolog.Logger
	sessionID string
	pointer   ui.Pointer
	buttons   tcell.ButtonMask // Mouse buttons held at the last mouse event
	running   bool
	closed    bool
}

// New loads the pair list, opens the terminal and deals the first round.
func New(cfg Config, logger zerolog.Logger) (*Game, error) {
	pairs, err := deck.LoadOrDefault(cfg.PairsFile)
	if err != nil {
		return nil, err
	}

	palette, err := ui.NewPalette(cfg.Colors)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen(palette.Background)
	if err != nil {
		return nil, err
	}

	g, err := newGame(cfg, pairs, screen, palette, logger)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame builds a game on an already open terminal.
func newGame(cfg Config, pairs []match.Pair, terminal Terminal, palette *ui.Palette, logger zerolog.Logger) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := match.NewSession(pairs, cfg.PlayerNames, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	return &Game{
		terminal:  terminal,
		renderer:  ui.NewRenderer(terminal, palette),
		layout:    ui.NewLayout(len(session.Cards())),
		session:   session,
		logger:    logger.With().Str("session_id", id).Int64("seed", seed).Logger(),
		sessionID: id,
		pointer:   ui.Pointer{Card: 0},
		running:   true,
	}, nil
}

// Session returns the match session driven by this game.
func (g *Game) Session() *match.Session {
	return g.session
}

// SessionID returns the unique id of this play session.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Run executes the main game loop until the player quits or the terminal
// stops delivering events. The terminal is closed on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("pairs", g.session.PairCount()),
	)
	defer span.End()

	g.traceRoundStart(ctx)

	for g.running {
		if err := ctx.Err(); err != nil {
			g.logger.Info().Err(err).Msg("context done, leaving game")
			break
		}

		g.render()

		ev := g.terminal.PollEvent()
		if ev == nil {
			// Screen finalized
			break
		}
		g.handleEvent(ctx, ev)
	}

	span.SetAttributes(attribute.Int("rounds_played", g.session.GamesPlayed()))
	g.logger.Info().
		Int("rounds_played", g.session.GamesPlayed()).
		Interface("games_won", gamesWon(g.session)).
		Msg("session ended")
	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.closed || g.terminal == nil {
		return
	}
	g.closed = true
	g.terminal.Close()
}

func (g *Game) render() {
	g.renderer.Render(g.session, g.layout, g.pointer, ui.StatusLine(g.session))
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, actionForKey(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		g.handleMouse(ctx, ev)
	case *tcell.EventResize:
		g.terminal.Sync()
	}
}

// handleMouse tracks hover and acts on left-button presses, ignoring drags.
func (g *Game) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	x, y := ev.Position()
	g.pointer = ui.Pointer{
		Card:   g.layout.CardAt(x, y),
		Button: g.layout.ButtonAt(x, y),
	}

	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0
	g.buttons = buttons
	if !pressed {
		return
	}

	switch {
	case g.pointer.Button:
		g.continueTable(ctx)
	case g.pointer.Card >= 0:
		g.selectCard(ctx, g.pointer.Card)
	}
}

// apply runs a decoded keyboard action.
func (g *Game) apply(ctx context.Context, action Action) {
	switch action {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		dx, dy := action.delta()
		g.pointer = ui.Pointer{Card: g.layout.Move(g.pointer.Card, dx, dy)}
	case ActionSelect:
		if g.pointer.Button {
			g.continueTable(ctx)
			return
		}
		g.selectCard(ctx, g.pointer.Card)
	case ActionContinue:
		g.continueTable(ctx)
	case ActionQuit:
		g.running = false
	}
}

// selectCard forwards a card pick to the session and records the result.
func (g *Game) selectCard(ctx context.Context, index int) {
	player := g.session.Current()
	outcome := g.session.SelectCard(index)
	if outcome == match.OutcomeIgnored {
		g.logger.Debug().Int("card", index).Str("phase", g.session.Phase().String()).Msg("selection ignored")
		return
	}

	tracer := telemetry.Tracer("round")
	ctx, span := tracer.Start(ctx, "card.select")
	span.SetAttributes(
		attribute.Int("round", g.session.Round()),
		attribute.Int("card.index", index),
		attribute.Int("player", player),
		attribute.String("outcome", outcome.String()),
	)
	if outcome.Evaluated() {
		span.SetAttributes(
			attribute.Bool("pair.match", outcome != match.OutcomeMismatch),
			attribute.Int("pairs_remaining", g.session.Remaining()),
		)
	}
	span.End()

	event := g.logger.Debug()
	if outcome.Evaluated() {
		event = g.logger.Info()
	}
	event.Int("round", g.session.Round()).
		Int("card", index).
		Int("player", player).
		Str("outcome", outcome.String()).
		Int("pairs_remaining", g.session.Remaining()).
		Msg("card selected")

	if outcome == match.OutcomeRoundOver {
		g.traceRoundEnd(ctx)
	}
}

// continueTable presses the action button: flip back a mismatch, or deal
// the next round.
func (g *Game) continueTable(ctx context.Context) {
	before := g.session.Phase()
	player := g.session.Current()
	if !g.session.Continue() {
		return
	}

	switch before {
	case match.PhaseAwaitingHide:
		_, span := telemetry.Tracer("round").Start(ctx, "cards.hide")
		span.SetAttributes(
			attribute.Int("round", g.session.Round()),
			attribute.Int("player", player),
			attribute.Int("next_player", g.session.Current()),
		)
		span.End()
		g.logger.Debug().Int("player", player).Int("next_player", g.session.Current()).Msg("cards hidden")
	case match.PhaseRoundOver:
		g.layout = ui.NewLayout(len(g.session.Cards()))
		g.pointer = ui.Pointer{Card: 0}
		g.traceRoundStart(ctx)
	}
}

func (g *Game) traceRoundStart(ctx context.Context) {
	_, span := telemetry.Tracer("round").Start(ctx, "round.start")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("round", g.session.Round()),
		attribute.Int("cards", len(g.session.Cards())),
		attribute.Int("starting_player", g.session.Current()),
	)
	span.End()

	g.logger.Info().
		Int("round", g.session.Round()).
		Int("pairs", g.session.PairCount()).
		Str("starting_player", g.session.CurrentPlayer().Name).
		Msg("round started")
}

func (g *Game) traceRoundEnd(ctx context.Context) {
	result, ok := g.session.LastResult()
	if !ok {
		return
	}

	_, span := telemetry.Tracer("round").Start(ctx, "round.end")
	span.SetAttributes(
		attribute.Int("round", result.Round),
		attribute.IntSlice("scores", result.Scores[:]),
		attribute.IntSlice("winners", result.Winners),
		attribute.Bool("tie", result.Tie()),
		attribute.Int("attempts", result.Attempts),
		attribute.Int("next_starter", result.NextStarter),
	)
	span.End()

	g.logger.Info().
		Int("round", result.Round).
		Ints("scores", result.Scores[:]).
		Ints("winners", result.Winners).
		Bool("tie", result.Tie()).
		Int("attempts", result.Attempts).
		Msg("round ended")
}

func gamesWon(s *match.Session) [2]int {
	p := s.Players()
	return [2]int{p[0].GamesWon, p[1].GamesWon}
}
