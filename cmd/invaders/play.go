package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEndless    bool
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing straight away.

Controls:
  Left/Right, A/D  - Steer (the ship keeps moving)
  Down/S           - Stop
  Space/Up/W       - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  B                - Back to the menu (quits when started with play)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower formation, less enemy fire
  normal - Config values as is
  hard   - Faster formation, more enemy fire
  fixed  - No speed-up over time

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --endless --sound
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Spawn a new wave whenever the formation is cleared")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

// loadGameConfig loads the game config and applies the difficulty flag.
func loadGameConfig() (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyInvadersPreset(&cfg, preset)
	}
	return cfg, nil
}

// logConfig records where the game config came from.
func logConfig(logger *log.Logger) {
	source := flagConfig
	if source == "" {
		source = "search path"
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// startSound opens the speaker when --sound is set. It returns nil when
// sound is off or unavailable.
func startSound(logger *log.Logger) *audio.SoundManager {
	if !flagSound {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		// Non-fatal, the game runs without sound
		logger.Warn("audio unavailable", "error", err)
		return nil
	}
	return sm
}

// newGame wires a game to persistence, logging and sound.
func newGame(cfg config.InvadersConfig, endless bool, store *storage.Store, logger *log.Logger, sound *audio.SoundManager) *invaders.Game {
	opts := []invaders.Option{
		invaders.WithEndless(endless),
		invaders.WithLogger(logger),
	}
	if store != nil {
		opts = append(opts, invaders.WithStore(store))
	}
	if sound != nil {
		opts = append(opts, invaders.WithHooks(invaders.Hooks{Event: sound.OnEvent}))
	}
	return invaders.New(cfg, opts...)
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, logFile := openLogger()
	defer logFile.Close()
	logConfig(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound := startSound(logger)
	if sound != nil {
		defer sound.Cleanup()
	}

	game := newGame(cfg, flagEndless, store, logger, sound)
	logger.Debug("starting game", "game", game.ID(), "fps", flagFPS, "seed", flagSeed)

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
