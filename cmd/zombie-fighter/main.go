package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombie-fighter/audio"
	"github.com/lixenwraith/zombie-fighter/config"
	"github.com/lixenwraith/zombie-fighter/core"
	"github.com/lixenwraith/zombie-fighter/game"
	"github.com/lixenwraith/zombie-fighter/terminal"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to YAML config file")
	rulesFlag  = flag.String("rules", "", "Rule set: standard, classic (overrides config)")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/ and show the status line")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	seedFlag   = flag.Uint64("seed", 0, "Spawn RNG seed, 0 seeds from the clock")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "zombie-fighter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting: config=%s rules=%s", *configFlag, cfg.Rules.Preset)

	if !terminal.IsInteractive() {
		return errors.New("stdin and stdout must be a terminal")
	}

	colorMode, err := terminal.ParseColorMode(cfg.Display.ColorMode)
	if err != nil {
		return err
	}
	terminal.ApplyColorMode(colorMode)
	log.Printf("color mode: %s", colorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	// Audio is optional, failures leave the game silent
	sounds := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio))
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
	}
	if *muteFlag {
		sounds.SetMuted(true)
	}

	g, err := game.New(screen, cfg, sounds)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return g.Run(ctx)
}

// loadConfig resolves the file, then environment, then flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if *rulesFlag != "" {
		if err := cfg.UseRules(*rulesFlag); err != nil {
			return nil, fmt.Errorf("-rules: %w", err)
		}
	}
	if *colorFlag != "" {
		cfg.Display.ColorMode = *colorFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
