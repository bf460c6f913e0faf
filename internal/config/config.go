package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/knobmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMode       = "KNOBMENU_MODE"
	envFPS        = "KNOBMENU_FPS"
	envTransition = "KNOBMENU_TRANSITION_MS"
	envStiffness  = "KNOBMENU_STIFFNESS"
	envDamping    = "KNOBMENU_DAMPING"
	envQuantum    = "KNOBMENU_QUANTUM"
	envFixedStep  = "KNOBMENU_FIXED_STEP"
	envDark       = "KNOBMENU_DARK"
	envShowFPS    = "KNOBMENU_SHOW_FPS"
	envRoot       = "KNOBMENU_ROOT"
	envSPI        = "KNOBMENU_SPI"
	envCS         = "KNOBMENU_CS"
	envDISP       = "KNOBMENU_DISP"
	envEncA       = "KNOBMENU_ENC_A"
	envEncB       = "KNOBMENU_ENC_B"
	envEncBtn     = "KNOBMENU_ENC_BTN"
	envTrace      = "KNOBMENU_TRACE"
	envLogFile    = "KNOBMENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("knobmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	mode := fs.String("mode", envOrDefault(env, envMode, app.ModeSim), "front end: sim (terminal simulator) or device (Sharp LCD + GPIO encoder)")
	fps := fs.Int("fps", envOrInt(env, envFPS, app.DefaultFPS), "target frames per second")
	transition := fs.Int("transition-ms", envOrInt(env, envTransition, app.DefaultTransitionMs), "page transition length in milliseconds (0 disables)")
	stiffness := fs.Int("stiffness", envOrInt(env, envStiffness, 100), "cursor spring stiffness (50-200)")
	damping := fs.Int("damping", envOrInt(env, envDamping, 12), "cursor spring damping (1-30)")
	quantum := fs.Int("quantum", envOrInt(env, envQuantum, 4), "encoder counts per detent")
	fixedStep := fs.Bool("fixed-step", envOrBool(env, envFixedStep, false), "integrate animations with a fixed 16ms step")
	dark := fs.Bool("dark", envOrBool(env, envDark, false), "start in dark mode")
	showFPS := fs.Bool("show-fps", envOrBool(env, envShowFPS, false), "draw the frame rate in the corner")
	root := fs.String("root", envOrDefault(env, envRoot, ""), "title of the page to start on (fuzzy matched)")
	spiPort := fs.String("spi", envOrDefault(env, envSPI, ""), "SPI port name for device mode (empty picks the first)")
	cs := fs.String("cs", envOrDefault(env, envCS, "GPIO8"), "chip select pin for the display")
	disp := fs.String("disp", envOrDefault(env, envDISP, "GPIO24"), "display enable pin (empty when hard-wired)")
	encA := fs.String("enc-a", envOrDefault(env, envEncA, "GPIO17"), "encoder channel A pin")
	encB := fs.String("enc-b", envOrDefault(env, envEncB, "GPIO27"), "encoder channel B pin")
	encBtn := fs.String("enc-btn", envOrDefault(env, envEncBtn, "GPIO22"), "encoder push button pin")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *fps <= 0 {
		return Config{}, fmt.Errorf("fps must be > 0 (got %d)", *fps)
	}
	if *transition < 0 {
		return Config{}, fmt.Errorf("transition-ms must be >= 0 (got %d)", *transition)
	}
	if *stiffness < 50 || *stiffness > 200 {
		return Config{}, fmt.Errorf("stiffness must be between 50 and 200 (got %d)", *stiffness)
	}
	if *damping < 1 || *damping > 30 {
		return Config{}, fmt.Errorf("damping must be between 1 and 30 (got %d)", *damping)
	}
	if *quantum <= 0 {
		return Config{}, fmt.Errorf("quantum must be > 0 (got %d)", *quantum)
	}

	cfg := Config{
		App: app.Config{
			Mode:         strings.ToLower(strings.TrimSpace(*mode)),
			FPS:          *fps,
			TransitionMs: *transition,
			Stiffness:    int32(*stiffness),
			Damping:      int32(*damping),
			Quantum:      *quantum,
			FixedStep:    *fixedStep,
			DarkMode:     *dark,
			ShowFPS:      *showFPS,
			RootMenu:     *root,
			Device: app.DeviceConfig{
				SPIPort: *spiPort,
				CS:      *cs,
				DISP:    *disp,
				EncA:    *encA,
				EncB:    *encB,
				EncBtn:  *encBtn,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"mode":         *mode,
			"fps":          strconv.Itoa(*fps),
			"transitionMs": strconv.Itoa(*transition),
			"stiffness":    strconv.Itoa(*stiffness),
			"damping":      strconv.Itoa(*damping),
			"quantum":      strconv.Itoa(*quantum),
			"fixedStep":    strconv.FormatBool(*fixedStep),
			"dark":         strconv.FormatBool(*dark),
			"showFPS":      strconv.FormatBool(*showFPS),
			"root":         *root,
			"spi":          *spiPort,
			"cs":           *cs,
			"disp":         *disp,
			"encA":         *encA,
			"encB":         *encB,
			"encBtn":       *encBtn,
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks settings that depend on each other.
func Validate(cfg Config) error {
	switch cfg.App.Mode {
	case app.ModeSim:
		return nil
	case app.ModeDevice:
		d := cfg.App.Device
		for name, pin := range map[string]string{"cs": d.CS, "enc-a": d.EncA, "enc-b": d.EncB, "enc-btn": d.EncBtn} {
			if strings.TrimSpace(pin) == "" {
				return fmt.Errorf("device mode requires --%s", name)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown mode %q (want %s or %s)", cfg.App.Mode, app.ModeSim, app.ModeDevice)
	}
}
