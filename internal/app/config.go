package app

import "flag"

// Config represents the command-line and environment parameters for the game.
type Config struct {
	Width           int     `env:"CLEAR_SKIES_WIDTH"`
	Height          int     `env:"CLEAR_SKIES_HEIGHT"`
	TPS             int     `env:"CLEAR_SKIES_TPS"`
	Seed            int64   `env:"CLEAR_SKIES_SEED"`
	VSync           bool    `env:"CLEAR_SKIES_VSYNC"`
	SavePath        string  `env:"CLEAR_SKIES_SAVE_PATH"`
	ShaderPath      string  `env:"CLEAR_SKIES_SHADER"`
	RoundMinutes    float64 `env:"CLEAR_SKIES_ROUND_MINUTES"`
	FastForward     float64 `env:"CLEAR_SKIES_FAST_FORWARD"`
	BlurRadius      int     `env:"CLEAR_SKIES_BLUR_RADIUS"`
	CutsceneSeconds float64 `env:"CLEAR_SKIES_CUTSCENE_SECONDS"`
	Debug           bool    `env:"CLEAR_SKIES_DEBUG"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:           1280,
		Height:          720,
		TPS:             60,
		Seed:            42,
		VSync:           true,
		SavePath:        "clear-skies.db",
		RoundMinutes:    15,
		FastForward:     5,
		BlurRadius:      2,
		CutsceneSeconds: 6,
	}
}

// Bind attaches the configuration to the provided FlagSet. Current values
// become the flag defaults, so environment overrides parsed earlier stay in
// effect unless a flag is given.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "screen width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "screen height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for world generation")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "synchronize presentation with the display")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "save database path, empty disables saving")
	fs.StringVar(&c.ShaderPath, "shader", c.ShaderPath, "post-process shader override")
	fs.Float64Var(&c.RoundMinutes, "round", c.RoundMinutes, "round length in simulated minutes")
	fs.Float64Var(&c.FastForward, "fast-forward", c.FastForward, "cutscene fast-forward multiplier")
	fs.IntVar(&c.BlurRadius, "blur", c.BlurRadius, "blur radius while wearing goggles")
	fs.Float64Var(&c.CutsceneSeconds, "cutscene", c.CutsceneSeconds, "arrival cutscene length in seconds")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log state transitions")
}
