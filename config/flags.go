package config

import (
	"flag"
	"io"
	"time"
)

// Flags holds command-line overrides. Only flags present on the command line
// are applied, so YAML and environment values survive when a flag is omitted.
type Flags struct {
	ConfigPath string
	EnvPath    string

	city     string
	units    string
	mode     string
	width    int
	timeout  time.Duration
	serve    bool
	port     string
	logLevel string

	visited map[string]bool
}

func ParseFlags(name string, args []string, output io.Writer) (*Flags, error) {
	f := &Flags{visited: map[string]bool{}}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&f.ConfigPath, "config", DefaultConfigPath, "path to the YAML configuration file")
	fs.StringVar(&f.EnvPath, "env-file", DefaultEnvPath, "path to a dotenv file")
	fs.StringVar(&f.city, "city", "", "city to fetch weather for")
	fs.StringVar(&f.units, "units", "", "unit system: metric, imperial or standard")
	fs.StringVar(&f.mode, "mode", "", "display mode: print or tui")
	fs.IntVar(&f.width, "width", 0, "dashboard width in columns")
	fs.DurationVar(&f.timeout, "timeout", 0, "HTTP timeout for each API request")
	fs.BoolVar(&f.serve, "serve", false, "serve the dashboard over HTTP instead of printing it")
	fs.StringVar(&f.port, "port", "", "HTTP port used with -serve")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		f.visited[fl.Name] = true
	})

	return f, nil
}

func (f *Flags) Apply(cfg *Config) {
	if f.visited["city"] {
		cfg.Weather.City = f.city
	}
	if f.visited["units"] {
		cfg.Weather.Units = f.units
	}
	if f.visited["mode"] {
		cfg.Render.Mode = f.mode
	}
	if f.visited["width"] {
		cfg.Render.Width = f.width
	}
	if f.visited["timeout"] {
		cfg.Weather.Timeout = f.timeout
	}
	if f.visited["serve"] {
		cfg.Server.Enabled = f.serve
	}
	if f.visited["port"] {
		cfg.Server.Port = f.port
	}
	if f.visited["log-level"] {
		cfg.Log.Level = f.logLevel
	}
}
