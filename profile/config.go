package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/stopwatch/caller"
)

// ErrInvalidConfig indicates a configuration file that cannot be loaded.
var ErrInvalidConfig = errors.New("invalid config")

// Flags holds CLI flag names for reporting configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	ReportEvery  string
	ReportAtExit string
	Format       string
	FormatAtExit string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:        f,
		ReportEvery:  1,
		ReportAtExit: true,
		Format:       DefaultFormat,
		FormatAtExit: DefaultFormatAtExit,
	}
}

// Config holds reporting configuration for CLI applications. Values come
// from CLI flags and, optionally, a YAML file loaded with [Config.Load] or
// [Config.LoadFile].
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewProfiler] to create a [Profiler].
type Config struct {
	Format       string `yaml:"format"`
	FormatAtExit string `yaml:"format_at_exit"`
	Flags        Flags  `yaml:"-"`
	ReportEvery  int    `yaml:"report_every"`
	ReportAtExit bool   `yaml:"report_at_exit"`
}

// NewConfig creates a new [Config] with default flag names, reporting
// after every sample and at exit with the default templates.
func NewConfig() *Config {
	f := Flags{
		ReportEvery:  "report-every",
		ReportAtExit: "report-at-exit",
		Format:       "report-format",
		FormatAtExit: "report-format-at-exit",
	}

	return f.NewConfig()
}

// RegisterFlags adds reporting flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.ReportEvery, c.Flags.ReportEvery, c.ReportEvery,
		"report after every n-th sample (0 disables interim reports)")
	flags.BoolVar(&c.ReportAtExit, c.Flags.ReportAtExit, c.ReportAtExit,
		"report a summary at exit")
	flags.StringVar(&c.Format, c.Flags.Format, c.Format, "interim report template")
	flags.StringVar(&c.FormatAtExit, c.Flags.FormatAtExit, c.FormatAtExit, "exit summary template")
}

// RegisterCompletions registers shell completions for reporting flags on
// cmd. None of the flags take file names.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	for _, name := range []string{c.Flags.ReportEvery, c.Flags.Format, c.Flags.FormatAtExit} {
		err := cmd.RegisterFlagCompletionFunc(name, cobra.NoFileCompletions)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.ReportAtExit,
		cobra.FixedCompletions([]string{"true", "false"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.ReportAtExit, err)
	}

	return nil
}

// LoadFile reads the YAML file at path into c. See [Config.Load].
func (c *Config) LoadFile(path string, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(path) //nolint:gosec // Config path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	return c.Load(data, flags)
}

// Load reads YAML data into c. Keys missing from data keep their current
// values, and flags explicitly set on flags take precedence over the file.
// Unknown keys and invalid templates fail with [ErrInvalidConfig].
func (c *Config) Load(data []byte, flags *pflag.FlagSet) error {
	loaded := *c

	err := yaml.UnmarshalWithOptions(data, &loaded, yaml.DisallowUnknownField())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	changed := func(name string) bool {
		return flags != nil && flags.Changed(name)
	}

	if !changed(c.Flags.ReportEvery) {
		c.ReportEvery = loaded.ReportEvery
	}

	if !changed(c.Flags.ReportAtExit) {
		c.ReportAtExit = loaded.ReportAtExit
	}

	if !changed(c.Flags.Format) {
		c.Format = loaded.Format
	}

	if !changed(c.Flags.FormatAtExit) {
		c.FormatAtExit = loaded.FormatAtExit
	}

	err = c.Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Validate compiles both templates.
func (c *Config) Validate() error {
	_, err := compileTemplate(c.Format, profilerFields, false)
	if err != nil {
		return err
	}

	_, err = compileTemplate(c.FormatAtExit, profilerFields, false)
	if err != nil {
		return err
	}

	return nil
}

// Schema returns the JSON Schema of the YAML configuration file.
func (c *Config) Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Schema:      "https://json-schema.org/draft/2020-12/schema",
		Title:       "stopwatch configuration",
		Type:        "object",
		Description: "Reporting configuration for instrumented call sites.",
		Properties: map[string]*jsonschema.Schema{
			"report_every": {
				Type:        "integer",
				Description: "Report after every n-th sample. Values below one disable interim reports.",
				Default:     mustJSON(1),
			},
			"report_at_exit": {
				Type:        "boolean",
				Description: "Report a summary when the process exits.",
				Default:     mustJSON(true),
			},
			"format": {
				Type:        "string",
				Description: "Interim report template.",
				Default:     mustJSON(DefaultFormat),
			},
			"format_at_exit": {
				Type:        "string",
				Description: "Exit summary template.",
				Default:     mustJSON(DefaultFormatAtExit),
			},
		},
		PropertyOrder:        []string{"report_every", "report_at_exit", "format", "format_at_exit"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

// Options returns the [Option] values described by c.
func (c *Config) Options() []Option {
	return []Option{
		WithReportEvery(c.ReportEvery),
		WithReportAtExit(c.ReportAtExit),
		WithFormat(c.Format),
		WithFormatAtExit(c.FormatAtExit),
	}
}

// NewProfiler creates a [Profiler] for the call site that calls
// NewProfiler, configured by c and then by opts.
func (c *Config) NewProfiler(opts ...Option) (*Profiler, error) {
	return newProfiler(caller.Identify(0), append(c.Options(), opts...))
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	must(err)

	return b
}
