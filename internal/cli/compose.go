package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/attrib"
)

// row is the JSON layout of a contribution row file.
type row struct {
	IDs           []int     `json:"ids,omitempty"`
	Contributions []float32 `json:"contributions"`
}

// composeOpts holds the flags of the compose command.
type composeOpts struct {
	row        string
	configPath string
	top        int
	bottom     int
	abs        bool
	precision  string
	format     string
}

// composeCommand creates the "compose" subcommand.
func (c *CLI) composeCommand() *cobra.Command {
	var opts composeOpts

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Select the top and bottom contributions of a row",
		Long: `Compose reads one contribution row and prints the selected features followed by the bias.

The row file is JSON: {"ids": [...], "contributions": [...]}. The last
contribution is the bias term. When "ids" is omitted, slot i is feature i.
A negative --top or --bottom selects every contribution.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return c.runCompose(cmd, opts.row, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.row, "row", "r", "-", "row file (- for stdin)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/attrib/config.toml)")
	cmd.Flags().IntVarP(&opts.top, "top", "t", 0, "number of highest contributions")
	cmd.Flags().IntVarP(&opts.bottom, "bottom", "b", 0, "number of lowest contributions")
	cmd.Flags().BoolVar(&opts.abs, "abs", false, "compare absolute values")
	cmd.Flags().StringVar(&opts.precision, "precision", "", "ranking precision: float32, float16")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, json")

	return cmd
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func (c *CLI) resolveConfig(cmd *cobra.Command, opts composeOpts) (Config, error) {
	path, required := opts.configPath, opts.configPath != ""
	if path == "" {
		if p, err := configPath(); err == nil {
			path = p
		}
	}

	cfg, err := loadConfig(path, required)
	if err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("top") {
		cfg.Top = opts.top
	}
	if flags.Changed("bottom") {
		cfg.Bottom = opts.bottom
	}
	if flags.Changed("abs") {
		cfg.Abs = opts.abs
	}
	if flags.Changed("precision") {
		cfg.Precision = Precision(opts.precision)
	}
	if flags.Changed("format") {
		cfg.Format = Format(opts.format)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *CLI) runCompose(cmd *cobra.Command, path string, cfg Config) error {
	logger := loggerFromContext(cmd.Context())

	r, err := readRow(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if r.IDs == nil {
		r.IDs = make([]int, len(r.Contributions))
		for i := range r.IDs {
			r.IDs[i] = i
		}
	}
	if err := attrib.Validate(r.IDs, r.Contributions); err != nil {
		return fmt.Errorf("invalid row %s: %w", path, err)
	}

	req := attrib.Request{
		TopN:       cfg.Top,
		TopBottomN: cfg.Bottom,
		Mode:       attrib.ModeFor(cfg.Abs),
	}
	logger.Debug("composing row", "slots", len(r.Contributions), "top", req.TopN, "bottom", req.TopBottomN, "mode", req.Mode, "precision", cfg.Precision)

	var selected []attrib.Contribution
	switch cfg.Precision {
	case HalfPrecision:
		selected = attrib.ComposeHalf(r.IDs, attrib.NarrowHalf(r.Contributions), req)
	default:
		selected = attrib.ComposeKeyed(r.IDs, r.Contributions, req)
	}
	logger.Debug("composed row", "selected", len(selected))

	return writeContributions(c.Out, selected, cfg.Format)
}

// readRow decodes a row from path, or from stdin when path is "-".
func readRow(path string, stdin io.Reader) (row, error) {
	var r row
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return row{}, fmt.Errorf("open row: %w", err)
		}
		defer f.Close()
		in = f
	}

	if err := json.NewDecoder(in).Decode(&r); err != nil {
		return row{}, fmt.Errorf("decode row %s: %w", path, err)
	}
	return r, nil
}

func writeContributions(w io.Writer, selected []attrib.Contribution, format Format) error {
	if format == JSONFormat {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(selected)
	}
	for _, contrib := range selected {
		if _, err := fmt.Fprintf(w, "%d\t%g\n", contrib.ID, contrib.Value); err != nil {
			return err
		}
	}
	return nil
}
