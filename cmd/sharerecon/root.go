package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalvas/sharerecon/console"
	"github.com/vitalvas/sharerecon/shamir"
	"github.com/vitalvas/sharerecon/xlogger"
)

// errReported marks failures already shown to the user.
var errReported = errors.New("reported")

// app carries state shared by every subcommand.
type app struct {
	configPath string
	file       string
	methodName string

	conf   *Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		asJSON  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "sharerecon",
		Short: "Reconstruct a secret from threshold shares",
		Long: `Reconstruct the constant term of a polynomial from threshold shares.

Without --file the built-in example document is used. Each share holds a
numeral in a base between 2 and 36; the k shares with the smallest indices
are interpolated exactly.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runReconstruct(cmd, asJSON, noColor)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (.yaml, .json or .toml)")
	flags.StringVarP(&a.file, "file", "f", "", "share document to read instead of the example, - for stdin")
	flags.StringVarP(&a.methodName, "method", "m", "", "interpolation method: lagrange or vandermonde")

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(
		newServeCmd(a),
		newTUICmd(a),
		newVersionCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	conf, err := loadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if a.methodName != "" {
		conf.Method = a.methodName
	}

	if conf.Logger.Output == nil {
		conf.Logger.Output = cmd.ErrOrStderr()
	}

	a.conf = conf
	a.logger = xlogger.New(conf.Logger)

	return nil
}

func (a *app) method() (shamir.Method, error) {
	return shamir.ParseMethod(a.conf.Method)
}

func (a *app) readDocument(cmd *cobra.Command) ([]byte, error) {
	switch a.file {
	case "":
		return []byte(console.ExampleDocument), nil
	case "-":
		return io.ReadAll(cmd.InOrStdin())
	default:
		return os.ReadFile(a.file)
	}
}

func (a *app) runReconstruct(cmd *cobra.Command, asJSON, noColor bool) error {
	out := cmd.OutOrStdout()
	renderer := console.NewRenderer(console.NewStyles(!noColor && isTerminal(out)))

	method, err := a.method()
	if err != nil {
		return err
	}

	doc, err := a.readDocument(cmd)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	res, err := shamir.Reconstruct(doc, shamir.WithMethod(method))
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		a.logger.Error("reconstruction failed",
			slog.String("kind", shamir.ErrorKind(err)),
			slog.String("file", a.file),
			xlogger.Err(err),
		)
		return errReported
	}

	a.logger.Debug("reconstruction complete", slog.Int("k", res.K), slog.String("method", res.Method.String()))

	if asJSON {
		return console.WriteJSON(out, res)
	}

	_, err = io.WriteString(out, renderer.Render(res))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && console.IsTerminal(f)
}
