package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/colordoll/pkg/colorizer"
	"github.com/arthur-debert/colordoll/pkg/handlers"
)

func newRenderCmd() *cobra.Command {
	var (
		themeName  string
		output     string
		colorsFile string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: MsgRenderShort,
		Long:  MsgRenderLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, ok := colorizer.ThemeByName(themeName)
			if !ok {
				return fmt.Errorf("unknown theme %q (available: %v)", themeName, colorizer.ThemeNames())
			}

			document, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var opts []colorizer.Option
			if colorsFile == "" {
				colorsFile = defaultColorsFile()
			}
			if colorsFile != "" {
				opts = append(opts, colorizer.WithConfigFile(colorsFile))
			}
			c, err := colorizer.New(opts...)
			if err != nil {
				return err
			}

			handler, err := handlerFor(output, c)
			if err != nil {
				return err
			}
			c.SetOutputHandler(handler)

			result, err := c.Render(document, theme)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatResult(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&themeName, "theme", "t", "dark", "Theme: dark, light, minimalist or vibrant")
	cmd.Flags().StringVarP(&output, "output", "o", "term", "Output mode: term, plain, yaml or data")
	cmd.Flags().StringVar(&colorsFile, "colors", "", "Path to a JSON color override table")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(content), nil
	}
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(content), nil
}

func handlerFor(mode string, c *colorizer.Colorizer) (colorizer.OutputHandler, error) {
	switch mode {
	case "term":
		if !colorEnabled() {
			return handlers.Plain{Colorizer: c}, nil
		}
		return handlers.Term{Colorizer: c}, nil
	case "plain":
		return handlers.Plain{Colorizer: c}, nil
	case "yaml":
		return handlers.YAML{}, nil
	case "data":
		return handlers.Data{}, nil
	}
	return nil, fmt.Errorf("unknown output mode %q (available: term, plain, yaml, data)", mode)
}

// colorEnabled honors NO_COLOR and downgrades piped output to plain text.
func colorEnabled() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return stdoutIsTerminal()
}

func formatResult(result interface{}) string {
	if s, ok := result.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", result)
}

// defaultColorsFile returns the XDG config path for color overrides when the
// file exists, otherwise an empty string.
func defaultColorsFile() string {
	path := filepath.Join(xdg.ConfigHome, "colordoll", "colors.json")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
