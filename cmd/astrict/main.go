package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"astrict/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "astrict",
	Short: "Shading-language IR toolkit",
	Long:  `astrict regenerates GLSL source from pack files and bundles related shading utilities`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(glslCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(rainbowCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	cobra.OnInitialize(configureColor)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func configureColor() {
	mode, err := rootCmd.PersistentFlags().GetString("color")
	if err != nil {
		return
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
