package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"astrict/internal/rainbow"
)

var rainbowCmd = &cobra.Command{
	Use:   "rainbow [flags]",
	Short: "Generate a light-scattering lookup table",
	Args:  cobra.NoArgs,
	RunE:  runRainbow,
}

func init() {
	rainbowCmd.Flags().String("config", "", "TOML file with generator parameters")
	rainbowCmd.Flags().StringP("output", "o", "rainbow.bin", "output LUT file")
	rainbowCmd.Flags().Uint32("lut", 0, "LUT size (overrides config)")
	rainbowCmd.Flags().Uint32("samples", 0, "samples per wavelength (overrides config)")
	rainbowCmd.Flags().Uint64("seed", 0, "RNG seed")
}

// rainbowConfig mirrors the optional TOML parameter file.
type rainbowConfig struct {
	LUT          uint32  `toml:"lut"`
	Samples      uint32  `toml:"samples"`
	Cosine       bool    `toml:"cosine"`
	MinDeviation float64 `toml:"min_deviation_deg"`
	MaxDeviation float64 `toml:"max_deviation_deg"`
	Temperature  float64 `toml:"temperature"`
	SunArc       float64 `toml:"sun_arc_deg"`
}

func runRainbow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	gen := rainbow.New()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if configPath != "" {
		var cfg rainbowConfig
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return fmt.Errorf("rainbow: config: %w", err)
		}
		if cfg.LUT != 0 {
			gen.LUT(cfg.LUT)
		}
		if cfg.Samples != 0 {
			gen.Samples(cfg.Samples)
		}
		gen.Cosine(cfg.Cosine)
		if cfg.MinDeviation != 0 {
			gen.MinDeviation(cfg.MinDeviation * math.Pi / 180)
		}
		if cfg.MaxDeviation != 0 {
			gen.MaxDeviation(cfg.MaxDeviation * math.Pi / 180)
		}
		if cfg.Temperature != 0 {
			gen.Temperature(cfg.Temperature)
		}
		if cfg.SunArc != 0 {
			gen.SunArc(cfg.SunArc * math.Pi / 180)
		}
	}

	if lut, err := cmd.Flags().GetUint32("lut"); err != nil {
		return err
	} else if lut != 0 {
		gen.LUT(lut)
	}
	if samples, err := cmd.Flags().GetUint32("samples"); err != nil {
		return err
	} else if samples != 0 {
		gen.Samples(samples)
	}
	if seed, err := cmd.Flags().GetUint64("seed"); err != nil {
		return err
	} else {
		gen.Seed(seed)
	}

	table, err := gen.Build(cmd.Context())
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	data, err := encodeRainbow(table)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d entries, scale %g)\n", output, len(table.Data), table.Scale)
	}
	return nil
}

// encodeRainbow lays the LUT out as a small header followed by little-endian
// float32 RGB triplets.
func encodeRainbow(r *rainbow.Rainbow) ([]byte, error) {
	if r == nil {
		return nil, errors.New("rainbow: nil table")
	}
	buf := make([]byte, 0, 4+4+12+len(r.Data)*12)
	buf = append(buf, 'R', 'B', 'O', 'W')
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(r.Data)))
	for _, v := range [3]float64{r.S, r.O, r.Scale} {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v)))
	}
	for _, c := range r.Data {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(c.R)))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(c.G)))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(c.B)))
	}
	return buf, nil
}
