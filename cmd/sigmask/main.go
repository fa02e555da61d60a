package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sigmask "github.com/farah2601/signature-mask-go"
)

// The site ships exactly two signatures; running sigmask with no input flags
// regenerates their white-on-transparent variants in place.
var defaultPairs = [][2]string{
	{"signature-david.png", "signature-david-white.png"},
	{"signature-farax.png", "signature-farax-white.png"},
}

var rootCmd = &cobra.Command{
	Use:   "sigmask",
	Short: "Convert signature scans into white-on-transparent assets",
	Long: `sigmask derives an opacity mask from stroke intensity, crops to the
strokes plus padding, and writes a white silhouette PNG suitable for display
on dark backgrounds.

Examples:
  # Regenerate the two site signature assets
  sigmask

  # Mask a single scan
  sigmask --in scan.png --out scan-white.png

  # Looser crop and a web-friendly width
  sigmask --in scan.png --pad 48 --max-width 640

  # Base64 in, base64 PNG out
  sigmask --in-base64 "$(base64 -w0 scan.png)" --out-base64`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().String("in", "", "input image (png/jpg/gif/webp)")
	rootCmd.Flags().String("out", "", "output PNG path (default: <name>-white.png)")
	rootCmd.Flags().String("in-base64", "", "base64 image input (optionally a data URL)")
	rootCmd.Flags().Bool("out-base64", false, "write the masked PNG as base64 to stdout")
	rootCmd.Flags().String("assets", "assets", "assets directory for the default batch")
	rootCmd.Flags().Int("threshold", 6, "intensity floor below which pixels are fully transparent")
	rootCmd.Flags().Int("gain", 18, "linear multiplier from excess intensity to alpha")
	rootCmd.Flags().Int("pad", 24, "crop margin in pixels around the strokes")
	rootCmd.Flags().Int("max-width", 0, "downscale the result to fit this width (0 = off)")

	viper.SetEnvPrefix("sigmask")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlags(rootCmd.Flags())
}

func options() sigmask.Options {
	opts := sigmask.DefaultOptions()
	opts.Threshold = viper.GetInt("threshold")
	opts.Gain = viper.GetInt("gain")
	opts.Pad = viper.GetInt("pad")
	opts.MaxWidth = viper.GetInt("max-width")
	return opts
}

func run(cmd *cobra.Command, args []string) error {
	opts := options()

	if input := viper.GetString("in-base64"); input != "" {
		return runBase64(input, viper.GetString("out"), opts)
	}

	if input := viper.GetString("in"); input != "" {
		return runFile(input, viper.GetString("out"), opts)
	}

	return runBatch(viper.GetString("assets"), opts)
}

// runBatch regenerates the fixed signature pairs under dir, sequentially. A
// failure aborts the batch; outputs already written stay in place.
func runBatch(dir string, opts sigmask.Options) error {
	for _, pair := range defaultPairs {
		dst := filepath.Join(dir, pair[1])
		info, err := sigmask.ProcessFile(filepath.Join(dir, pair[0]), dst, opts)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%dx%d)\n", dst, info.Width, info.Height)
	}
	return nil
}

func runFile(in, out string, opts sigmask.Options) error {
	if viper.GetBool("out-base64") {
		data, err := os.ReadFile(in)
		if err != nil {
			return fmt.Errorf("read %s: %w", in, err)
		}

		masked, info, err := sigmask.MaskBytes(data, opts)
		if err != nil {
			return err
		}

		fmt.Println(base64.StdEncoding.EncodeToString(masked))
		fmt.Printf("Masked %s -> base64 (%dx%d)\n", in, info.Width, info.Height)
		return nil
	}

	if out == "" {
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		out = filepath.Join(filepath.Dir(in), base+"-white.png")
	}

	info, err := sigmask.ProcessFile(in, out, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%dx%d)\n", out, info.Width, info.Height)
	return nil
}

func runBase64(input, out string, opts sigmask.Options) error {
	encoded, info, err := sigmask.MaskBase64(input, opts)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println(encoded)
		fmt.Printf("Masked base64 -> base64 (%dx%d)\n", info.Width, info.Height)
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode masked output: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", out, info.Width, info.Height)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
