package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"teeforge/internal/applog"
	"teeforge/pkg/preview"
	"teeforge/pkg/raster"
	"teeforge/pkg/script"
	"teeforge/pkg/theme"
)

type layoutFlags struct {
	script string
	image  string
	style  string
	text   string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.script, "script", "s", "", "YAML gesture script to replay")
	cmd.Flags().StringVarP(&f.image, "image", "i", "", "design image (png, jpeg, gif, bmp, tiff, webp, tga)")
	cmd.Flags().StringVar(&f.style, "style", "", "T-shirt style id")
	cmd.Flags().StringVar(&f.text, "text", "", "text lines, separated by \\n")
}

// compose builds a compositor from the config and replays the script.
// Flags override the script's starting image, style and text.
func (c *CLI) compose(cmd *cobra.Command, f *layoutFlags) (*preview.Compositor, error) {
	opts, err := c.Config.PreviewOptions(c.Logger)
	if err != nil {
		return nil, err
	}
	comp := preview.New(opts...)
	if c.Config.Style != "" {
		comp.SetStyle(c.Config.Style)
	}

	s := &script.Script{}
	if f.script != "" {
		if s, err = script.Load(f.script); err != nil {
			return nil, err
		}
	}
	if f.image != "" {
		s.Image = f.image
		if f.script != "" {
			// Flag paths are relative to the working directory.
			if s.Image, err = filepath.Abs(f.image); err != nil {
				return nil, err
			}
		}
	}
	if f.style != "" {
		s.Style = f.style
	}
	if cmd.Flags().Changed("text") {
		s.Text = f.text
	}

	if err := s.Play(comp, nil); err != nil {
		return nil, err
	}
	applog.FromContext(cmd.Context()).Debug("layout composed", "steps", len(s.Steps), "lock", comp.Lock())
	return comp, nil
}

func (c *CLI) renderCommand() *cobra.Command {
	var (
		layout    layoutFlags
		output    string
		format    string
		scale     float64
		themeName string
		noGuides  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a preview to PNG or WebP",
		Long:  `Render lays out an image and text on the selected T-shirt, replaying an optional gesture script, and writes the preview to a file.`,
		Example: `  teeforge render -i logo.png --text "TEAM\nBLUE" -o preview.png
  teeforge render -s layout.yaml -o preview.webp --scale 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := applog.FromContext(cmd.Context())
			progress := applog.StartProgress(logger)

			comp, err := c.compose(cmd, &layout)
			if err != nil {
				return err
			}

			opts, err := c.Config.RenderOptions()
			if err != nil {
				return err
			}
			if scale > 0 {
				opts.Scale = scale
			}
			if themeName != "" {
				if opts.Theme, err = theme.Parse(themeName); err != nil {
					return err
				}
			}
			opts.Guides = !noGuides

			f, err := c.Config.ExportFormat()
			if err != nil {
				return err
			}
			if format != "" {
				if f, err = raster.ParseFormat(format); err != nil {
					return err
				}
			} else {
				f = raster.FormatFor(output, f)
			}

			r, err := raster.NewRenderer(opts)
			if err != nil {
				return err
			}
			scene := comp.Scene()
			img, err := r.Render(scene)
			if err != nil {
				return err
			}

			if dir := filepath.Dir(output); dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}
			if err := raster.WriteFile(output, img, f); err != nil {
				return err
			}
			progress.Done("Rendered preview")

			w := cmd.OutOrStdout()
			printSuccess(w, "Rendered %s", StyleTitle.Render(scene.Style.Name))
			printFile(w, output)
			printKeyValue(w, "size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))
			if scene.Image != nil {
				printKeyValue(w, "transform", scene.Image.CSS)
			}
			printKeyValue(w, "lock", scene.Lock.String())
			return nil
		},
	}

	layout.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "preview.png", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "png or webp (default from extension or config)")
	cmd.Flags().Float64Var(&scale, "scale", 0, "pixel scale (default from config)")
	cmd.Flags().StringVar(&themeName, "theme", "", "light, dark or colorful")
	cmd.Flags().BoolVar(&noGuides, "no-guides", false, "omit the edit outline and lock badge")

	return cmd
}
