package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"teeforge/internal/applog"
	"teeforge/pkg/form"
)

func (c *CLI) submitCommand() *cobra.Command {
	var (
		layout layoutFlags
		height string
		weight string
		build  string
	)
	defaults := form.Defaults()

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate measurements and print the order payload as JSON",
		Example: `  teeforge submit --height 180 --weight 80 --build athletic -i logo.png
  teeforge submit -s layout.yaml --build lean`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := c.compose(cmd, &layout)
			if err != nil {
				return err
			}

			m, err := form.Parse(height, weight, build, comp.Text())
			if err != nil {
				return reportInvalid(cmd, err)
			}
			p, err := comp.Submit(m)
			if err != nil {
				return reportInvalid(cmd, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	}

	layout.register(cmd)
	cmd.Flags().StringVar(&height, "height", fmt.Sprint(defaults.HeightCM), "height in cm (100-250)")
	cmd.Flags().StringVar(&weight, "weight", fmt.Sprint(defaults.WeightKG), "weight in kg (30-200)")
	cmd.Flags().StringVar(&build, "build", defaults.Build, "lean, regular, athletic or big")

	return cmd
}

// reportInvalid prints each field error and returns a summary error.
func reportInvalid(cmd *cobra.Command, err error) error {
	var errs form.Errors
	if !errors.As(err, &errs) {
		return err
	}
	for _, fe := range errs {
		printError(cmd.ErrOrStderr(), "%s", fe.Message)
	}
	applog.FromContext(cmd.Context()).Debug("submit rejected", "fields", len(errs))
	return fmt.Errorf("%d invalid field(s)", len(errs))
}
