package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the available T-shirt styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.Config.LoadCatalog()
			if err != nil {
				return err
			}

			def := cat.Resolve(c.Config.Style).ID
			var rows [][]string
			for _, s := range cat.Styles() {
				mark := ""
				if s.ID == def {
					mark = "•"
				}
				rows = append(rows, []string{mark, s.ID, s.Name, s.PriceLabel(), s.Silhouette})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				Headers("", "ID", "Name", "Price", "Cut").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == table.HeaderRow:
						return styleHeader
					case col == 3:
						return StyleNumber
					case col == 0:
						return styleIconSuccess
					}
					return lipgloss.NewStyle()
				})

			w := cmd.OutOrStdout()
			if c.Config.Catalog != "" {
				printInfo(w, "Catalog %s", c.Config.Catalog)
			}
			fmt.Fprintln(w, t.Render())
			return nil
		},
	}
}
