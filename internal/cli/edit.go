package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// editOpts holds the command-line flags for the edit command.
type editOpts struct {
	setupFlags
	output string
}

// editCommand creates the edit command, a terminal version of the web form.
func (c *CLI) editCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a building section interactively in the terminal",
		Long: `Edit a building section interactively in the terminal.

Move over the grid with the arrow keys. Enter on a floor label asks for the
floor's apartment count; enter on an apartment asks for its label. Press w
to write the diagram as SVG.`,
		Example: `  daireno edit --floors 4 --basements 1 --apartments 3 -o blok.svg`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", appName+".svg", "SVG file written by the w key")

	return cmd
}

func (c *CLI) runEdit(ctx context.Context, opts *editOpts) error {
	e := c.newEditor(&opts.setupFlags)
	if err := e.Generate(ctx, opts.setup(c.cfg)); err != nil {
		return err
	}

	final, err := tea.NewProgram(newEditModel(ctx, e, opts.output), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}

	m := final.(editModel)
	fmt.Println(sectionTable(e.Section()))
	printInfo("%s", floorSummary(e.Section()))
	if len(m.saved) == 0 {
		printWarning("Diagram not written")
		printNextStep("Render it", "daireno render -f svg,png")
		return nil
	}
	printSuccess("Diagram written")
	printFile(m.saved[len(m.saved)-1])
	return nil
}
