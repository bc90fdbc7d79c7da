package cli

import (
	"github.com/spf13/cobra"

	"github.com/boxforge/boxforge/pkg/preset"
)

// presetsCommand lists the built-in presets and what they configure.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in box presets",
		Long: `List the built-in presets available to 'generate --preset'.

A preset is a partial configuration; any flag passed alongside --preset
overrides the preset's value for that field.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo("Built-in presets")
			for _, name := range preset.Names() {
				printKeyValue(name, preset.Describe(name))
			}
			printNextStep("Use a preset", "boxforge generate --preset parts-tray")
			return nil
		},
	}
}
