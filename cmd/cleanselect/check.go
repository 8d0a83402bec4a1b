package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cleanselect/internal/config"
)

func newCheckCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a form file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := config.LoadForm(path)
			if err != nil {
				return err
			}
			// Resolve every field's settings the way run does, so a bad
			// theme fails here rather than at startup.
			for i, f := range form.Fields {
				if _, err := config.FromAttributes(form.FieldSettings(i).Attributes()); err != nil {
					return fmt.Errorf("field %q: %w", f.Name, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d fields)\n", path, len(form.Fields))
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "form", "f", "", "path to the TOML form file (required)")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}
