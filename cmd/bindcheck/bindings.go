package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func bindingsCmd() *cobra.Command {
	var module string
	var kind string
	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "List declared bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBindings(module, kind)
		},
	}
	cmd.Flags().StringVar(&module, "module", "", "Filter by module name")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by binding kind (provision or production)")
	return cmd
}

func runBindings(module, kind string) error {
	_, g, err := loadProject()
	if err != nil {
		return err
	}

	count := 0
	for _, binding := range g.Bindings() {
		if module != "" && binding.Module != module {
			continue
		}
		if kind != "" && string(binding.Kind) != kind {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s\t%s\t%s\t%s\n", binding.Key, binding.Kind, binding.Module, binding.SourceFile)
		count++
	}

	if count == 0 {
		fmt.Fprintln(os.Stdout, "No bindings found.")
	}
	return nil
}
