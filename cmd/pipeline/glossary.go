package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func glossaryCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glossary",
		Short: "Manage the glossary and acronym suggestions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sort",
		Short: "Rewrite the glossary with sorted keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if err := newStore(cfg).Sort(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sorted %s\n", cfg.Paths.Glossary)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "promote TERM REPLACEMENT",
		Short: "Add a term to the glossary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if err := newStore(cfg).Promote(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s → %s\n", args[0], args[1])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "ignore TERM",
		Short: "Stop reporting a term as an unknown acronym",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if err := newStore(cfg).Ignore(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ignoring %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "suggestions",
		Short: "List unknown acronyms, most frequent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			suggestions, err := newStore(cfg).Suggestions()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				fmt.Fprintln(out, "No pending suggestions.")
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintf(out, "%-8s %d\n", s.Term, s.Count)
			}
			return nil
		},
	})

	return cmd
}
