package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"minerva-site/internal/models"
	"minerva-site/internal/services"
)

func (a *app) newNavCommand() *cobra.Command {
	navCmd := &cobra.Command{
		Use:   "nav",
		Short: "Manage the navigation menu",
	}

	addCmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Append a menu button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := models.NavItemInput{Label: strings.TrimSpace(args[0])}
			if err := models.Validate(in); err != nil {
				return fmt.Errorf("label is required: %w", err)
			}
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				menu, err := svc.AddNavItem(ctx, in.Label)
				if err != nil {
					return err
				}
				printMenu(cmd, menu)
				return nil
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove a menu button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				menu, err := svc.RemoveNavItem(ctx, index)
				if err != nil {
					return err
				}
				printMenu(cmd, menu)
				return nil
			})
		},
	}

	moveCmd := &cobra.Command{
		Use:   "move <index> <up|down>",
		Short: "Swap a menu button with its neighbour",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			dir, err := models.ParseDirection(args[1])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				menu, err := svc.MoveNavItem(ctx, index, dir)
				if err != nil {
					return err
				}
				printMenu(cmd, menu)
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the menu in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				printMenu(cmd, svc.Document(ctx).NavMenu)
				return nil
			})
		},
	}

	navCmd.AddCommand(addCmd, removeCmd, moveCmd, listCmd)
	return navCmd
}

func printMenu(cmd *cobra.Command, menu []string) {
	for i, label := range menu {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, label)
	}
}

func (a *app) newTextCommand() *cobra.Command {
	textCmd := &cobra.Command{
		Use:   "text",
		Short: "Manage free text sections (home_texts, contact_info, about_us, cta_texts)",
	}

	setCmd := &cobra.Command{
		Use:   "set <section> <key> <value>",
		Short: "Set one text field",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := textSection(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				if _, err := svc.SetTextField(ctx, section, args[1], args[2]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s.%s updated\n", section, args[1])
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list <section>",
		Short: "Print the fields of a text section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := textSection(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				return printJSON(cmd, svc.Document(ctx).TextFields(section))
			})
		},
	}

	textCmd.AddCommand(setCmd, listCmd)
	return textCmd
}

func textSection(name string) (models.Section, error) {
	section, ok := models.ParseSection(name)
	if !ok || !section.IsText() {
		return "", fmt.Errorf("%w: %s", models.ErrNotTextSection, name)
	}
	return section, nil
}
