package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"minerva-site/internal/models"
	"minerva-site/internal/services"
)

var errNothingToUpdate = errors.New("no fields to update")

func (a *app) newProductCommand() *cobra.Command {
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Manage catalog products",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := models.ProductInput{}
			in.Name, _ = cmd.Flags().GetString("nombre")
			in.Description, _ = cmd.Flags().GetString("descripcion")
			in.Price, _ = cmd.Flags().GetString("precio")
			in.Image, _ = cmd.Flags().GetString("imagen")
			in.Details, _ = cmd.Flags().GetString("detalles")
			if err := models.Validate(in); err != nil {
				return fmt.Errorf("nombre, descripcion and precio are required: %w", err)
			}

			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				product, err := svc.AddProduct(ctx, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Product added: %s (%s)\n", product.Name, product.ID)
				return nil
			})
		},
	}
	productFlags(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a product; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := models.ProductUpdate{
				Name:        stringFlag(cmd, "nombre"),
				Description: stringFlag(cmd, "descripcion"),
				Price:       stringFlag(cmd, "precio"),
				Image:       stringFlag(cmd, "imagen"),
				Details:     stringFlag(cmd, "detalles"),
			}
			if update.IsEmpty() {
				return errNothingToUpdate
			}
			if err := models.Validate(update); err != nil {
				return err
			}

			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				product, err := svc.EditProduct(ctx, args[0], update)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Product updated: %s (%s)\n", product.Name, product.ID)
				return nil
			})
		},
	}
	productFlags(editCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				if err := svc.DeleteProduct(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Product deleted: %s\n", args[0])
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				for _, p := range svc.Document(ctx).Products {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.ID, p.Name, p.Price)
				}
				return nil
			})
		},
	}

	productCmd.AddCommand(addCmd, editCmd, deleteCmd, listCmd)
	return productCmd
}

func productFlags(cmd *cobra.Command) {
	cmd.Flags().String("nombre", "", "Product name")
	cmd.Flags().String("descripcion", "", "Short description")
	cmd.Flags().String("precio", "", "Price as shown, e.g. \"AR$ 3.500\"")
	cmd.Flags().String("imagen", "", "Image URL or asset path")
	cmd.Flags().String("detalles", "", "Long details")
}

func (a *app) newBannerCommand() *cobra.Command {
	bannerCmd := &cobra.Command{
		Use:   "banner",
		Short: "Manage home banners",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := models.BannerInput{}
			in.Image, _ = cmd.Flags().GetString("img")
			in.Title, _ = cmd.Flags().GetString("title")
			in.Text, _ = cmd.Flags().GetString("text")
			in.Link, _ = cmd.Flags().GetString("link")
			if err := models.Validate(in); err != nil {
				return fmt.Errorf("img is required: %w", err)
			}

			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				banner, err := svc.AddBanner(ctx, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Banner added: %s\n", banner.ID)
				return nil
			})
		},
	}
	bannerFlags(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a banner; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := models.BannerUpdate{
				Image: stringFlag(cmd, "img"),
				Title: stringFlag(cmd, "title"),
				Text:  stringFlag(cmd, "text"),
				Link:  stringFlag(cmd, "link"),
			}
			if update.IsEmpty() {
				return errNothingToUpdate
			}
			if err := models.Validate(update); err != nil {
				return err
			}

			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				banner, err := svc.EditBanner(ctx, args[0], update)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Banner updated: %s\n", banner.ID)
				return nil
			})
		},
	}
	bannerFlags(editCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				if err := svc.DeleteBanner(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Banner deleted: %s\n", args[0])
				return nil
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List banners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				for _, b := range svc.Document(ctx).Banners {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", b.ID, b.Image, b.Title)
				}
				return nil
			})
		},
	}

	bannerCmd.AddCommand(addCmd, editCmd, deleteCmd, listCmd)
	return bannerCmd
}

func bannerFlags(cmd *cobra.Command) {
	cmd.Flags().String("img", "", "Image URL or asset path")
	cmd.Flags().String("title", "", "Overlay title")
	cmd.Flags().String("text", "", "Overlay text")
	cmd.Flags().String("link", "", "Target link")
}
