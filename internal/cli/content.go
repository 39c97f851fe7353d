package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"minerva-site/internal/models"
	"minerva-site/internal/services"
)

// deleteAtCommand arma el subcomando "delete <index>" de las secciones posicionales
func (a *app) deleteAtCommand(what string, del func(ctx context.Context, svc *services.ContentService, index int) error) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete a " + what + " by position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				if err := del(ctx, svc, index); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s #%d\n", what, index)
				return nil
			})
		},
	}
}

func (a *app) newNewsCommand() *cobra.Command {
	newsCmd := &cobra.Command{
		Use:   "news",
		Short: "Manage news entries",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a news entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := models.NewsInput{}
			in.Title, _ = cmd.Flags().GetString("titulo")
			in.Content, _ = cmd.Flags().GetString("contenido")
			in.Date, _ = cmd.Flags().GetString("fecha")
			in.Image, _ = cmd.Flags().GetString("imagen")
			if err := models.Validate(in); err != nil {
				return fmt.Errorf("titulo and contenido are required: %w", err)
			}

			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				item, err := svc.AddNews(ctx, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "News added: %s (%s)\n", item.Title, item.Date)
				return nil
			})
		},
	}
	addCmd.Flags().String("titulo", "", "Title")
	addCmd.Flags().String("contenido", "", "Content (markdown)")
	addCmd.Flags().String("fecha", "", "Date as shown")
	addCmd.Flags().String("imagen", "", "Image URL or asset path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List news entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				for i, n := range svc.Document(ctx).News {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", i, n.Date, n.Title)
				}
				return nil
			})
		},
	}

	newsCmd.AddCommand(addCmd, listCmd, a.deleteAtCommand("news entry", func(ctx context.Context, svc *services.ContentService, index int) error {
		return svc.DeleteNews(ctx, index)
	}))
	return newsCmd
}

func (a *app) newTestimonialCommand() *cobra.Command {
	testimonialCmd := &cobra.Command{
		Use:   "testimonial",
		Short: "Manage customer testimonials",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a testimonial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := models.TestimonialInput{}
			in.Name, _ = cmd.Flags().GetString("name")
			in.City, _ = cmd.Flags().GetString("city")
			in.Quote, _ = cmd.Flags().GetString("quote")
			in.Image, _ = cmd.Flags().GetString("image")
			if err := models.Validate(in); err != nil {
				return fmt.Errorf("name and quote are required: %w", err)
			}

			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				t, err := svc.AddTestimonial(ctx, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Testimonial added: %s\n", t.Name)
				return nil
			})
		},
	}
	addCmd.Flags().String("name", "", "Customer name")
	addCmd.Flags().String("city", "", "Customer city")
	addCmd.Flags().String("quote", "", "Testimonial text")
	addCmd.Flags().String("image", "", "Photo URL or asset path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List testimonials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				for i, t := range svc.Document(ctx).Testimonials {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", i, t.Name, t.Quote)
				}
				return nil
			})
		},
	}

	testimonialCmd.AddCommand(addCmd, listCmd, a.deleteAtCommand("testimonial", func(ctx context.Context, svc *services.ContentService, index int) error {
		return svc.DeleteTestimonial(ctx, index)
	}))
	return testimonialCmd
}

func (a *app) newFAQCommand() *cobra.Command {
	faqCmd := &cobra.Command{
		Use:   "faq",
		Short: "Manage frequently asked questions",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := models.FAQInput{}
			in.Question, _ = cmd.Flags().GetString("question")
			in.Answer, _ = cmd.Flags().GetString("answer")
			if err := models.Validate(in); err != nil {
				return fmt.Errorf("question and answer are required: %w", err)
			}

			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				faq, err := svc.AddFAQ(ctx, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "FAQ added: %s\n", faq.Question)
				return nil
			})
		},
	}
	addCmd.Flags().String("question", "", "Question")
	addCmd.Flags().String("answer", "", "Answer (markdown)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				for i, f := range svc.Document(ctx).FAQs {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, f.Question)
				}
				return nil
			})
		},
	}

	faqCmd.AddCommand(addCmd, listCmd, a.deleteAtCommand("faq", func(ctx context.Context, svc *services.ContentService, index int) error {
		return svc.DeleteFAQ(ctx, index)
	}))
	return faqCmd
}
