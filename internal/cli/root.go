package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"minerva-site/internal/models"
	"minerva-site/internal/services"
)

// Opener arma el servicio de contenido a partir de los flags globales.
// La función devuelta libera los recursos (conexión a Mongo, logger).
type Opener func(ctx context.Context, opts Options) (*services.ContentService, func(), error)

// Options son los flags persistentes del comando raíz
type Options struct {
	ConfigFile string
	DataPath   string
}

type app struct {
	open Opener
	opts Options
}

// NewRootCommand arma el panel de administración por consola
func NewRootCommand(open Opener) *cobra.Command {
	a := &app{open: open}

	rootCmd := &cobra.Command{
		Use:           "minerva-admin",
		Short:         "Minerva site content admin",
		Long:          "Manage the products, banners, news, testimonials, FAQs, menu and texts of the Minerva site.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.opts.ConfigFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.opts.DataPath, "data", "", "content document path (overrides DATA_PATH)")

	rootCmd.AddCommand(a.newInitCommand())
	rootCmd.AddCommand(a.newShowCommand())
	rootCmd.AddCommand(a.newProductCommand())
	rootCmd.AddCommand(a.newBannerCommand())
	rootCmd.AddCommand(a.newNewsCommand())
	rootCmd.AddCommand(a.newTestimonialCommand())
	rootCmd.AddCommand(a.newFAQCommand())
	rootCmd.AddCommand(a.newNavCommand())
	rootCmd.AddCommand(a.newTextCommand())

	return rootCmd
}

// run abre el servicio, ejecuta fn y libera los recursos
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context, svc *services.ContentService) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, closeFn, err := a.open(ctx, a.opts)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(ctx, svc)
}

func (a *app) newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the content document or complete its missing sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				doc, err := svc.Init(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Content document ready: %d products, %d nav items\n", len(doc.Products), len(doc.NavMenu))
				return nil
			})
		},
	}
}

func (a *app) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [section]",
		Short: "Print the content document, or one of its sections, as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc *services.ContentService) error {
				doc := svc.Document(ctx)
				if len(args) == 0 {
					return printJSON(cmd, doc)
				}

				section, ok := models.ParseSection(args[0])
				if !ok {
					return fmt.Errorf("unknown section %q", args[0])
				}
				return printJSON(cmd, sectionValue(doc, section))
			})
		},
	}
}

func sectionValue(doc *models.Document, s models.Section) interface{} {
	switch s {
	case models.SectionProducts:
		return doc.Products
	case models.SectionBanners:
		return doc.Banners
	case models.SectionNews:
		return doc.News
	case models.SectionTestimonials:
		return doc.Testimonials
	case models.SectionNavMenu:
		return doc.NavMenu
	case models.SectionFAQs:
		return doc.FAQs
	}
	return doc.TextFields(s)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

// parseIndex valida un índice posicional
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	return index, nil
}

// stringFlag devuelve un puntero solo si el flag se pasó explícitamente
func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}
