package services

import (
	"context"
	"errors"
	"fmt"

	"minerva-site/internal/logger"
	"minerva-site/internal/models"
	"minerva-site/internal/repository"
)

// ContentService expone las operaciones del panel: cada una carga el documento,
// lo modifica en memoria y lo guarda completo. No hay bloqueo: si dos sesiones
// guardan a la vez gana la última.
type ContentService struct {
	repo     repository.DocumentRepository
	log      *logger.Logger
	onChange []func()
}

func NewContentService(repo repository.DocumentRepository, log *logger.Logger) *ContentService {
	return &ContentService{
		repo: repo,
		log:  log.WithComponent("content"),
	}
}

// OnChange registra una función que se llama después de cada guardado exitoso
func (s *ContentService) OnChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

// Document carga el documento. Nunca falla: los errores recuperables se registran
// y se usa el documento por defecto o el completado.
func (s *ContentService) Document(ctx context.Context) *models.Document {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warnw("content document loaded with errors", "error", err)
	}
	return doc
}

func (s *ContentService) update(ctx context.Context, action string, mutate func(doc *models.Document) error) (*models.Document, error) {
	doc, err := s.repo.Load(ctx)
	if errors.Is(err, repository.ErrUnreadableDocument) {
		// nunca se guarda sobre un almacenamiento que no se pudo leer
		s.log.WithError(err).Errorw("content update aborted", "action", action)
		return doc, err
	}
	if err != nil {
		s.log.Warnw("content document loaded with errors", "error", err)
	}

	if err := mutate(doc); err != nil {
		s.log.Debugw("content update rejected", "action", action, "error", err)
		return doc, err
	}

	if err := s.repo.Save(ctx, doc); err != nil {
		s.log.WithError(err).Errorw("could not save content document", "action", action)
		return doc, err
	}

	s.log.Infow("content updated", "action", action)
	for _, fn := range s.onChange {
		fn()
	}
	return doc, nil
}

// Init guarda el documento tal como se carga, con las secciones faltantes completadas
func (s *ContentService) Init(ctx context.Context) (*models.Document, error) {
	return s.update(ctx, "init", func(*models.Document) error { return nil })
}

// --- Productos ---

func (s *ContentService) AddProduct(ctx context.Context, in models.ProductInput) (models.Product, error) {
	var product models.Product
	_, err := s.update(ctx, "add_product", func(doc *models.Document) error {
		product = doc.AddProduct(in)
		return nil
	})
	return product, err
}

func (s *ContentService) EditProduct(ctx context.Context, id string, u models.ProductUpdate) (models.Product, error) {
	var product models.Product
	_, err := s.update(ctx, "edit_product", func(doc *models.Document) (err error) {
		product, err = doc.EditProduct(id, u)
		return err
	})
	return product, err
}

func (s *ContentService) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.update(ctx, "delete_product", func(doc *models.Document) error {
		return doc.DeleteProduct(id)
	})
	return err
}

// --- Banners ---

func (s *ContentService) AddBanner(ctx context.Context, in models.BannerInput) (models.Banner, error) {
	var banner models.Banner
	_, err := s.update(ctx, "add_banner", func(doc *models.Document) error {
		banner = doc.AddBanner(in)
		return nil
	})
	return banner, err
}

func (s *ContentService) EditBanner(ctx context.Context, id string, u models.BannerUpdate) (models.Banner, error) {
	var banner models.Banner
	_, err := s.update(ctx, "edit_banner", func(doc *models.Document) (err error) {
		banner, err = doc.EditBanner(id, u)
		return err
	})
	return banner, err
}

func (s *ContentService) DeleteBanner(ctx context.Context, id string) error {
	_, err := s.update(ctx, "delete_banner", func(doc *models.Document) error {
		return doc.DeleteBanner(id)
	})
	return err
}

// --- Novedades, testimonios y FAQs ---

func (s *ContentService) AddNews(ctx context.Context, in models.NewsInput) (models.NewsItem, error) {
	item := in.NewsItem()
	_, err := s.update(ctx, "add_news", func(doc *models.Document) error {
		doc.AddNews(item)
		return nil
	})
	return item, err
}

func (s *ContentService) DeleteNews(ctx context.Context, index int) error {
	_, err := s.update(ctx, "delete_news", func(doc *models.Document) error {
		return doc.DeleteNews(index)
	})
	return err
}

func (s *ContentService) AddTestimonial(ctx context.Context, in models.TestimonialInput) (models.Testimonial, error) {
	t := in.Testimonial()
	_, err := s.update(ctx, "add_testimonial", func(doc *models.Document) error {
		doc.AddTestimonial(t)
		return nil
	})
	return t, err
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, index int) error {
	_, err := s.update(ctx, "delete_testimonial", func(doc *models.Document) error {
		return doc.DeleteTestimonial(index)
	})
	return err
}

func (s *ContentService) AddFAQ(ctx context.Context, in models.FAQInput) (models.FAQ, error) {
	faq := models.FAQ{Question: in.Question, Answer: in.Answer}
	_, err := s.update(ctx, "add_faq", func(doc *models.Document) error {
		doc.AddFAQ(faq)
		return nil
	})
	return faq, err
}

func (s *ContentService) DeleteFAQ(ctx context.Context, index int) error {
	_, err := s.update(ctx, "delete_faq", func(doc *models.Document) error {
		return doc.DeleteFAQ(index)
	})
	return err
}

// --- Menú ---

func (s *ContentService) AddNavItem(ctx context.Context, label string) ([]string, error) {
	doc, err := s.update(ctx, "add_nav_item", func(doc *models.Document) error {
		return doc.AddNavItem(label)
	})
	return doc.NavMenu, err
}

func (s *ContentService) RemoveNavItem(ctx context.Context, index int) ([]string, error) {
	doc, err := s.update(ctx, "remove_nav_item", func(doc *models.Document) error {
		return doc.RemoveNavItem(index)
	})
	return doc.NavMenu, err
}

// MoveNavItem mueve un botón. Un movimiento fuera de rango no es error.
func (s *ContentService) MoveNavItem(ctx context.Context, index int, dir models.Direction) ([]string, error) {
	doc, err := s.update(ctx, "move_nav_item", func(doc *models.Document) error {
		doc.MoveNavItem(index, dir)
		return nil
	})
	return doc.NavMenu, err
}

// --- Textos ---

func (s *ContentService) SetTextField(ctx context.Context, section models.Section, key, value string) (map[string]string, error) {
	return s.SetTextFields(ctx, section, map[string]string{key: value})
}

// SetTextFields hace upsert de varias claves con un solo guardado
func (s *ContentService) SetTextFields(ctx context.Context, section models.Section, fields map[string]string) (map[string]string, error) {
	doc, err := s.update(ctx, "set_text_fields", func(doc *models.Document) error {
		if !section.IsText() {
			return fmt.Errorf("%w: %s", models.ErrNotTextSection, section)
		}
		for key, value := range fields {
			if err := doc.SetTextField(section, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	return doc.TextFields(section), err
}
