package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minerva-site/internal/logger"
	"minerva-site/internal/models"
	"minerva-site/internal/repository"
)

func newFileService(t *testing.T) (*ContentService, *repository.FileRepository) {
	t.Helper()
	repo := repository.NewFileRepository(filepath.Join(t.TempDir(), "data.json"))
	return NewContentService(repo, logger.NewNop()), repo
}

// failingRepository carga bien pero no puede guardar
type failingRepository struct {
	doc *models.Document
}

func (r *failingRepository) Load(context.Context) (*models.Document, error) {
	return r.doc, nil
}

func (r *failingRepository) Save(context.Context, *models.Document) error {
	return repository.ErrWriteDocument
}

func TestAddProductPersists(t *testing.T) {
	svc, repo := newFileService(t)
	ctx := context.Background()

	p, err := svc.AddProduct(ctx, models.ProductInput{Name: "Shampoo", Price: "$100", Description: "x"})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Products, 1)
	assert.Equal(t, p, doc.Products[0])
}

func TestEditProductKeepsIdentity(t *testing.T) {
	svc, _ := newFileService(t)
	ctx := context.Background()

	a, err := svc.AddProduct(ctx, models.ProductInput{Name: "A", Price: "1", Description: "a"})
	require.NoError(t, err)
	b, err := svc.AddProduct(ctx, models.ProductInput{Name: "B", Price: "2", Description: "b"})
	require.NoError(t, err)

	name := "A+"
	edited, err := svc.EditProduct(ctx, a.ID, models.ProductUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, a.ID, edited.ID)

	doc := svc.Document(ctx)
	assert.Equal(t, []string{a.ID, b.ID}, []string{doc.Products[0].ID, doc.Products[1].ID})
	assert.Equal(t, "A+", doc.Products[0].Name)

	_, err = svc.EditProduct(ctx, "missing", models.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, models.ErrProductNotFound)
	assert.ErrorIs(t, svc.DeleteProduct(ctx, "missing"), models.ErrProductNotFound)
}

func TestOnChangeFiresOnlyAfterSave(t *testing.T) {
	svc, _ := newFileService(t)
	ctx := context.Background()

	calls := 0
	svc.OnChange(func() { calls++ })

	_, err := svc.AddNavItem(ctx, "Ofertas")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = svc.AddNavItem(ctx, "Ofertas")
	assert.ErrorIs(t, err, models.ErrDuplicateNavItem)
	assert.Equal(t, 1, calls)
}

func TestNavOperations(t *testing.T) {
	svc, _ := newFileService(t)
	ctx := context.Background()

	menu, err := svc.MoveNavItem(ctx, 0, models.Up)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultNavMenu, menu)

	last := len(models.DefaultNavMenu) - 1
	menu, err = svc.MoveNavItem(ctx, last, models.Down)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultNavMenu, menu)

	menu, err = svc.MoveNavItem(ctx, 0, models.Down)
	require.NoError(t, err)
	assert.Equal(t, []string{"Peluquería", "Inicio"}, menu[:2])

	menu, err = svc.RemoveNavItem(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Inicio", menu[0])
	assert.Len(t, svc.Document(ctx).NavMenu, len(models.DefaultNavMenu)-1)
}

func TestPositionalSections(t *testing.T) {
	svc, _ := newFileService(t)
	ctx := context.Background()

	news, err := svc.AddNews(ctx, models.NewsInput{Title: "Expo", Content: "Gracias"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultNewsDate, news.Date)

	_, err = svc.AddTestimonial(ctx, models.TestimonialInput{Name: "Sofía", Quote: "Brillo"})
	require.NoError(t, err)
	_, err = svc.AddFAQ(ctx, models.FAQInput{Question: "¿Envíos?", Answer: "Sí"})
	require.NoError(t, err)

	doc := svc.Document(ctx)
	assert.Len(t, doc.News, 1)
	assert.Len(t, doc.Testimonials, 1)
	assert.Len(t, doc.FAQs, 1)

	require.NoError(t, svc.DeleteNews(ctx, 0))
	require.NoError(t, svc.DeleteTestimonial(ctx, 0))
	assert.ErrorIs(t, svc.DeleteFAQ(ctx, 3), models.ErrIndexOutOfRange)
	require.NoError(t, svc.DeleteFAQ(ctx, 0))

	doc = svc.Document(ctx)
	assert.Empty(t, doc.News)
	assert.Empty(t, doc.Testimonials)
	assert.Empty(t, doc.FAQs)
}

func TestBannerOperations(t *testing.T) {
	svc, _ := newFileService(t)
	ctx := context.Background()

	b, err := svc.AddBanner(ctx, models.BannerInput{Image: "images/banner_principal1.jpg"})
	require.NoError(t, err)

	img := "images/banner_principal2.jpg"
	edited, err := svc.EditBanner(ctx, b.ID, models.BannerUpdate{Image: &img})
	require.NoError(t, err)
	assert.Equal(t, b.ID, edited.ID)
	assert.Equal(t, img, edited.Image)

	require.NoError(t, svc.DeleteBanner(ctx, b.ID))
	assert.ErrorIs(t, svc.DeleteBanner(ctx, b.ID), models.ErrBannerNotFound)
}

func TestSetTextFields(t *testing.T) {
	svc, _ := newFileService(t)
	ctx := context.Background()

	fields, err := svc.SetTextFields(ctx, models.SectionContactInfo, map[string]string{"phone": "123", "email": "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"phone": "123", "email": "a@b.c"}, fields)

	fields, err = svc.SetTextField(ctx, models.SectionContactInfo, "phone", "456")
	require.NoError(t, err)
	assert.Equal(t, "456", fields["phone"])
	assert.Equal(t, "a@b.c", fields["email"])

	_, err = svc.SetTextFields(ctx, models.SectionNavMenu, map[string]string{})
	assert.ErrorIs(t, err, models.ErrNotTextSection)
}

func TestSaveFailureIsReported(t *testing.T) {
	repo := &failingRepository{doc: models.NewDefaultDocument()}
	svc := NewContentService(repo, logger.NewNop())

	calls := 0
	svc.OnChange(func() { calls++ })

	_, err := svc.AddProduct(context.Background(), models.ProductInput{Name: "A", Price: "1", Description: "a"})
	assert.True(t, errors.Is(err, repository.ErrWriteDocument))
	assert.Equal(t, 0, calls)
}

func TestInitWritesBackfilledDocument(t *testing.T) {
	svc, repo := newFileService(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte(`{"nav_menu": ["Inicio"]}`), 0o644))

	doc, err := svc.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Inicio"}, doc.NavMenu)

	data, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	for _, s := range models.Sections() {
		assert.Contains(t, string(data), `"`+string(s)+`"`)
	}
}

func TestDocumentSurvivesCorruptFile(t *testing.T) {
	svc, repo := newFileService(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte(`{broken`), 0o644))

	doc := svc.Document(context.Background())
	assert.Equal(t, models.NewDefaultDocument(), doc)
}

// unreadableRepository simula un almacenamiento caído
type unreadableRepository struct {
	saves int
}

func (r *unreadableRepository) Load(context.Context) (*models.Document, error) {
	return models.NewDefaultDocument(), repository.ErrUnreadableDocument
}

func (r *unreadableRepository) Save(context.Context, *models.Document) error {
	r.saves++
	return nil
}

func TestUpdateAbortsOnUnreadableStore(t *testing.T) {
	repo := &unreadableRepository{}
	svc := NewContentService(repo, logger.NewNop())

	_, err := svc.AddNavItem(context.Background(), "Ofertas")
	assert.ErrorIs(t, err, repository.ErrUnreadableDocument)
	assert.Zero(t, repo.saves)

	doc := svc.Document(context.Background())
	assert.Equal(t, models.DefaultNavMenu, doc.NavMenu)
}
