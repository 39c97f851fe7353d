package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minerva-site/internal/logger"
	"minerva-site/internal/models"
	"minerva-site/internal/repository"
	"minerva-site/internal/services"
)

func fileOpener(path string) Opener {
	return func(ctx context.Context, opts Options) (*services.ContentService, func(), error) {
		p := path
		if opts.DataPath != "" {
			p = opts.DataPath
		}
		return services.NewContentService(repository.NewFileRepository(p), logger.NewNop()), func() {}, nil
	}
}

func execute(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(fileOpener(path))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func load(t *testing.T, path string) *models.Document {
	t.Helper()
	doc, err := repository.LoadDocument(path)
	require.NoError(t, err)
	return doc
}

func TestInitCreatesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	out, err := execute(t, path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "9 nav items")
	assert.Equal(t, models.NewDefaultDocument(), load(t, path))
}

func TestProductLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	_, err := execute(t, path, "product", "add", "--nombre", "Shampoo")
	assert.Error(t, err)

	_, err = execute(t, path, "product", "add", "--nombre", "Shampoo", "--descripcion", "Argán", "--precio", "AR$ 3.500")
	require.NoError(t, err)
	doc := load(t, path)
	require.Len(t, doc.Products, 1)
	id := doc.Products[0].ID

	_, err = execute(t, path, "product", "edit", id)
	assert.ErrorIs(t, err, errNothingToUpdate)

	_, err = execute(t, path, "product", "edit", id, "--precio", "AR$ 4.000")
	require.NoError(t, err)
	doc = load(t, path)
	assert.Equal(t, "AR$ 4.000", doc.Products[0].Price)
	assert.Equal(t, "Shampoo", doc.Products[0].Name)
	assert.Equal(t, id, doc.Products[0].ID)

	out, err := execute(t, path, "product", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)

	_, err = execute(t, path, "product", "delete", "nope")
	assert.ErrorIs(t, err, models.ErrProductNotFound)

	_, err = execute(t, path, "product", "delete", id)
	require.NoError(t, err)
	assert.Empty(t, load(t, path).Products)
}

func TestBannerAddRequiresImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	_, err := execute(t, path, "banner", "add", "--title", "Promo")
	assert.Error(t, err)

	_, err = execute(t, path, "banner", "add", "--img", "images/banner_principal1.jpg", "--title", "Promo")
	require.NoError(t, err)

	out, err := execute(t, path, "banner", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "images/banner_principal1.jpg")
}

func TestPositionalCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	_, err := execute(t, path, "news", "add", "--titulo", "Expo", "--contenido", "Gracias")
	require.NoError(t, err)
	_, err = execute(t, path, "testimonial", "add", "--name", "Sofía", "--quote", "Brillo")
	require.NoError(t, err)
	_, err = execute(t, path, "faq", "add", "--question", "¿Envíos?", "--answer", "Sí")
	require.NoError(t, err)

	doc := load(t, path)
	assert.Equal(t, models.DefaultNewsDate, doc.News[0].Date)
	assert.Equal(t, models.DefaultTestimonialImage, doc.Testimonials[0].Image)
	assert.Equal(t, "Sí", doc.FAQs[0].Answer)

	_, err = execute(t, path, "faq", "delete", "4")
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
	_, err = execute(t, path, "news", "delete", "-1")
	assert.Error(t, err)

	for _, section := range []string{"news", "testimonial", "faq"} {
		_, err = execute(t, path, section, "delete", "0")
		require.NoError(t, err, section)
	}
	doc = load(t, path)
	assert.Empty(t, doc.News)
	assert.Empty(t, doc.Testimonials)
	assert.Empty(t, doc.FAQs)
}

func TestNavCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	_, err := execute(t, path, "nav", "add", "Ofertas")
	require.NoError(t, err)
	_, err = execute(t, path, "nav", "add", "Ofertas")
	assert.ErrorIs(t, err, models.ErrDuplicateNavItem)

	out, err := execute(t, path, "nav", "move", "0", "up")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0\tInicio\n"))

	_, err = execute(t, path, "nav", "move", "0", "sideways")
	assert.ErrorIs(t, err, models.ErrInvalidDirection)

	_, err = execute(t, path, "nav", "move", "8", "down")
	require.NoError(t, err)
	menu := load(t, path).NavMenu
	assert.Equal(t, []string{"Ofertas", "Sobre Nosotros"}, menu[8:])

	_, err = execute(t, path, "nav", "remove", "9")
	require.NoError(t, err)
	assert.Equal(t, "Ofertas", load(t, path).NavMenu[8])
}

func TestTextCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	_, err := execute(t, path, "text", "set", "about_us", "mission", "Cuidar tu cabello")
	require.NoError(t, err)
	assert.Equal(t, "Cuidar tu cabello", load(t, path).AboutUs["mission"])

	_, err = execute(t, path, "text", "set", "nav_menu", "x", "y")
	assert.ErrorIs(t, err, models.ErrNotTextSection)

	out, err := execute(t, path, "text", "list", "about_us")
	require.NoError(t, err)
	assert.JSONEq(t, `{"mission": "Cuidar tu cabello"}`, out)
}

func TestShowSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	out, err := execute(t, path, "show", "nav_menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Peluquería")

	_, err = execute(t, path, "show", "footer")
	assert.Error(t, err)

	other := filepath.Join(t.TempDir(), "other.json")
	_, err = execute(t, path, "--data", other, "init")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultNavMenu, load(t, other).NavMenu)
}
