package handlers

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ImagesMount es la ruta donde se publica el directorio de imágenes
const ImagesMount = "/images"

// assetPrefix es como aparecen las imágenes locales en el documento ("images/logo.png")
const assetPrefix = "images/"

// ImageResolver convierte los campos de imagen del documento en URLs servibles.
// Las URLs absolutas y data: se dejan igual. Las rutas locales bajo images/ se buscan
// en el directorio de imágenes y se publican bajo ImagesMount si el archivo existe;
// cualquier otra cosa usa el placeholder.
type ImageResolver struct {
	assetDir    string
	placeholder string
}

func NewImageResolver(assetDir, placeholder string) *ImageResolver {
	return &ImageResolver{assetDir: assetDir, placeholder: placeholder}
}

func (r *ImageResolver) Resolve(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return r.placeholder
	}

	lower := strings.ToLower(src)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "data:") {
		return src
	}
	if r.assetDir == "" {
		return r.placeholder
	}

	clean := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(src)), "/")
	rel, ok := strings.CutPrefix(clean, assetPrefix)
	if !ok || rel == "" {
		return r.placeholder
	}

	info, err := os.Stat(filepath.Join(r.assetDir, filepath.FromSlash(rel)))
	if err != nil || info.IsDir() {
		return r.placeholder
	}
	return ImagesMount + "/" + rel
}
