package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"minerva-site/internal/models"
)

// LoadDocument lee el documento desde path.
// Si el archivo no existe devuelve el documento por defecto sin error.
// Si no se puede leer o interpretar devuelve el documento por defecto y un error recuperable.
func LoadDocument(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewDefaultDocument(), nil
		}
		return models.NewDefaultDocument(), fmt.Errorf("%w: %w", ErrUnreadableDocument, err)
	}
	return decodeDocument(data)
}

// SaveDocument reemplaza el contenido de path con el documento completo.
// Escribe en un archivo temporal del mismo directorio y lo renombra, así una lectura
// concurrente nunca ve un archivo a medio escribir.
func SaveDocument(path string, doc *models.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FileRepository guarda el documento en un archivo JSON
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path devuelve la ruta del archivo de datos
func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Load(_ context.Context) (*models.Document, error) {
	return LoadDocument(r.path)
}

func (r *FileRepository) Save(_ context.Context, doc *models.Document) error {
	return SaveDocument(r.path, doc)
}
