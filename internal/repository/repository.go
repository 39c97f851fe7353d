package repository

import (
	"context"
	"errors"

	"minerva-site/internal/models"
)

var (
	// ErrCorruptDocument: el contenido guardado no se pudo interpretar; se usó el documento por defecto.
	ErrCorruptDocument = errors.New("corrupt content document")
	// ErrCorruptSection: una sección tenía una forma inválida y se reemplazó por su valor por defecto.
	ErrCorruptSection = errors.New("corrupt content section")
	// ErrUnreadableDocument: el almacenamiento existe pero no se pudo leer.
	ErrUnreadableDocument = errors.New("unreadable content document")
	ErrWriteDocument      = errors.New("could not write content document")
)

// DocumentRepository persiste el documento completo. Load nunca devuelve un documento nil:
// ante un error recuperable devuelve el documento por defecto junto con el error.
type DocumentRepository interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}

// IsRecoverable indica si el error de Load dejó igualmente un documento usable
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrCorruptDocument) ||
		errors.Is(err, ErrCorruptSection) ||
		errors.Is(err, ErrUnreadableDocument)
}
