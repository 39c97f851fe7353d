package repository

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"minerva-site/internal/models"
)

var jsonNull = []byte("null")

// decodeDocument interpreta el JSON guardado y completa las secciones que falten.
// Una sección ausente o null toma su valor por defecto; una sección con forma inválida
// también, pero se informa con ErrCorruptSection.
func decodeDocument(data []byte) (*models.Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.NewDefaultDocument(), fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if raw == nil {
		return models.NewDefaultDocument(), fmt.Errorf("%w: top level is null", ErrCorruptDocument)
	}

	doc := models.NewDefaultDocument()
	var errs []error
	for _, s := range models.Sections() {
		value, ok := raw[string(s)]
		if !ok || bytes.Equal(bytes.TrimSpace(value), jsonNull) {
			continue
		}
		if err := json.Unmarshal(value, doc.SectionPtr(s)); err != nil {
			doc.ResetSection(s)
			errs = append(errs, fmt.Errorf("%w %q: %v", ErrCorruptSection, s, err))
		}
	}
	doc.Normalize()

	return doc, errors.Join(errs...)
}

// encodeDocument serializa el documento completo con indentación de 4 espacios,
// sin escapar HTML ni caracteres no ASCII.
func encodeDocument(doc *models.Document) ([]byte, error) {
	normalized := *doc
	normalized.Normalize()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(&normalized); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
