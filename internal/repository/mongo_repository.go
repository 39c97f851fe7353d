package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"minerva-site/internal/models"
)

const siteDocumentID = "site"

// siteRecord es el documento único de la colección
type siteRecord struct {
	ID              string    `bson:"_id"`
	UpdatedAt       time.Time `bson:"updated_at"`
	models.Document `bson:",inline"`
}

// MongoRepository guarda el documento completo como un único registro de MongoDB
type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{
		collection: collection,
	}
}

// Load obtiene el documento. Sin registro devuelve el documento por defecto.
func (r *MongoRepository) Load(ctx context.Context) (*models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	raw, err := r.collection.FindOne(ctx, bson.M{"_id": siteDocumentID}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.NewDefaultDocument(), nil
		}
		return models.NewDefaultDocument(), fmt.Errorf("%w: %w", ErrUnreadableDocument, err)
	}

	return decodeBSONDocument(raw)
}

// Save reemplaza el registro completo (upsert)
func (r *MongoRepository) Save(ctx context.Context, doc *models.Document) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	record := siteRecord{
		ID:        siteDocumentID,
		UpdatedAt: time.Now(),
		Document:  *doc,
	}
	record.Document.Normalize()

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": siteDocumentID},
		record,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}
	return nil
}

// decodeBSONDocument aplica las mismas reglas de completado que decodeDocument
func decodeBSONDocument(raw bson.Raw) (*models.Document, error) {
	if err := raw.Validate(); err != nil {
		return models.NewDefaultDocument(), fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	doc := models.NewDefaultDocument()
	var errs []error
	for _, s := range models.Sections() {
		value, err := raw.LookupErr(string(s))
		if err != nil || value.Type == bson.TypeNull {
			continue
		}
		if err := value.Unmarshal(doc.SectionPtr(s)); err != nil {
			doc.ResetSection(s)
			errs = append(errs, fmt.Errorf("%w %q: %v", ErrCorruptSection, s, err))
		}
	}
	doc.Normalize()

	return doc, errors.Join(errs...)
}
