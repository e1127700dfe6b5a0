package treatments

import (
	"context"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TreatmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewTreatmentMongoRepository(client *mongo.Client, dbName string) contracts.TreatmentRepository {
	return &TreatmentMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionTreatments),
	}
}

func (r *TreatmentMongoRepository) FindByID(ctx context.Context, treatmentID string) (*models.Treatment, error) {
	objectID, err := primitive.ObjectIDFromHex(treatmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var treatment models.Treatment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&treatment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &treatment, nil
}

func (r *TreatmentMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Treatment, int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	treatments := make([]models.Treatment, 0, pageSize)
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return treatments, int(total), nil
}

func (r *TreatmentMongoRepository) Insert(ctx context.Context, treatment *models.Treatment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, treatment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *TreatmentMongoRepository) Update(ctx context.Context, treatment *models.Treatment) error {
	objectID, err := primitive.ObjectIDFromHex(treatment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":            treatment.Name,
		"description":     treatment.Description,
		"pricePerSession": treatment.PricePerSession,
		"durationMinutes": treatment.DurationMinutes,
		"active":          treatment.Active,
		"updatedAt":       treatment.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
