package clinics

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

type ClinicMongoRepository struct {
	Collection *mongo.Collection
}

func NewClinicMongoRepository(client *mongo.Client, dbName string) contracts.ClinicRepository {
	return &ClinicMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionClinics),
	}
}

func (r *ClinicMongoRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	objectID, err := primitive.ObjectIDFromHex(clinicID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var clinic models.Clinic
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&clinic)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &clinic, nil
}

func (r *ClinicMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Clinic, int, error) {
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

	clinics := make([]models.Clinic, 0, pageSize)
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return clinics, int(total), nil
}
