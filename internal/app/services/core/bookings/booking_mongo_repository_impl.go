package bookings

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

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(client *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var booking models.Booking
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Booking, int, error) {
	return r.findByFilter(ctx, bson.M{}, page, pageSize)
}

func (r *BookingMongoRepository) FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]models.Booking, int, error) {
	return r.findByFilter(ctx, bson.M{"userId": userID}, page, pageSize)
}

func (r *BookingMongoRepository) findByFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Booking, int, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0, pageSize)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, int(total), nil
}

func (r *BookingMongoRepository) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BookingMongoRepository) Update(ctx context.Context, booking *models.Booking) error {
	objectID, err := primitive.ObjectIDFromHex(booking.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"sessionStatus":        booking.SessionStatus,
		"sessionDates":         booking.SessionDates,
		"sessionPrescriptions": booking.SessionPrescriptions,
		"cancellationReason":   booking.CancellationReason,
		"updatedAt":            booking.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// WithTransaction runs fn in a mongo session transaction. fn receives a
// SessionContext and must thread it through every repository call so the
// reads and the write commit or abort together.
func (r *BookingMongoRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.Collection.Database().Client().StartSession()
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessionContext)
	})
	if err != nil {
		if _, ok := err.(*exceptions.CustomError); ok {
			return err
		}
		return exceptions.ErrMongoDBTransaction(err)
	}
	return nil
}
