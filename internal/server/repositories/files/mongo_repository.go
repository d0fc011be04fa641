package files

import (
	"context"
	"errors"
	"fmt"

	"github.com/ASLawan/alx-files-manager/internal/common"
	"github.com/ASLawan/alx-files-manager/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "files"

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collectionName)}
}

func (r *MongoRepository) Create(ctx context.Context, node *models.FileNode) (*models.FileNode, error) {
	res, err := r.col.InsertOne(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	node.ID = res.InsertedID.(primitive.ObjectID)
	return node, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.FileNode, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) GetOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.FileNode, error) {
	return r.findOne(ctx, bson.M{"_id": id, "userId": userID})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.FileNode, error) {
	node := &models.FileNode{}
	err := r.col.FindOne(ctx, filter).Decode(node)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return node, nil
}

func (r *MongoRepository) List(ctx context.Context, userID primitive.ObjectID, parentID *primitive.ObjectID, page int64) ([]*models.FileNode, error) {
	if page < 0 {
		page = 0
	}

	// A nil parentID matches root nodes: their documents carry no parentId
	// field, and a nil query value matches absent fields.
	filter := bson.M{"userId": userID, "parentId": parentID}

	opts := options.Find().SetSkip(page * PageSize).SetLimit(PageSize)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cur.Close(ctx)

	nodes := []*models.FileNode{}
	if err := cur.All(ctx, &nodes); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return nodes, nil
}

func (r *MongoRepository) SetVisibility(ctx context.Context, id, userID primitive.ObjectID, isPublic bool) (*models.FileNode, error) {
	node := &models.FileNode{}
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"isPublic": isPublic}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(node)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return node, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
