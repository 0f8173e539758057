// Package mongodb stores users and products as MongoDB documents. Wish list,
// cart, orders and reviews are embedded arrays of their parent document.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
)

const (
	usersCollection    = "users"
	productsCollection = "products"
)

type Store struct {
	client   *mongo.Client
	users    *userRepository
	products *productRepository
}

// Connect dials uri, verifies the connection and makes sure the identity
// indexes exist.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w: %w", repository.ErrStoreUnavailable, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w: %w", repository.ErrStoreUnavailable, err)
	}

	db := client.Database(database)
	s := &Store{
		client:   client,
		users:    &userRepository{coll: db.Collection(usersCollection)},
		products: &productRepository{coll: db.Collection(productsCollection)},
	}
	if err := s.users.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	log.Printf("✅ Connected to MongoDB database %q", database)
	return s, nil
}

func (s *Store) Users() repository.UserRepository       { return s.users }
func (s *Store) Products() repository.ProductRepository { return s.products }

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping: %w: %w", repository.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// wrap maps driver errors onto the repository sentinels.
func wrap(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, repository.ErrDuplicateIdentity)
	default:
		return fmt.Errorf("%s: %w: %w", op, repository.ErrStoreUnavailable, err)
	}
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

type userRepository struct {
	coll *mongo.Collection
}

// ensureIndexes creates one unique sparse index per identity field. Users
// that never set a field omit it, so sparse indexes ignore them.
func (r *userRepository) ensureIndexes(ctx context.Context) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		}
	}
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique("username"),
		unique("googleId"),
		unique("facebookId"),
	})
	if err != nil {
		return wrap("create user indexes", err)
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, wrap("find user "+id, err)
	}
	return &u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		return nil, wrap("find username", err)
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = newID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return wrap("insert user", err)
	}
	return nil
}

// UpsertExternal runs a single find-or-insert against the identity index.
// Two concurrent upserts for a new identity can both miss the filter; the
// loser hits the unique index and retries once, which then finds the winner.
func (r *userRepository) UpsertExternal(ctx context.Context, provider models.Provider, externalID, displayName string) (*models.User, error) {
	field, ok := models.ExternalIDField(provider)
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", provider)
	}

	filter := bson.M{field: externalID}
	update := bson.M{"$setOnInsert": bson.M{
		"_id":       newID(),
		"profile":   models.Profile{Name: displayName},
		"wishList":  bson.A{},
		"cart":      bson.A{},
		"orders":    bson.A{},
		"createdAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var u models.User
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&u)
	if mongo.IsDuplicateKeyError(err) {
		err = r.coll.FindOne(ctx, filter).Decode(&u)
	}
	if err != nil {
		return nil, wrap("upsert "+string(provider)+" user", err)
	}
	return &u, nil
}

func (r *userRepository) Save(ctx context.Context, u *models.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return wrap("save user "+u.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("save user %s: %w", u.ID, repository.ErrNotFound)
	}
	return nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrap("find users", err)
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, wrap("decode users", err)
	}
	return users, nil
}

type productRepository struct {
	coll *mongo.Collection
}

func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrap("find products", err)
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, wrap("decode products", err)
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, wrap("find product "+id, err)
	}
	return &p, nil
}

func (r *productRepository) Save(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return wrap("save product "+p.ID, err)
	}
	return nil
}

func (r *productRepository) Seed(ctx context.Context, products []models.Product) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return wrap("count products", err)
	}
	if count > 0 {
		return nil // already seeded
	}

	docs := make([]interface{}, 0, len(products))
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = newID()
		}
		products[i].CreatedAt = time.Now()
		docs = append(docs, products[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return wrap("seed products", err)
	}
	log.Printf("🌱 Seeded %d products", len(docs))
	return nil
}
