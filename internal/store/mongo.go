package store

import (
	"context"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"time"
)

// Options configures the MongoDB connection
type Options struct {
	URL      string
	Database string

	// Timeout bounds server selection, connecting and each operation.
	// Zero keeps the driver defaults.
	Timeout time.Duration
}

// Mongo is a Gateway backed by a MongoDB database
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	log    hclog.Logger
}

// Open creates a client for the configured database. The driver connects
// lazily, so a successful Open does not mean the server is reachable; use
// Ping for that.
func Open(ctx context.Context, opts Options, log hclog.Logger) (*Mongo, error) {
	if opts.URL == "" || opts.Database == "" {
		return nil, wrap("open", "", ErrNotConfigured)
	}

	clientOpts := options.Client().ApplyURI(opts.URL)
	if opts.Timeout > 0 {
		clientOpts.
			SetServerSelectionTimeout(opts.Timeout).
			SetConnectTimeout(opts.Timeout).
			SetTimeout(opts.Timeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, wrap("open", "", err)
	}

	log.Debug("Created document store client", "database", opts.Database)

	return NewMongo(client.Database(opts.Database), log), nil
}

// NewMongo wraps an existing database handle
func NewMongo(db *mongo.Database, log hclog.Logger) *Mongo {
	return &Mongo{
		client: db.Client(),
		db:     db,
		log:    log,
	}
}

func (m *Mongo) Insert(ctx context.Context, collection string, record any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		m.log.Error("Unable to insert document", "collection", collection, "error", err)
		return "", wrap("insert", collection, err)
	}

	id := idString(res.InsertedID)
	m.log.Debug("Inserted document", "collection", collection, "id", id)

	return id, nil
}

func (m *Mongo) Find(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	opts := options.Find().SetSort(bson.D{{Key: nativeIDField, Value: 1}})
	if limit != 0 {
		opts.SetLimit(limit)
	}

	cursor, err := m.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		m.log.Error("Unable to query documents", "collection", collection, "error", err)
		return nil, wrap("find", collection, err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		m.log.Error("Unable to read documents", "collection", collection, "error", err)
		return nil, wrap("find", collection, err)
	}

	docs := make([]Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, normalize(r))
	}

	return docs, nil
}

func (m *Mongo) ListCollections(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, wrap("list collections", "", err)
	}
	return names, nil
}

// Ping checks that the server is reachable
func (m *Mongo) Ping(ctx context.Context) error {
	return wrap("ping", "", m.client.Ping(ctx, readpref.Primary()))
}

func (m *Mongo) Name() string {
	return m.db.Name()
}

func (m *Mongo) Initialized() bool {
	return true
}

func (m *Mongo) Close(ctx context.Context) error {
	m.log.Info("Disconnecting document store")
	return wrap("close", "", m.client.Disconnect(ctx))
}

// normalize moves the native identifier to IDField as text
func normalize(raw bson.M) Document {
	doc := make(Document, len(raw))
	for k, v := range raw {
		if k == nativeIDField {
			continue
		}
		doc[k] = v
	}

	if id, ok := raw[nativeIDField]; ok {
		doc[IDField] = idString(id)
	}

	return doc
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
