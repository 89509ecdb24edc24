package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/models"
)

// mongoEnvelope is the stored shape of an envelope. The account id is the
// document _id.
type mongoEnvelope struct {
	AccountID               string    `bson:"_id"`
	EncryptedMasterPassword []byte    `bson:"encryptedMasterPassword"`
	Salt                    []byte    `bson:"salt"`
	IV                      []byte    `bson:"iv"`
	AuthTag                 []byte    `bson:"authTag"`
	KDF                     string    `bson:"kdf"`
	Version                 int       `bson:"version"`
	CreatedAt               time.Time `bson:"createdAt"`
	UpdatedAt               time.Time `bson:"updatedAt"`
}

// MongoEnvelopeStore keeps envelope documents in a MongoDB collection.
type MongoEnvelopeStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewMongoEnvelopeStore connects to uri and pings the server within 5s.
func NewMongoEnvelopeStore(ctx context.Context, uri, dbName, collName string, log *logger.Logger) (*MongoEnvelopeStore, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is empty")
	}

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cli.Ping(pctx, nil); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	log.Info().Str("func", "NewMongoEnvelopeStore").Str("collection", collName).Msg("connected to mongo successfully")

	return newMongoEnvelopeStore(cli, cli.Database(dbName).Collection(collName), log), nil
}

func newMongoEnvelopeStore(cli *mongo.Client, coll *mongo.Collection, log *logger.Logger) *MongoEnvelopeStore {
	return &MongoEnvelopeStore{client: cli, coll: coll, logger: log}
}

func (m *MongoEnvelopeStore) GetEnvelope(ctx context.Context, accountID string) (models.Envelope, error) {
	var doc mongoEnvelope
	err := m.coll.FindOne(ctx, bson.M{"_id": accountID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Envelope{}, ErrEnvelopeNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "MongoEnvelopeStore.GetEnvelope").Msg("error reading envelope")
		return models.Envelope{}, m.wrap(ErrExecutingQuery, err)
	}

	return models.Envelope(doc), nil
}

// PutEnvelope replaces the document as a whole. Upsert creates it on the
// first setup.
func (m *MongoEnvelopeStore) PutEnvelope(ctx context.Context, env models.Envelope) error {
	_, err := m.coll.ReplaceOne(
		ctx,
		bson.M{"_id": env.AccountID},
		mongoEnvelope(env),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "MongoEnvelopeStore.PutEnvelope").Msg("error writing envelope")
		return m.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (m *MongoEnvelopeStore) DeleteEnvelope(ctx context.Context, accountID string) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": accountID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "MongoEnvelopeStore.DeleteEnvelope").Msg("error deleting envelope")
		return m.wrap(ErrExecutingStatement, err)
	}
	if res.DeletedCount == 0 {
		return ErrEnvelopeNotFound
	}

	return nil
}

// Close disconnects the client.
func (m *MongoEnvelopeStore) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

func (m *MongoEnvelopeStore) wrap(op, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return fmt.Errorf("%w: %w: %w", op, ErrRetryable, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}
