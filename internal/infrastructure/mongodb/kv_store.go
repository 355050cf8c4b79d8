// Package mongodb implementa el almacenamiento clave/valor sobre una colección MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/lager-api/internal/domain/repository"
)

const collectionName = "kv_store"

var _ repository.KeyValueStore = (*KVStore)(nil)

// document una clave por documento; el blob JSON se guarda como string para devolverlo byte a byte.
type document struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// KVStore implementación de KeyValueStore sobre MongoDB.
type KVStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewKVStore conecta, verifica con ping y devuelve el adaptador.
func NewKVStore(ctx context.Context, uri, dbName string) (*KVStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("conectar mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &KVStore{
		client: client,
		coll:   client.Database(dbName).Collection(collectionName),
	}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get kv %s: %w", key, err)
	}
	return []byte(doc.Value), true, nil
}

// Set reemplaza el documento completo (upsert); última escritura gana.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	doc := document{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert kv %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete kv %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión con MongoDB.
func (s *KVStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
