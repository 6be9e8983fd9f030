package database

import (
	"context"
	"time"

	"github.com/friendlink/friendlink/internal/config"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectDB establishes the process-wide MongoDB connection and returns the
// target database handle. The client is never explicitly closed; it lives
// for the lifetime of the process and is released on termination.
func ConnectDB(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	// Fail fast on a bad URI instead of erroring on the first query.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	return client.Database(cfg.DBName), nil
}
