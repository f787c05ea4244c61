package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ctx = context.TODO()

var ErrNotFound = errors.New("document not found")

// Connect dials the cluster, pings it and returns a handle to the named
// database. The connection string is passed in rather than read from the
// environment so tests and callers stay in control of it.
func Connect(connString string, dbName string) (*mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return client.Database(dbName), nil
}
