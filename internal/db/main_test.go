//go:build integration

package db_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hashvault-io/hashvault-core/internal/config"
	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/testutil"
)

const (
	mongoDatabaseName = "test-database"

	// this version corresponds to docker tag for mongodb
	// it should be in sync with mongo version used in production
	mongoVersion = "7.0.5"
)

var testDB *db.Database

// mongo connected to test database, used for truncating collections
var mongoDB *mongo.Database

func TestMain(m *testing.M) {
	// first setup container with MongoDb. Transactions need a replica set,
	// so the container runs as a single-node one.
	dbConfig, cleanup, err := setupMongoContainer()
	if err != nil {
		log.Fatalf("failed to setup mongo container: %v", err)
	}

	// apply migrations
	err = model.Setup(context.Background(), dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to init mongo database: %v", err)
	}

	// using config from container mongo initialize client used in tests
	testDB, err = setupClient(dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to setup client: %v", err)
	}

	// setup mongo client used for preparing/cleaning data
	mongoDB, err = setupMongoClient(dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to setup mongo client: %v", err)
	}

	// integration tests run on this line
	code := m.Run()
	cleanup()

	os.Exit(code)
}

// setupMongoContainer setups a single-node replica-set mongodb container,
// returning db credentials through config.DbConfig, a cleanup function and an
// error if any. Cleanup function MUST be called in the end to cleanup docker
// resources
func setupMongoContainer() (*config.DbConfig, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, err
	}

	// generate random string for container name
	randomString, err := testutil.RandomAlphaNum(3)
	if err != nil {
		return nil, nil, err
	}

	// there can be only 1 container with the same name, so we add
	// random string in the end in case there is still old container running
	containerName := "mongo-integration-tests-db-" + randomString
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       containerName,
		Repository: "mongo",
		Tag:        mongoVersion,
		Cmd:        []string{"--replSet", "rs0", "--bind_ip_all"},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		err := pool.Purge(resource)
		if err != nil {
			log.Fatalf("failed to purge resource: %v", err)
		}
	}

	// get host port (randomly chosen) that is mapped to mongo port inside container
	hostPort := resource.GetPort("27017/tcp")
	// directConnection pins the driver to the mapped port so the
	// container-internal member address never gets dialled
	address := fmt.Sprintf("mongodb://localhost:%s/?directConnection=true", hostPort)

	if err := initReplicaSet(pool, address); err != nil {
		cleanup()
		return nil, nil, err
	}

	return &config.DbConfig{
		DbName:  mongoDatabaseName,
		Address: address,
	}, cleanup, nil
}

// initReplicaSet waits for mongod to accept connections, initiates the
// single-node replica set and waits for it to elect itself primary.
func initReplicaSet(pool *dockertest.Pool, address string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var client *mongo.Client
	if err := pool.Retry(func() error {
		var err error
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(address))
		if err != nil {
			return err
		}
		return client.Ping(ctx, nil)
	}); err != nil {
		return fmt.Errorf("mongod never came up: %w", err)
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	res := client.Database("admin").RunCommand(ctx, bson.D{{Key: "replSetInitiate", Value: bson.D{}}})
	if res.Err() != nil {
		return fmt.Errorf("failed to initiate replica set: %w", res.Err())
	}

	// wait until the node reports itself primary, otherwise the first
	// transaction in a test races the election
	for {
		var hello bson.M
		err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
		if err == nil {
			if isWritablePrimary, ok := hello["isWritablePrimary"].(bool); ok && isWritablePrimary {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("replica set never elected a primary: %w", ctx.Err())
		case <-time.After(250 * time.Millisecond):
		}
	}
}

// insertActivityRecord seeds an activity record directly; production code
// only creates them through a purchase or a claim.
func insertActivityRecord(t *testing.T, accountID string, active bool, lastClaimAt time.Time) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := mongoDB.Collection(model.ActivityRecordCollection).InsertOne(ctx, &model.ActivityRecordDocument{
		AccountID:   accountID,
		LastClaimAt: lastClaimAt,
		Active:      active,
	})
	require.NoError(t, err)
}

func resetDatabase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	collections := []string{
		model.AccountCollection,
		model.BlockCollection,
		model.UnclaimedRewardCollection,
		model.ActivityRecordCollection,
		model.LedgerEntryCollection,
		model.StakeCollection,
	}

	for _, collection := range collections {
		_, err := mongoDB.Collection(collection).DeleteMany(ctx, bson.M{})
		require.NoError(t, err)
	}
}

func setupClient(cfg *config.DbConfig) (*db.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.New(ctx, *cfg)
}

func setupMongoClient(cfg *config.DbConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Address))
	if err != nil {
		return nil, err
	}

	return client.Database(cfg.DbName), nil
}
