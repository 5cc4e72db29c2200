// Package mongo opens MongoDB clients for the mongo secret store backend.
//
// It wraps go.mongodb.org/mongo-driver/v2 and retries the initial ping with
// github.com/sethvargo/go-retry. Settings come from MONGODB_* environment variables:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	coll, err := mongo.NewCollection(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer coll.Database().Client().Disconnect(context.Background())
//
//	backend := secretstore.NewMongoBackend(coll, "otpserver")
package mongo
