package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	DB     *mongo.Database
	client *mongo.Client
)

func ConnectDB() {
	clientOpts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	client, err = mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Fatalf("Unable to connect to MongoDB: %v", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatalf("Unable to ping MongoDB: %v", err)
	}

	DB = client.Database(AppConfig.MongoDB)
	log.Println("Database connected successfully")
}

func CloseDB() {
	if client != nil {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("Error closing database connection:", err)
			return
		}
		log.Println("Database connection closed")
	}
}
