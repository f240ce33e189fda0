package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	RatingsCollection     *mongo.Collection
	ItinerariesCollection *mongo.Collection
	ArtifactsCollection   *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	RatingsCollection = Client.Database("tripdb").Collection("ratings")
	ItinerariesCollection = Client.Database("tripdb").Collection("itineraries")
	ArtifactsCollection = Client.Database("tripdb").Collection("artifacts")
}
