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
	UserCollection         *mongo.Collection
	PackagesCollection     *mongo.Collection
	GuidesCollection       *mongo.Collection
	BookingsCollection     *mongo.Collection
	PaymentsCollection     *mongo.Collection
	StoriesCollection      *mongo.Collection
	ApplicationsCollection *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	ClientOptions := options.Client().ApplyURI(uri)
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("traveldb").Collection("users")
	PackagesCollection = Client.Database("traveldb").Collection("packages")
	GuidesCollection = Client.Database("traveldb").Collection("guides")
	BookingsCollection = Client.Database("traveldb").Collection("bookings")
	PaymentsCollection = Client.Database("traveldb").Collection("payments")
	StoriesCollection = Client.Database("traveldb").Collection("stories")
	ApplicationsCollection = Client.Database("traveldb").Collection("applications")
}
