package models

type TravelPackage struct {
	ID       string   `json:"id" bson:"id"`
	Title    string   `json:"title" bson:"title"`
	TourType string   `json:"tourType,omitempty" bson:"tourType,omitempty"`
	Price    any      `json:"price" bson:"price"`
	Images   []string `json:"images,omitempty" bson:"images,omitempty"`
	TourPlan []string `json:"tourPlan,omitempty" bson:"tourPlan,omitempty"`
	About    string   `json:"about,omitempty" bson:"about,omitempty"`
}

type Guide struct {
	ID        string   `json:"id" bson:"id"`
	Email     string   `json:"email" bson:"email"`
	Name      string   `json:"name" bson:"name"`
	Photo     string   `json:"photo,omitempty" bson:"photo,omitempty"`
	Title     string   `json:"title,omitempty" bson:"title,omitempty"`
	Bio       string   `json:"bio,omitempty" bson:"bio,omitempty"`
	Languages []string `json:"languages,omitempty" bson:"languages,omitempty"`
}

type Story struct {
	ID        string   `json:"id" bson:"id"`
	Email     string   `json:"email" bson:"email"`
	Author    string   `json:"author,omitempty" bson:"author,omitempty"`
	Title     string   `json:"title" bson:"title"`
	Text      string   `json:"text,omitempty" bson:"text,omitempty"`
	Images    []string `json:"images,omitempty" bson:"images,omitempty"`
	CreatedAt int64    `json:"createdAt" bson:"createdAt"`
}
