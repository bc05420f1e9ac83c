package models

// Role is the closed set of user roles. Stored as a plain string in Mongo
// but only ever one of the constants below.
type Role string

const (
	RoleTourist Role = "tourist"
	RoleGuide   Role = "guide"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleTourist, RoleGuide, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID    string `json:"id" bson:"id"`
	Email string `json:"email" bson:"email"`
	Name  string `json:"name" bson:"name"`
	Photo string `json:"photo,omitempty" bson:"photo,omitempty"`
	Role  Role   `json:"role" bson:"role"`
}

// GuideApplication is a tourist's request to become a guide. Approval moves
// it into the guides collection and deletes the application; there is no
// rejected state, only removal.
type GuideApplication struct {
	ID        string `json:"id" bson:"id"`
	Email     string `json:"email" bson:"email"`
	Name      string `json:"name" bson:"name"`
	Photo     string `json:"photo,omitempty" bson:"photo,omitempty"`
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	Reason    string `json:"reason,omitempty" bson:"reason,omitempty"`
	CVLink    string `json:"cvLink,omitempty" bson:"cvLink,omitempty"`
	AppliedAt int64  `json:"appliedAt" bson:"appliedAt"`
}
