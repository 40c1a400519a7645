package entity

import "time"

// User roles
const (
	RoleAdmin                 = "ADMIN"
	RolePlanificateur         = "PLANIFICATEUR"
	RoleChefProduction        = "CHEF_PRODUCTION"
	RoleSuperviseurProduction = "SUPERVISEUR_PRODUCTION"
)

// User is a back-office account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	FirstName string `json:"first_name" gorm:"size:100;not null"`
	LastName  string `json:"last_name" gorm:"size:100;not null"`
	Email     string `json:"email" gorm:"size:200;uniqueIndex;not null"`
	Password  string `json:"-" gorm:"size:100;not null"`
	Role      string `json:"role" gorm:"size:30;not null;default:PLANIFICATEUR"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
