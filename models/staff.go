package models

import "time"

// Job roles untuk staff.
const (
	RolePhotographer  = "photographer"
	RoleVideographer  = "videographer"
	RoleDroneOperator = "drone_operator"
	RoleEditor        = "editor"
	RoleManager       = "manager"
	RoleCoordinator   = "coordinator"
)

const (
	StaffActive   = "active"
	StaffInactive = "inactive"
)

type Staff struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      string    `gorm:"type:varchar(30);not null" json:"role"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Email     *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	JoinDate  string    `gorm:"type:varchar(10)" json:"join_date"` // YYYY-MM-DD
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`    // optional login user
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// ValidStaffRole memeriksa role yang dikenal sistem.
func ValidStaffRole(role string) bool {
	switch role {
	case RolePhotographer, RoleVideographer, RoleDroneOperator,
		RoleEditor, RoleManager, RoleCoordinator:
		return true
	}
	return false
}
