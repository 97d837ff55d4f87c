package store

import (
	"gorm.io/gorm"

	"restaurant-api/models"
)

// CreateUser inserts the user. The unique index on email surfaces
// duplicates as a store error the handler maps to 400.
func CreateUser(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

// UserByEmail returns the full row, password hash included, for
// credential checks.
func UserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserPatch carries partial updates; nil fields are left unchanged.
// Handlers decide which fields a caller may set before building one.
type UserPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	IsActive *bool
}

// UpdateUser applies the patch and returns the updated row, or
// gorm.ErrRecordNotFound when the id has no match.
func UpdateUser(db *gorm.DB, id uint, patch UserPatch) (*models.User, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	if len(updates) > 0 {
		res := db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return UserByID(db, id)
}

// Clients lists CLIENT-role users, newest first.
func Clients(db *gorm.DB, limit, offset int) ([]models.User, error) {
	users := make([]models.User, 0)
	err := db.Where("role = ?", models.RoleClient).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func DeleteUser(db *gorm.DB, id uint) error {
	res := db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
