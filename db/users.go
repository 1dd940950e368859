package db

import (
	"database/sql"
	"fmt"

	"github.com/ethuang3393/MyVibeSaaS/models"
	"github.com/lib/pq"
)

// GetUserByName looks up a user by exact name. Returns nil when the user
// does not exist or the store is unreachable; the two cases are not
// distinguished.
func GetUserByName(userName string) *models.User {
	var u models.User
	err := GetDB().QueryRow(
		`SELECT user_id, user_name, tier FROM users WHERE user_name = $1`,
		userName,
	).Scan(&u.ID, &u.Name, &u.Tier)

	if err == sql.ErrNoRows {
		return nil
	} else if err != nil {
		fmt.Printf("Error fetching user: %v\n", err)
		return nil
	}
	return &u
}

// CreateUser inserts a new user on the free tier. Returns false on a
// duplicate name or any store error.
func CreateUser(userID, userName string) bool {
	_, err := GetDB().Exec(
		`INSERT INTO users (user_id, user_name, tier) VALUES ($1, $2, 'free')`,
		userID, userName,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			fmt.Printf("Duplicate user name: %s\n", userName)
		} else {
			fmt.Printf("Error creating user: %v\n", err)
		}
		return false
	}
	return true
}

func UpdateUserTier(userID, tier string) bool {
	_, err := GetDB().Exec(
		`UPDATE users SET tier = $1 WHERE user_id = $2`,
		tier, userID,
	)
	if err != nil {
		fmt.Printf("Error updating tier: %v\n", err)
		return false
	}
	return true
}
