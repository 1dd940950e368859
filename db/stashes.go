package db

import (
	"fmt"

	"github.com/ethuang3393/MyVibeSaaS/models"
)

func SaveStash(urlID, userID, url, summary, tags string) bool {
	_, err := GetDB().Exec(
		`INSERT INTO stashed_urls (url_id, user_id, url, summary, tags) VALUES ($1, $2, $3, $4, $5)`,
		urlID, userID, url, summary, tags,
	)
	if err != nil {
		fmt.Printf("Error saving stash: %v\n", err)
		return false
	}
	return true
}

// GetUserStashes returns the user's stashed URLs, newest first. Empty
// slice on any store error.
func GetUserStashes(userID string) []models.Stash {
	stashes := []models.Stash{}

	rows, err := GetDB().Query(
		`SELECT url_id, user_id, url, summary, tags, created_at FROM stashed_urls WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		fmt.Printf("Error fetching stashes: %v\n", err)
		return stashes
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Stash
		if err := rows.Scan(&s.ID, &s.UserID, &s.URL, &s.Summary, &s.Tags, &s.CreatedAt); err != nil {
			continue
		}
		stashes = append(stashes, s)
	}

	return stashes
}

func DeleteStash(urlID string) bool {
	_, err := GetDB().Exec(`DELETE FROM stashed_urls WHERE url_id = $1`, urlID)
	if err != nil {
		fmt.Printf("Error deleting stash: %v\n", err)
		return false
	}
	return true
}
