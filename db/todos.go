package db

import (
	"fmt"

	"github.com/ethuang3393/MyVibeSaaS/models"
)

// TaskInput carries a pre-generated task id and its description for batch
// insertion alongside a new list.
type TaskInput struct {
	ID          string
	Description string
}

// SaveListAndTasks inserts one list row and its task rows in a single
// transaction. Any failure rolls back the whole batch.
func SaveListAndTasks(userID, listID, listName string, tasks []TaskInput) bool {
	tx, err := GetDB().Begin()
	if err != nil {
		fmt.Printf("Error starting transaction: %v\n", err)
		return false
	}

	_, err = tx.Exec(
		`INSERT INTO todolists (list_id, user_id, list_name) VALUES ($1, $2, $3)`,
		listID, userID, listName,
	)
	if err != nil {
		tx.Rollback()
		fmt.Printf("Error saving list: %v\n", err)
		return false
	}

	for _, task := range tasks {
		_, err = tx.Exec(
			`INSERT INTO tasks (task_id, list_id, task_description, is_completed) VALUES ($1, $2, $3, FALSE)`,
			task.ID, listID, task.Description,
		)
		if err != nil {
			tx.Rollback()
			fmt.Printf("Error saving task: %v\n", err)
			return false
		}
	}

	if err := tx.Commit(); err != nil {
		fmt.Printf("Error committing list: %v\n", err)
		return false
	}
	return true
}

// GetUserListsWithTasks returns the user's lists, each with its tasks
// ordered by description. Returns an empty slice on any store error,
// indistinguishable from "no lists".
func GetUserListsWithTasks(userID string) []models.TodoList {
	lists := []models.TodoList{}

	rows, err := GetDB().Query(
		`SELECT list_id, user_id, list_name FROM todolists WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		fmt.Printf("Error fetching lists: %v\n", err)
		return lists
	}
	defer rows.Close()

	for rows.Next() {
		var l models.TodoList
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name); err != nil {
			continue
		}
		lists = append(lists, l)
	}

	for i := range lists {
		taskRows, err := GetDB().Query(
			`SELECT task_id, list_id, task_description, is_completed FROM tasks WHERE list_id = $1 ORDER BY task_description`,
			lists[i].ID,
		)
		if err != nil {
			continue
		}
		for taskRows.Next() {
			var t models.Task
			if err := taskRows.Scan(&t.ID, &t.ListID, &t.Description, &t.IsCompleted); err != nil {
				continue
			}
			lists[i].Tasks = append(lists[i].Tasks, t)
		}
		taskRows.Close()
	}

	return lists
}

// DeleteList removes a list and all of its tasks. Tasks go first so no
// dangling rows survive a partial failure.
func DeleteList(listID string) bool {
	tx, err := GetDB().Begin()
	if err != nil {
		fmt.Printf("Error starting transaction: %v\n", err)
		return false
	}

	if _, err := tx.Exec(`DELETE FROM tasks WHERE list_id = $1`, listID); err != nil {
		tx.Rollback()
		fmt.Printf("Error deleting tasks: %v\n", err)
		return false
	}
	if _, err := tx.Exec(`DELETE FROM todolists WHERE list_id = $1`, listID); err != nil {
		tx.Rollback()
		fmt.Printf("Error deleting list: %v\n", err)
		return false
	}

	if err := tx.Commit(); err != nil {
		fmt.Printf("Error committing delete: %v\n", err)
		return false
	}
	return true
}

func DeleteTask(taskID string) bool {
	_, err := GetDB().Exec(`DELETE FROM tasks WHERE task_id = $1`, taskID)
	if err != nil {
		fmt.Printf("Error deleting task: %v\n", err)
		return false
	}
	return true
}

func ToggleTaskStatus(taskID string, isCompleted bool) bool {
	_, err := GetDB().Exec(
		`UPDATE tasks SET is_completed = $1 WHERE task_id = $2`,
		isCompleted, taskID,
	)
	if err != nil {
		fmt.Printf("Error toggling task: %v\n", err)
		return false
	}
	return true
}
