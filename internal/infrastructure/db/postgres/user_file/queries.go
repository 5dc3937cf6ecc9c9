package user_file

const (
	// the owner row lock serialises concurrent uploads of one user
	LockOwner = `
		SELECT id FROM users WHERE id = $1 FOR UPDATE
	`
	CountUserFiles = `
		SELECT count(*) FROM user_files WHERE user_id = $1
	`
	InsertUserFile = `
		INSERT INTO user_files (user_id, file_name, file_size, upload_date)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, user_id, file_name, file_size, upload_date
	`
	SelectUserFile = `
		SELECT id, user_id, file_name, file_size, upload_date
		FROM user_files
		WHERE id = $1 AND user_id = $2
	`
	SelectUserFiles = `
		SELECT id, user_id, file_name, file_size, upload_date
		FROM user_files
		WHERE user_id = $1
		ORDER BY upload_date, id
	`
	DeleteUserFile = `
		DELETE FROM user_files
		WHERE id = $1 AND user_id = $2
	`
)
