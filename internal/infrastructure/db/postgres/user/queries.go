package user

const (
	SelectUserByID = `
		SELECT id, username, password_hash, last_interaction, created_at
		FROM users
		WHERE id = $1
	`
	SelectUserByUsername = `
		SELECT id, username, password_hash, last_interaction, created_at
		FROM users
		WHERE username = $1
	`
	InsertUser = `
		INSERT INTO users (username, password_hash, last_interaction)
		VALUES ($1, $2, $3)
		RETURNING
		  id, username, password_hash, last_interaction, created_at
	`
	UpdateLastInteraction = `
		UPDATE users
		SET last_interaction = $1
		WHERE id = $2
		RETURNING
		  id, username, password_hash, last_interaction, created_at
	`
)
