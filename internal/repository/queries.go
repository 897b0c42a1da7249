package repository

func upsertUserQuery(u User) (string, []any) {
	return `INSERT INTO users (subject, email, name, given_name, family_name, roles) VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (subject) DO UPDATE SET
	email = EXCLUDED.email,
	name = EXCLUDED.name,
	given_name = EXCLUDED.given_name,
	family_name = EXCLUDED.family_name,
	roles = EXCLUDED.roles`, []any{u.Subject, u.Email, u.Name, u.GivenName, u.FamilyName, u.Roles}
}
