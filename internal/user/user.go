package user

// User is an account identity. Password always holds the one-way hash, never
// the plaintext. The user's cart lives in the cart package and is keyed by
// the user id; it is created empty at registration and never deleted while
// the user exists.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
