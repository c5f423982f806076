package auth

// Claims es la identidad extraída del token. El household NO viene en
// el token: se resuelve por membresía en cada request.
type Claims struct {
	UserID string
	Email  string
}
