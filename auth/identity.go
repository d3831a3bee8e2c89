package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

// Identity is the signed-in context carried through a request: who the user
// is and which capabilities their role set grants.
type Identity struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Role    string `json:"role"`
}

// IsAdmin holds iff the role set contains the administrator tag.
func (i Identity) IsAdmin() bool {
	return i.Role == string(models.RoleAdmin)
}

// IsModerator holds for moderators and administrators; admin is a superset
// capability.
func (i Identity) IsModerator() bool {
	return i.Role == string(models.RoleModerator) || i.IsAdmin()
}

// RoleFor collapses the role assignments into the single JWT role claim.
func RoleFor(roles []models.UserRole) string {
	switch {
	case models.HasAdmin(roles):
		return string(models.RoleAdmin)
	case models.HasModerator(roles):
		return string(models.RoleModerator)
	default:
		return "user"
	}
}

// IssueJWT signs a session token for the identity. Expiry is 24h for users
// and guests alike.
func IssueJWT(identity Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id": identity.UserID,
		"email":   identity.Email,
		"role":    identity.Role,
		"name":    identity.Name,
		"picture": identity.Picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseJWT validates a session token and rebuilds the identity.
func ParseJWT(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = jwt.ErrTokenUnverifiable
		}
		return Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	id := Identity{}
	id.UserID, _ = claims["user_id"].(string)
	id.Email, _ = claims["email"].(string)
	id.Role, _ = claims["role"].(string)
	id.Name, _ = claims["name"].(string)
	id.Picture, _ = claims["picture"].(string)
	return id, nil
}
