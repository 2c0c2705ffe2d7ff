package middleware

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

var (
	SecretKey      string
	tokenBlacklist = make(map[string]bool)
	mu             sync.Mutex
)

// The secret is read after godotenv runs so a SECRET_KEY set only in
// .env still reaches the signer.
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}
	SecretKey = os.Getenv("SECRET_KEY")
}

// GenerateJWT creates a JWT token carrying the user's ID and role.
func GenerateJWT(userID uint, role string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = userID
	claims["role"] = role
	claims["exp"] = time.Now().Add(time.Hour * 72).Unix() // Token expires in 72 hours

	tokenString, err := token.SignedString([]byte(SecretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyJWT parses and validates a JWT token
func VerifyJWT(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token is using the correct signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(SecretKey), nil
	})
}

// BlacklistToken adds a JWT token to the in-memory blacklist so logout
// takes effect before expiry.
func BlacklistToken(token string) {
	mu.Lock()
	defer mu.Unlock()
	tokenBlacklist[token] = true
}

// IsTokenBlacklisted checks if the JWT is blacklisted
func IsTokenBlacklisted(token string) bool {
	mu.Lock()
	defer mu.Unlock()
	return tokenBlacklist[token]
}

// tokenFromRequest reads the JWT from the "jwt" cookie or, failing that,
// from the Authorization header.
func tokenFromRequest(c *fiber.Ctx) string {
	if t := c.Cookies("jwt"); t != "" {
		return t
	}
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// JWTMiddleware validates the caller's token and stores the user ID and
// role in the request context. Every protected operation reads identity
// from these locals, never from ambient state.
func JWTMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: No token provided",
			})
		}

		if IsTokenBlacklisted(tokenString) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Token has been invalidated",
			})
		}

		token, err := VerifyJWT(tokenString)
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Invalid token",
			})
		}

		claims := token.Claims.(jwt.MapClaims)
		userID, ok := claims["user_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Invalid token claims",
			})
		}
		role, _ := claims["role"].(string)

		c.Locals("user_id", uint(userID))
		c.Locals("role", role)

		return c.Next()
	}
}

// RequireRoles gates a route to the given roles. It runs after
// JWTMiddleware and is the single place role checks happen.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden: you are not authorized to access this resource",
		})
	}
}

// UserID returns the authenticated caller's ID set by JWTMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

// Role returns the authenticated caller's role set by JWTMiddleware.
func Role(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
