package utility

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"meta_content/internal/common"
)

// JwtClaims chứa data được mã hóa trong JWT token.
type JwtClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// CreateToken tạo JWT token HMAC-SHA256 chứa userID, hết hạn sau ttl.
func CreateToken(secret string, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := JwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// ParseToken parse và xác thực JWT token, trả về claims.
// Token hết hạn trả về ErrTokenExpired, các lỗi khác trả về ErrTokenInvalid.
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
