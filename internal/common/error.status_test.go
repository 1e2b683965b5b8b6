package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestNewError kiểm tra tạo error với đầy đủ thông tin
func TestNewError(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "Dữ liệu không hợp lệ", StatusBadRequest, map[string]string{"field": "name"})

	var customErr *Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, ErrCodeValidationInput.Code, customErr.Code.Code)
	assert.Equal(t, "Dữ liệu không hợp lệ", customErr.Message)
	assert.Equal(t, StatusBadRequest, customErr.StatusCode)
	assert.NotNil(t, customErr.Details)
	assert.Equal(t, "Dữ liệu không hợp lệ", err.Error())
}

// TestErrorIs kiểm tra so khớp error qua errors.Is
func TestErrorIs(t *testing.T) {
	t.Run("Cùng code và message thì khớp", func(t *testing.T) {
		err := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Khác message thì không khớp", func(t *testing.T) {
		err := NewError(ErrCodeDatabaseQuery, "Lỗi khác", StatusNotFound, nil)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("Error được wrap vẫn khớp", func(t *testing.T) {
		wrapped := fmt.Errorf("tìm bài viết: %w", ErrNotFound)
		assert.ErrorIs(t, wrapped, ErrNotFound)
	})
}

// TestConvertMongoError kiểm tra chuyển đổi lỗi MongoDB sang taxonomy hệ thống
func TestConvertMongoError(t *testing.T) {
	t.Run("Nil trả về nil", func(t *testing.T) {
		assert.NoError(t, ConvertMongoError(nil))
	})

	t.Run("ErrNotFound giữ nguyên", func(t *testing.T) {
		assert.ErrorIs(t, ConvertMongoError(ErrNotFound), ErrNotFound)
		assert.ErrorIs(t, ConvertMongoError(fmt.Errorf("wrap: %w", ErrNotFound)), ErrNotFound)
	})

	t.Run("CommandError theo dải mã lệnh", func(t *testing.T) {
		cases := []struct {
			code     int32
			expected error
		}{
			{150, ErrMongoConnection},
			{250, ErrMongoAuth},
			{350, ErrMongoQuery},
			{450, ErrMongoWrite},
			{501, ErrMongoSystem},
		}
		for _, tc := range cases {
			result := ConvertMongoError(mongo.CommandError{Code: tc.code, Message: "lỗi"})
			assert.ErrorIs(t, result, tc.expected, "code %d", tc.code)
		}
	})

	t.Run("Duplicate key trả về ErrMongoDuplicate", func(t *testing.T) {
		dupErr := mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
		}
		assert.ErrorIs(t, ConvertMongoError(dupErr), ErrMongoDuplicate)
	})

	t.Run("Lỗi trùng lặp mang status 400", func(t *testing.T) {
		assert.Equal(t, StatusBadRequest, ErrMongoDuplicate.StatusCode)
		assert.Equal(t, StatusBadRequest, ErrDuplicate.StatusCode)
	})

	t.Run("Lỗi không xác định trả về lỗi database chung", func(t *testing.T) {
		result := ConvertMongoError(errors.New("lỗi lạ"))

		var customErr *Error
		assert.True(t, errors.As(result, &customErr))
		assert.Equal(t, ErrCodeDatabase.Code, customErr.Code.Code)
		assert.Equal(t, StatusInternalServerError, customErr.StatusCode)
	})
}
