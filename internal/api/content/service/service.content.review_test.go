package contentsvc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"meta_content/internal/common"
)

// TestValidateRating kiểm tra ràng buộc điểm đánh giá từ 1 đến 5
func TestValidateRating(t *testing.T) {
	t.Run("Rating hợp lệ", func(t *testing.T) {
		for _, rating := range []int64{1, 2, 3, 4, 5} {
			assert.NoError(t, ValidateRating(rating), "rating %d", rating)
		}
	})

	t.Run("Rating ngoài khoảng", func(t *testing.T) {
		for _, rating := range []int64{0, 6, -1, 100} {
			err := ValidateRating(rating)
			assert.Error(t, err, "rating %d", rating)

			var customErr *common.Error
			assert.True(t, errors.As(err, &customErr))
			assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
		}
	})
}
