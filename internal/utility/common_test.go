package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"meta_content/internal/common"
)

// TestSlugify kiểm tra việc tạo slug từ tiêu đề
func TestSlugify(t *testing.T) {
	t.Run("Tiêu đề tiếng Anh đơn giản", func(t *testing.T) {
		assert.Equal(t, "hello-world", Slugify("Hello World"))
	})

	t.Run("Tiêu đề tiếng Việt có dấu", func(t *testing.T) {
		assert.Equal(t, "huong-dan-lap-trinh-go", Slugify("Hướng dẫn lập trình Go"))
		assert.Equal(t, "bai-viet-dau-tien", Slugify("Bài viết đầu tiên"))
	})

	t.Run("Ký tự đặc biệt và khoảng trắng thừa", func(t *testing.T) {
		assert.Equal(t, "a-b-c", Slugify("  a !@# b   c  "))
		assert.Equal(t, "tin-tuc-24-7", Slugify("Tin tức 24/7"))
	})

	t.Run("Chuỗi rỗng và chuỗi toàn ký tự không hợp lệ", func(t *testing.T) {
		assert.Equal(t, "", Slugify(""))
		assert.Equal(t, "", Slugify("!!! ???"))
	})

	t.Run("Slugify hai lần cho cùng kết quả", func(t *testing.T) {
		slug := Slugify("Đánh giá sản phẩm mới")
		assert.Equal(t, slug, Slugify(slug))
	})
}

// TestValidateEmail kiểm tra định dạng email
func TestValidateEmail(t *testing.T) {
	t.Run("Email hợp lệ", func(t *testing.T) {
		assert.NoError(t, ValidateEmail("admin@example.com"))
		assert.NoError(t, ValidateEmail("user.name+tag@sub.domain.vn"))
	})

	t.Run("Email không hợp lệ", func(t *testing.T) {
		for _, email := range []string{"", "abc", "abc@", "@example.com", "a@b", "a b@example.com"} {
			err := ValidateEmail(email)
			assert.ErrorIs(t, err, common.ErrInvalidEmail, "email: %s", email)
		}
	})
}

// TestValidatePassword kiểm tra độ dài tối thiểu của mật khẩu
func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword("mật khẩu rất dài"))
	assert.ErrorIs(t, ValidatePassword("1234567"), common.ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword(""), common.ErrWeakPassword)
}

// TestUnixMilli kiểm tra chuyển đổi thời gian sang mili giây
func TestUnixMilli(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, ts.UnixMilli(), UnixMilli(ts))

	// Phần nano giây được làm tròn về mili giây
	withNano := ts.Add(1_400_000 * time.Nanosecond)
	assert.Equal(t, ts.UnixMilli()+1, UnixMilli(withNano))
}
