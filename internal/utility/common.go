package utility

import (
	"regexp"
	"strings"
	"time"

	"meta_content/internal/common"
)

// UnixMilli lấy mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli lấy thời gian hiện tại tính bằng mili giây
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

// ValidateEmail kiểm tra định dạng email
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return common.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword kiểm tra độ dài tối thiểu của mật khẩu
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return common.ErrWeakPassword
	}
	return nil
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes       = regexp.MustCompile(`-{2,}`)
)

// vietnameseReplacer chuyển ký tự tiếng Việt có dấu về không dấu trước khi tạo slug.
var vietnameseReplacer = strings.NewReplacer(
	"à", "a", "á", "a", "ạ", "a", "ả", "a", "ã", "a",
	"â", "a", "ầ", "a", "ấ", "a", "ậ", "a", "ẩ", "a", "ẫ", "a",
	"ă", "a", "ằ", "a", "ắ", "a", "ặ", "a", "ẳ", "a", "ẵ", "a",
	"è", "e", "é", "e", "ẹ", "e", "ẻ", "e", "ẽ", "e",
	"ê", "e", "ề", "e", "ế", "e", "ệ", "e", "ể", "e", "ễ", "e",
	"ì", "i", "í", "i", "ị", "i", "ỉ", "i", "ĩ", "i",
	"ò", "o", "ó", "o", "ọ", "o", "ỏ", "o", "õ", "o",
	"ô", "o", "ồ", "o", "ố", "o", "ộ", "o", "ổ", "o", "ỗ", "o",
	"ơ", "o", "ờ", "o", "ớ", "o", "ợ", "o", "ở", "o", "ỡ", "o",
	"ù", "u", "ú", "u", "ụ", "u", "ủ", "u", "ũ", "u",
	"ư", "u", "ừ", "u", "ứ", "u", "ự", "u", "ử", "u", "ữ", "u",
	"ỳ", "y", "ý", "y", "ỵ", "y", "ỷ", "y", "ỹ", "y",
	"đ", "d",
)

// Slugify tạo slug từ tiêu đề: bỏ dấu tiếng Việt, lowercase, thay ký tự
// không hợp lệ bằng dấu gạch ngang.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = vietnameseReplacer.Replace(s)
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
