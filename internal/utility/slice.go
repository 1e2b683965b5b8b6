package utility

// Contains kiểm tra một phần tử có trong slice hay không
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// Unique loại bỏ các phần tử trùng lặp, giữ nguyên thứ tự xuất hiện đầu tiên
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
