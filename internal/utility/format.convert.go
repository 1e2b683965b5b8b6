package utility

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển string sang primitive.ObjectID.
// Trả về NilObjectID nếu string không hợp lệ (caller phải validate trước bằng IsValidObjectID).
func String2ObjectID(id string) primitive.ObjectID {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objID
}

// P2Int64 chuyển giá trị bất kỳ sang int64, trả về 0 nếu không chuyển được
func P2Int64(input interface{}) int64 {
	switch v := input.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
