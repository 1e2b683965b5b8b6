package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct/interface thành map[string]interface{} qua BSON
// marshal/unmarshal, tôn trọng bson tag của model.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(raw, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}
