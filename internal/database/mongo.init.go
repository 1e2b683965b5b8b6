package database

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"meta_content/internal/global"
	"meta_content/internal/logger"
)

// EnsureDatabaseAndCollections đảm bảo database và các collection cần thiết tồn tại.
// Danh sách collection lấy từ global.MongoDB_ColNames bằng reflection.
func EnsureDatabaseAndCollections(client *mongo.Client) error {
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName

	// Context tổng 30 giây để duyệt tất cả collections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbList, err := client.ListDatabaseNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list databases: %w", err)
	}

	dbExists := false
	for _, name := range dbList {
		if name == dbName {
			dbExists = true
			break
		}
	}
	if !dbExists {
		logger.GetAppLogger().Infof("Database %s does not exist, will create automatically by creating collections", dbName)
	}

	db := client.Database(dbName)
	collections := []string{}
	v := reflect.ValueOf(global.MongoDB_ColNames)
	for i := 0; i < v.NumField(); i++ {
		collections = append(collections, v.Field(i).String())
	}

	collList, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, collectionName := range collections {
		exists := false
		for _, existingColl := range collList {
			if existingColl == collectionName {
				exists = true
				break
			}
		}
		if !exists {
			logger.GetAppLogger().Infof("Collection %s chưa tồn tại, tạo mới.", collectionName)
			if err := db.CreateCollection(ctx, collectionName); err != nil {
				return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
			}
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", dbName)
	return nil
}

// parseOrder trích xuất thứ tự sắp xếp từ tag (1 hoặc -1)
func parseOrder(tag string) int {
	if strings.Contains(tag, "order:-1") {
		return -1
	}
	return 1
}

// parseIndexTag phân tách tag index thành danh sách cấu hình.
// Các cấu hình cách nhau bằng ';', trong mỗi cấu hình các phần cách nhau bằng ','.
func parseIndexTag(tag string) []map[string]string {
	parts := strings.Split(tag, ";")
	result := []map[string]string{}

	for _, part := range parts {
		subParts := strings.Split(part, ",")
		entry := map[string]string{}
		for _, subPart := range subParts {
			kv := strings.Split(subPart, ":")
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		result = append(result, entry)
	}

	return result
}

// compareIndex so sánh index hiện có với cấu hình mới (keys, unique, TTL)
func compareIndex(existingIndex bson.M, keys bson.D, opts *options.IndexOptions) bool {
	existingKeys, ok := existingIndex["key"].(bson.M)
	if !ok {
		return false
	}

	for _, key := range keys {
		existingValue, exists := existingKeys[key.Key]
		if !exists {
			return false
		}

		// Driver có thể trả về int32/int64/float64 cho giá trị 1 / -1
		newVal, isInt := key.Value.(int)
		if isInt {
			switch ev := existingValue.(type) {
			case int32:
				if int(ev) != newVal {
					return false
				}
			case int64:
				if int(ev) != newVal {
					return false
				}
			case float64:
				if int(ev) != newVal {
					return false
				}
			default:
				return false
			}
		} else {
			if existingValue != key.Value {
				return false
			}
		}
	}

	if unique, ok := existingIndex["unique"].(bool); ok && opts.Unique != nil {
		if unique != *opts.Unique {
			return false
		}
	} else if opts.Unique != nil && *opts.Unique {
		// index cũ không unique, index mới lại unique => mismatch
		return false
	}

	if ttl, ok := existingIndex["expireAfterSeconds"].(int32); ok && opts.ExpireAfterSeconds != nil {
		if ttl != *opts.ExpireAfterSeconds {
			return false
		}
	}

	return true
}

// checkAndReplaceIndex kiểm tra và thay thế index nếu cấu hình không khớp
func checkAndReplaceIndex(
	ctx context.Context,
	collection *mongo.Collection,
	existingIndexes map[string]bson.M,
	indexName string,
	keys bson.D,
	opts *options.IndexOptions,
) error {
	log := logger.GetAppLogger()

	if existingIndex, exists := existingIndexes[indexName]; exists {
		if compareIndex(existingIndex, keys, opts) {
			log.Debugf("Index %s đã tồn tại và đúng cấu hình, bỏ qua", indexName)
			return nil
		}
		if _, err := collection.Indexes().DropOne(ctx, indexName); err != nil {
			return fmt.Errorf("không thể xóa index %s: %w", indexName, err)
		}
		log.Infof("Đã xóa index cũ: %s", indexName)
	}

	if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}); err != nil {
		return fmt.Errorf("không thể tạo index %s: %w", indexName, err)
	}
	log.Infof("Đã tạo index: %s", indexName)
	return nil
}

// CreateIndexes đọc struct tag `index` trên model và đồng bộ index cho collection.
// Hỗ trợ: unique (kèm sparse), single:1 / order:-1, compound:<name>
// (tên chứa "_unique" sẽ unique), text, ttl:<giây>.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	log := logger.GetAppLogger()
	log.Debugf("Bắt đầu xử lý index cho collection: %s", collection.Name())

	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("không thể lấy danh sách index: %w", err)
	}
	defer cursor.Close(ctx)

	existingIndexes := map[string]bson.M{}
	for cursor.Next(ctx) {
		var indexInfo bson.M
		if err := cursor.Decode(&indexInfo); err != nil {
			return fmt.Errorf("không thể giải mã thông tin index: %w", err)
		}
		if name, ok := indexInfo["name"].(string); ok {
			existingIndexes[name] = indexInfo
		}
	}

	compoundGroups := map[string]bson.D{}
	compoundOptions := map[string]*options.IndexOptions{}
	compoundUnique := map[string]bool{}
	compoundSparse := map[string]bool{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}

		bsonField := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		indexConfigs := parseIndexTag(tag)
		for _, config := range indexConfigs {

			if _, ok := config["text"]; ok {
				keys := bson.D{{Key: bsonField, Value: "text"}}
				indexName := bsonField + "_text"
				opts := options.Index().SetName(indexName)

				if err := checkAndReplaceIndex(ctx, collection, existingIndexes, indexName, keys, opts); err != nil {
					return err
				}
			}

			if _, ok := config["single"]; ok {
				order := parseOrder(tag)
				keys := bson.D{{Key: bsonField, Value: order}}
				indexName := bsonField + "_single"
				opts := options.Index().SetName(indexName)

				if err := checkAndReplaceIndex(ctx, collection, existingIndexes, indexName, keys, opts); err != nil {
					return err
				}
			}

			if _, ok := config["unique"]; ok {
				keys := bson.D{{Key: bsonField, Value: 1}}
				indexName := bsonField + "_unique"
				opts := options.Index().SetName(indexName).SetUnique(true)

				// Sparse index cho phép nhiều document không có field này
				if _, hasSparse := config["sparse"]; hasSparse {
					opts = opts.SetSparse(true)
				}

				if err := checkAndReplaceIndex(ctx, collection, existingIndexes, indexName, keys, opts); err != nil {
					return err
				}
			}

			if ttlValue, ok := config["ttl"]; ok {
				ttl, err := strconv.Atoi(ttlValue)
				if err != nil {
					return fmt.Errorf("TTL không hợp lệ: %w", err)
				}
				keys := bson.D{{Key: bsonField, Value: 1}}
				indexName := bsonField + "_ttl"
				opts := options.Index().SetExpireAfterSeconds(int32(ttl)).SetName(indexName)

				if err := checkAndReplaceIndex(ctx, collection, existingIndexes, indexName, keys, opts); err != nil {
					return err
				}
			}

			if groupName, ok := config["compound"]; ok {
				order := parseOrder(tag)
				compoundGroups[groupName] = append(compoundGroups[groupName], bson.E{Key: bsonField, Value: order})
				if _, exists := compoundOptions[groupName]; !exists {
					compoundOptions[groupName] = options.Index().SetName(groupName)
				}
				if strings.Contains(groupName, "_unique") {
					compoundUnique[groupName] = true
				}
				if _, hasSparse := config["sparse"]; hasSparse {
					compoundSparse[groupName] = true
				}
			}
		}
	}

	for groupName, fields := range compoundGroups {
		opts := compoundOptions[groupName]
		if compoundUnique[groupName] {
			opts = opts.SetUnique(true)
		}
		if compoundSparse[groupName] {
			opts = opts.SetSparse(true)
		}
		if err := checkAndReplaceIndex(ctx, collection, existingIndexes, groupName, fields, opts); err != nil {
			return err
		}
	}

	// Cleanup: xóa các unique index không còn được định nghĩa trong model
	fieldsWithUniqueIndex := make(map[string]bool)
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}

		bsonField := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		indexConfigs := parseIndexTag(tag)
		for _, config := range indexConfigs {
			if _, hasUnique := config["unique"]; hasUnique {
				fieldsWithUniqueIndex[bsonField] = true
				break
			}
		}
	}

	for indexName, indexInfo := range existingIndexes {
		// Index compound được quản lý theo tên nhóm, không thuộc diện cleanup này
		if _, isCompound := compoundGroups[indexName]; isCompound {
			continue
		}
		if strings.HasSuffix(indexName, "_unique") {
			fieldName := strings.TrimSuffix(indexName, "_unique")
			if !fieldsWithUniqueIndex[fieldName] {
				if unique, ok := indexInfo["unique"].(bool); ok && unique {
					log.Infof("Phát hiện unique index không còn được định nghĩa: %s, đang xóa", indexName)
					if _, err := collection.Indexes().DropOne(ctx, indexName); err != nil {
						// Không return error để không chặn việc tạo index khác
						log.Warnf("Không thể xóa index %s: %v", indexName, err)
					}
				}
			}
		}
	}

	return nil
}
