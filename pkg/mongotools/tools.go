package mongotools

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func FilterByID(id any) bson.M {
	return bson.M{"_id": id}
}

func Field[T any](field string, value *T) bson.M {
	if value == nil {
		return bson.M{}
	}
	return bson.M{field: *value}
}

func SetAll(fieldKVs ...bson.M) bson.M {
	s := make(bson.M, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}

	return bson.M{"$set": s}
}

// Upsert makes an update insert a new document when nothing matches.
func Upsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
